package commands

import (
	"fmt"
	"time"

	"boltyard/internal/cluster"
)

// eventLog records collaborator calls in order, shared across the fakes
// so command tests can assert sequencing.
type eventLog struct {
	events []string
}

func (l *eventLog) add(event string) {
	l.events = append(l.events, event)
}

type fakeContainer struct {
	log     *eventLog
	shortID string
	logText string
}

func (c *fakeContainer) ShortID() string {
	return c.shortID
}

func (c *fakeContainer) Logs() (string, error) {
	c.log.add("logs " + c.shortID)
	return c.logText, nil
}

func (c *fakeContainer) Pause() error {
	c.log.add("pause " + c.shortID)
	return nil
}

func (c *fakeContainer) Unpause() error {
	c.log.add("unpause " + c.shortID)
	return nil
}

type fakeMachine struct {
	log       *eventLog
	spec      cluster.MachineSpec
	container *fakeContainer
	pingErr   error
}

func (m *fakeMachine) Spec() cluster.MachineSpec {
	return m.spec
}

func (m *fakeMachine) Container() cluster.Container {
	return m.container
}

func (m *fakeMachine) Ping(timeout time.Duration) error {
	m.log.add(fmt.Sprintf("ping %s %s", m.spec.Name, timeout))
	return m.pingErr
}

type fakeService struct {
	log          *eventLog
	name         string
	entries      []cluster.Entry
	env          map[string]string
	routers      []cluster.MachineSpec
	removeResult map[string]bool
	rebootResult map[string]bool
	addErr       error
}

func (s *fakeService) Name() string {
	return s.name
}

func (s *fakeService) Machines() []cluster.Entry {
	return s.entries
}

func (s *fakeService) Env() map[string]string {
	return s.env
}

func (s *fakeService) Routers() []cluster.MachineSpec {
	return s.routers
}

func (s *fakeService) AddCore() error {
	s.log.add("add-core")
	return s.addErr
}

func (s *fakeService) AddReplica() error {
	s.log.add("add-replica")
	return s.addErr
}

func (s *fakeService) Remove(token string) bool {
	s.log.add("remove " + token)
	return s.removeResult[token]
}

func (s *fakeService) Reboot(token string) bool {
	s.log.add("reboot " + token)
	return s.rebootResult[token]
}

// newFakeService builds the canonical scenario: specs a, b and c with
// only a and b live.
func newFakeService() (*fakeService, *eventLog) {
	log := &eventLog{}

	mkSpec := func(name string, i int) cluster.MachineSpec {
		return cluster.MachineSpec{
			Name:      name,
			FQName:    name + ".fbe340d",
			BoltPort:  17687 + i,
			HTTPPort:  17474 + i,
			DebugPort: 15005 + i,
			Config:    map[string]string{},
		}
	}
	specA, specB, specC := mkSpec("a", 0), mkSpec("b", 1), mkSpec("c", 2)

	machineA := &fakeMachine{
		log:       log,
		spec:      specA,
		container: &fakeContainer{log: log, shortID: "0a1b2c3d4e5f", logText: "log output for a\n"},
	}
	machineB := &fakeMachine{
		log:       log,
		spec:      specB,
		container: &fakeContainer{log: log, shortID: "5f4e3d2c1b0a", logText: "log output for b\n"},
	}

	svc := &fakeService{
		log:  log,
		name: "bolt",
		entries: []cluster.Entry{
			{Spec: specA, Machine: machineA},
			{Spec: specB, Machine: machineB},
			{Spec: specC},
		},
		env: map[string]string{
			"BOLT_SERVER_ADDR": "localhost:17687",
			"BOLT_AUTH":        "user:password",
		},
		routers:      []cluster.MachineSpec{specA},
		removeResult: map[string]bool{},
		rebootResult: map[string]bool{},
	}
	return svc, log
}

type fakeConnector struct {
	log        *eventLog
	table      *cluster.RoutingTable
	refreshErr error
	databases  []string
	closed     bool
}

func (c *fakeConnector) RefreshRoutingTable(database string) (*cluster.RoutingTable, error) {
	c.log.add("refresh " + database)
	c.databases = append(c.databases, database)
	if c.refreshErr != nil {
		return nil, c.refreshErr
	}
	return c.table, nil
}

func (c *fakeConnector) RouterProfiles() []string {
	return []string{"localhost:17687"}
}

func (c *fakeConnector) Close() error {
	c.log.add("close")
	c.closed = true
	return nil
}

// recordingOutput captures logger output for assertions.
type recordingOutput struct {
	lines  []string
	errors []string
}

func (r *recordingOutput) Output(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingOutput) OutputLine(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingOutput) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingOutput) Debug(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingOutput) Error(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingOutput) Success(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}
