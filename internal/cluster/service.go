package cluster

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"boltyard/pkg/logging"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/errgroup"
)

const clusterSubsystem = "Cluster"

// LocalService materializes a cluster Definition as docker containers on
// the local host. Console command execution is single-threaded, but the
// service serializes its own topology changes regardless.
type LocalService struct {
	name    string
	image   string
	auth    string
	runtime Runtime

	mu      sync.Mutex
	entries []Entry
	nextIdx int
}

// NewLocalService builds the service from a definition. Machines are not
// started until Start is called.
func NewLocalService(def *Definition, runtime Runtime) *LocalService {
	s := &LocalService{
		name:    def.Name,
		image:   def.Image,
		auth:    def.Auth,
		runtime: runtime,
		nextIdx: len(def.Machines),
	}
	for _, m := range def.Machines {
		s.entries = append(s.entries, Entry{Spec: newSpec(m.Name, m.Mode, m.BoltPort, m.HTTPPort, m.DebugPort)})
	}
	return s
}

// newSpec mints a spec with a fresh fully-qualified name. The fq-name is
// unique per incarnation, so a rebooted cluster never aliases an old one.
func newSpec(name, mode string, boltPort, httpPort, debugPort int) MachineSpec {
	spec := MachineSpec{
		Name:      name,
		FQName:    fmt.Sprintf("%s.%s", name, uuid.NewString()[:7]),
		BoltPort:  boltPort,
		HTTPPort:  httpPort,
		DebugPort: debugPort,
		Config:    map[string]string{},
	}
	if mode != "" {
		spec.Config[ModeKey] = mode
	}
	return spec
}

// Start boots every configured member. Containers start in parallel; the
// first failure aborts the boot.
func (s *LocalService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logging.Info(clusterSubsystem, "Starting service %q with %d machines", s.name, len(s.entries))

	g, _ := errgroup.WithContext(ctx)
	for i := range s.entries {
		i := i
		g.Go(func() error {
			m, err := s.startMachine(s.entries[i].Spec)
			if err != nil {
				return err
			}
			s.entries[i].Machine = m
			return nil
		})
	}
	return g.Wait()
}

// Stop removes every running container. Errors are logged, not returned;
// shutdown is best effort.
func (s *LocalService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Machine == nil {
			continue
		}
		if err := s.runtime.Remove(s.entries[i].Machine.Container()); err != nil {
			logging.Error(clusterSubsystem, err, "Failed to remove machine %s", s.entries[i].Spec.FQName)
		}
		s.entries[i].Machine = nil
	}
	logging.Info(clusterSubsystem, "Service %q stopped", s.name)
}

func (s *LocalService) startMachine(spec MachineSpec) (Machine, error) {
	c, err := s.runtime.Start(spec, s.image, s.containerEnv())
	if err != nil {
		return nil, err
	}
	logging.Info(clusterSubsystem, "Started machine %s in container %s", spec.FQName, c.ShortID())
	return &localMachine{spec: spec, container: c}, nil
}

func (s *LocalService) containerEnv() map[string]string {
	env := map[string]string{}
	if s.auth != "" {
		env["AUTH"] = s.auth
	}
	return env
}

func (s *LocalService) Name() string {
	return s.name
}

func (s *LocalService) Machines() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Env publishes the client-facing environment: the space-separated router
// address list and, when configured, the auth credentials.
func (s *LocalService) Env() map[string]string {
	var addrs []string
	for _, r := range s.Routers() {
		addrs = append(addrs, r.BoltAddress())
	}
	env := map[string]string{
		"BOLT_SERVER_ADDR": strings.Join(addrs, " "),
	}
	if s.auth != "" {
		env["BOLT_AUTH"] = s.auth
	}
	return env
}

// Routers returns the specs of the live members that answer routing
// queries: cores, plus a single server running alone.
func (s *LocalService) Routers() []MachineSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	var routers []MachineSpec
	for _, e := range s.entries {
		if e.Machine == nil {
			continue
		}
		if mode := e.Spec.Mode(); mode == ModeCore || mode == ModeSingle {
			routers = append(routers, e.Spec)
		}
	}
	return routers
}

func (s *LocalService) AddCore() error {
	return s.add(ModeCore)
}

func (s *LocalService) AddReplica() error {
	return s.add(ModeReadReplica)
}

func (s *LocalService) add(mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	boltPort, httpPort, debugPort := s.allocatePorts()
	spec := newSpec(s.nextName(), mode, boltPort, httpPort, debugPort)
	m, err := s.startMachine(spec)
	if err != nil {
		return err
	}
	s.entries = append(s.entries, Entry{Spec: spec, Machine: m})
	logging.Info(clusterSubsystem, "Added %s machine %s", mode, spec.FQName)
	return nil
}

// nextName produces short names a, b, ..., z, a1, b1, ...
func (s *LocalService) nextName() string {
	idx := s.nextIdx
	s.nextIdx++
	letter := string(rune('a' + idx%26))
	if idx >= 26 {
		return fmt.Sprintf("%s%d", letter, idx/26)
	}
	return letter
}

// allocatePorts picks host ports one past the highest in use.
func (s *LocalService) allocatePorts() (boltPort, httpPort, debugPort int) {
	boltPort, httpPort, debugPort = 17687, 17474, 15005
	for _, e := range s.entries {
		if e.Spec.BoltPort >= boltPort {
			boltPort = e.Spec.BoltPort + 1
		}
		if e.Spec.HTTPPort >= httpPort {
			httpPort = e.Spec.HTTPPort + 1
		}
		if e.Spec.DebugPort >= debugPort {
			debugPort = e.Spec.DebugPort + 1
		}
	}
	return boltPort, httpPort, debugPort
}

// Remove takes a member out of the cluster by name, fq-name or role
// token. Reports false when nothing matched or the container could not
// be removed.
func (s *LocalService) Remove(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.pick(token)
	if !ok {
		return false
	}
	e := s.entries[i]
	if e.Machine != nil {
		if err := s.runtime.Remove(e.Machine.Container()); err != nil {
			logging.Error(clusterSubsystem, err, "Failed to remove machine %s", e.Spec.FQName)
			return false
		}
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	logging.Info(clusterSubsystem, "Removed machine %s", e.Spec.FQName)
	return true
}

// Reboot restarts a member's container in place by name, fq-name or role
// token.
func (s *LocalService) Reboot(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.pick(token)
	if !ok || s.entries[i].Machine == nil {
		return false
	}
	e := s.entries[i]
	if err := s.runtime.Restart(e.Machine.Container()); err != nil {
		logging.Error(clusterSubsystem, err, "Failed to reboot machine %s", e.Spec.FQName)
		return false
	}
	logging.Info(clusterSubsystem, "Rebooted machine %s", e.Spec.FQName)
	return true
}

// pick resolves a name, fq-name or role token to an entry index. Role
// tokens: "w" picks a live writer-capable member (core or single), "r"
// picks a live read replica.
func (s *LocalService) pick(token string) (int, bool) {
	for i, e := range s.entries {
		if token == e.Spec.Name || token == e.Spec.FQName {
			return i, true
		}
	}
	switch token {
	case "w":
		for i, e := range s.entries {
			if e.Machine == nil {
				continue
			}
			if mode := e.Spec.Mode(); mode == ModeCore || mode == ModeSingle {
				return i, true
			}
		}
	case "r":
		for i, e := range s.entries {
			if e.Machine != nil && e.Spec.Mode() == ModeReadReplica {
				return i, true
			}
		}
	}
	return 0, false
}

// localMachine is the live handle for one service-owned member.
type localMachine struct {
	spec      MachineSpec
	container Container
}

func (m *localMachine) Spec() MachineSpec {
	return m.spec
}

func (m *localMachine) Container() Container {
	return m.container
}

// Ping probes the machine's web port. A timeout of zero performs a single
// immediate probe without retrying.
func (m *localMachine) Ping(timeout time.Duration) error {
	client := retryablehttp.NewClient()
	client.Logger = nil
	if timeout <= 0 {
		client.RetryMax = 0
		client.HTTPClient.Timeout = 2 * time.Second
	} else {
		client.RetryMax = 4
		client.RetryWaitMin = 250 * time.Millisecond
		client.RetryWaitMax = timeout
		client.HTTPClient.Timeout = timeout
	}

	resp, err := client.Get(m.spec.HTTPURI() + "/")
	if err != nil {
		return fmt.Errorf("machine %s is not responding: %w", m.spec.FQName, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("machine %s answered with status %d", m.spec.FQName, resp.StatusCode)
	}
	return nil
}
