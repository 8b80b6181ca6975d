package cluster

import (
	"sync"
	"time"
)

type stubContainer struct {
	id string
}

func (c *stubContainer) ShortID() string { return c.id }

func (c *stubContainer) Logs() (string, error) { return "", nil }

func (c *stubContainer) Pause() error { return nil }

func (c *stubContainer) Unpause() error { return nil }

type stubMachine struct {
	spec MachineSpec
}

func (m *stubMachine) Spec() MachineSpec { return m.spec }

func (m *stubMachine) Ping(timeout time.Duration) error { return nil }

func (m *stubMachine) Container() Container { return &stubContainer{id: m.spec.FQName} }

// stubService is a fixed snapshot; the mutation methods are never called
// by the resolver under test.
type stubService struct {
	entries []Entry
}

func (s *stubService) Name() string { return "stub" }

func (s *stubService) Machines() []Entry { return s.entries }

func (s *stubService) Env() map[string]string { return nil }

func (s *stubService) Routers() []MachineSpec { return nil }

func (s *stubService) AddCore() error { return nil }

func (s *stubService) AddReplica() error { return nil }

func (s *stubService) Remove(token string) bool { return false }

func (s *stubService) Reboot(token string) bool { return false }

// fakeRuntime records container operations instead of talking to docker.
type fakeRuntime struct {
	mu        sync.Mutex
	started   []string
	removed   []string
	restarted []string
	envs      map[string]map[string]string
	startErr  error
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{envs: map[string]map[string]string{}}
}

func (r *fakeRuntime) Start(spec MachineSpec, image string, env map[string]string) (Container, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return nil, r.startErr
	}
	r.started = append(r.started, spec.Name)
	r.envs[spec.Name] = env
	return &stubContainer{id: "container-" + spec.Name}, nil
}

func (r *fakeRuntime) Remove(c Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, c.ShortID())
	return nil
}

func (r *fakeRuntime) Restart(c Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restarted = append(r.restarted, c.ShortID())
	return nil
}
