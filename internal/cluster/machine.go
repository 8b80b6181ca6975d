package cluster

import "time"

// Container is the runtime handle behind a live machine.
type Container interface {
	// ShortID returns the abbreviated container identifier.
	ShortID() string

	// Logs returns the container's log output.
	Logs() (string, error)

	// Pause suspends all processes in the container.
	Pause() error

	// Unpause resumes a paused container.
	Unpause() error
}

// Machine is a live handle bound to a MachineSpec. Machines are owned by
// their Service; the console only borrows references for the duration of
// a command.
type Machine interface {
	// Spec returns the owning MachineSpec.
	Spec() MachineSpec

	// Ping checks that the server answers on its web port. A timeout of
	// zero means a single immediate probe without waiting.
	Ping(timeout time.Duration) error

	// Container returns the underlying container handle.
	Container() Container
}

// Entry pairs a spec with its live machine. Machine is nil when the
// member is configured but has no running instance. Entries keep the
// service's insertion order.
type Entry struct {
	Spec    MachineSpec
	Machine Machine
}

// Service is the cluster manager the console drives. All topology
// mutation goes through the service; the console never changes the
// member set directly.
type Service interface {
	// Name returns the cluster's service name.
	Name() string

	// Machines returns the configured members in insertion order.
	// Entries whose machine is not running carry a nil Machine.
	Machines() []Entry

	// Env returns the environment the service publishes for clients,
	// such as the router address list and the auth credentials.
	Env() map[string]string

	// Routers returns the specs of the members that can answer routing
	// queries.
	Routers() []MachineSpec

	// AddCore grows the cluster by one core member.
	AddCore() error

	// AddReplica grows the cluster by one read replica.
	AddReplica() error

	// Remove takes a member out of the cluster by name or role token.
	// It reports whether anything was removed.
	Remove(token string) bool

	// Reboot restarts a member by name or role token. It reports whether
	// anything was rebooted.
	Reboot(token string) bool
}
