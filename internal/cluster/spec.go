package cluster

import "fmt"

// Config keys recognized on a MachineSpec.
const (
	// ModeKey selects the server mode in a spec's config map.
	ModeKey = "dbms.mode"
)

// Server modes. A spec without an explicit mode runs as a single server.
const (
	ModeSingle      = "SINGLE"
	ModeCore        = "CORE"
	ModeReadReplica = "READ_REPLICA"
)

// MachineSpec is the immutable description of one cluster member: its
// identity, its connection ports and its configuration. At most one live
// Machine exists per spec at any time.
type MachineSpec struct {
	// Name is the short name ("a", "b", ...).
	Name string
	// FQName is the fully-qualified name, unique per incarnation
	// ("a.fbe340d").
	FQName string

	BoltPort  int
	HTTPPort  int
	DebugPort int

	Config map[string]string
}

// Mode returns the configured server mode, defaulting to SINGLE.
func (s MachineSpec) Mode() string {
	if mode, ok := s.Config[ModeKey]; ok && mode != "" {
		return mode
	}
	return ModeSingle
}

// BoltAddress returns the host address of the spec's bolt port.
func (s MachineSpec) BoltAddress() string {
	return fmt.Sprintf("localhost:%d", s.BoltPort)
}

// HTTPURI returns the base URI of the spec's web interface.
func (s MachineSpec) HTTPURI() string {
	return fmt.Sprintf("http://localhost:%d", s.HTTPPort)
}
