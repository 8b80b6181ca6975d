package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// RebootCommand restarts a server in place. Only the cluster-capable
// console registers it.
type RebootCommand struct {
	*BaseCommand
}

// NewRebootCommand creates a new reboot command.
func NewRebootCommand(service cluster.Service, output OutputLogger) *RebootCommand {
	return &RebootCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute reboots a server by name or role. Servers can be identified by
// their name ('a', 'a.fbe340d') or by the role they fulfil ('r' or 'w');
// role resolution is entirely the service's business.
func (r *RebootCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return NewParamError("usage: %s", r.Usage())
	}
	if !r.service.Reboot(args[0]) {
		return NewParamError("Machine %q not found", args[0])
	}
	return nil
}

// Usage returns the usage string.
func (r *RebootCommand) Usage() string {
	return "reboot <machine>"
}

// Description returns the command description.
func (r *RebootCommand) Description() string {
	return "Reboot a server by name or role"
}

// Completions returns possible completions.
func (r *RebootCommand) Completions(input string) []string {
	return r.machineCompletions()
}
