package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// RemoveCommand removes a server from the cluster. Only the
// cluster-capable console registers it.
type RemoveCommand struct {
	*BaseCommand
}

// NewRemoveCommand creates a new rm command.
func NewRemoveCommand(service cluster.Service, output OutputLogger) *RemoveCommand {
	return &RemoveCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute removes a server by name or role. Servers can be identified by
// their name ('a', 'a.fbe340d') or by the role they fulfil ('r' or 'w');
// role resolution is entirely the service's business.
func (r *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return NewParamError("usage: %s", r.Usage())
	}
	if !r.service.Remove(args[0]) {
		return NewParamError("Machine %q not found", args[0])
	}
	return nil
}

// Usage returns the usage string.
func (r *RemoveCommand) Usage() string {
	return "rm <machine>"
}

// Description returns the command description.
func (r *RemoveCommand) Description() string {
	return "Remove a server by name or role"
}

// Completions returns possible completions.
func (r *RemoveCommand) Completions(input string) []string {
	return r.machineCompletions()
}
