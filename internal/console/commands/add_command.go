package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// AddCommand grows the cluster by one server. Only the cluster-capable
// console registers it.
type AddCommand struct {
	*BaseCommand
}

// NewAddCommand creates a new add command.
func NewAddCommand(service cluster.Service, output OutputLogger) *AddCommand {
	return &AddCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute adds a new server by mode. The mode token maps to exactly two
// canonical actions via a fixed synonym table; any other token is a
// parameter error and no service mutation happens.
func (a *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return NewParamError("usage: %s", a.Usage())
	}
	switch args[0] {
	case "c", "core":
		return a.service.AddCore()
	case "r", "rr", "replica", "read-replica", "read_replica":
		return a.service.AddReplica()
	default:
		return NewParamError(`Invalid value for "mode": choose from "core" or "read-replica"`)
	}
}

// Usage returns the usage string.
func (a *AddCommand) Usage() string {
	return "add <mode>"
}

// Description returns the command description.
func (a *AddCommand) Description() string {
	return "Add a new server in \"core\" or \"read-replica\" mode"
}

// Completions returns possible completions.
func (a *AddCommand) Completions(input string) []string {
	return []string{"core", "read-replica"}
}
