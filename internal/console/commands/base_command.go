package commands

import (
	"boltyard/internal/cluster"
)

// BaseCommand provides common functionality for all console commands:
// access to the cluster service, the output logger, and the target
// resolution helpers most commands share.
type BaseCommand struct {
	service cluster.Service
	output  OutputLogger
}

// NewBaseCommand creates a new base command with the specified dependencies.
func NewBaseCommand(service cluster.Service, output OutputLogger) *BaseCommand {
	return &BaseCommand{
		service: service,
		output:  output,
	}
}

// targetFromArgs extracts the optional machine token from args. Commands
// whose target may be omitted accept zero or one argument.
func (b *BaseCommand) targetFromArgs(args []string, usage string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", NewParamError("usage: %s", usage)
	}
}

// forEachMachine resolves token against the cluster snapshot and applies
// fn to every match. An empty match set becomes a "not found" user error
// carrying the token; an error from fn propagates unchanged.
func (b *BaseCommand) forEachMachine(token string, fn func(cluster.Machine) error) error {
	found, err := cluster.ForEach(b.service, token, fn)
	if err != nil {
		return err
	}
	if found == 0 {
		if token == "" {
			token = cluster.DefaultTarget
		}
		return NewParamError("Machine %q not found", token)
	}
	return nil
}

// machineCompletions returns the short and fully-qualified names of every
// configured member, for tab completion of target arguments.
func (b *BaseCommand) machineCompletions() []string {
	var names []string
	for _, e := range b.service.Machines() {
		names = append(names, e.Spec.Name, e.Spec.FQName)
	}
	return names
}
