package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// PingCommand checks that a server is available.
type PingCommand struct {
	*BaseCommand
}

// NewPingCommand creates a new ping command.
func NewPingCommand(service cluster.Service, output OutputLogger) *PingCommand {
	return &PingCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute pings a server by name. If no name is provided, 'a' is used.
func (p *PingCommand) Execute(ctx context.Context, args []string) error {
	token, err := p.targetFromArgs(args, p.Usage())
	if err != nil {
		return err
	}
	return p.forEachMachine(token, func(m cluster.Machine) error {
		if err := m.Ping(0); err != nil {
			return err
		}
		p.output.Success("Machine %s is alive", m.Spec().FQName)
		return nil
	})
}

// Usage returns the usage string.
func (p *PingCommand) Usage() string {
	return "ping [machine]"
}

// Description returns the command description.
func (p *PingCommand) Description() string {
	return "Ping a server by name to check it is available"
}

// Completions returns possible completions.
func (p *PingCommand) Completions(input string) []string {
	return p.machineCompletions()
}
