package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// LogsCommand displays the container logs for a named server.
type LogsCommand struct {
	*BaseCommand
}

// NewLogsCommand creates a new logs command.
func NewLogsCommand(service cluster.Service, output OutputLogger) *LogsCommand {
	return &LogsCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute displays logs for a server. If no name is provided, 'a' is used.
func (l *LogsCommand) Execute(ctx context.Context, args []string) error {
	token, err := l.targetFromArgs(args, l.Usage())
	if err != nil {
		return err
	}
	return l.forEachMachine(token, func(m cluster.Machine) error {
		text, err := m.Container().Logs()
		if err != nil {
			return err
		}
		l.output.Output("%s", text)
		return nil
	})
}

// Usage returns the usage string.
func (l *LogsCommand) Usage() string {
	return "logs [machine]"
}

// Description returns the command description.
func (l *LogsCommand) Description() string {
	return "Display logs for a named server"
}

// Completions returns possible completions.
func (l *LogsCommand) Completions(input string) []string {
	return l.machineCompletions()
}
