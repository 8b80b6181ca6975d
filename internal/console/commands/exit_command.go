package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// ExitCommand ends the console session.
type ExitCommand struct {
	*BaseCommand
}

// NewExitCommand creates a new exit command.
func NewExitCommand(service cluster.Service, output OutputLogger) *ExitCommand {
	return &ExitCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute signals the read-eval loop to shut down cleanly.
func (e *ExitCommand) Execute(ctx context.Context, args []string) error {
	return ErrExit
}

// Usage returns the usage string.
func (e *ExitCommand) Usage() string {
	return "exit"
}

// Description returns the command description.
func (e *ExitCommand) Description() string {
	return "Shut down all machines and exit the console"
}

// Completions returns possible completions.
func (e *ExitCommand) Completions(input string) []string {
	return nil
}
