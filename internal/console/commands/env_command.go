package commands

import (
	"context"
	"sort"

	"boltyard/internal/cluster"
)

// EnvCommand shows the environment variables the service publishes for
// its clients, such as the router address list and the auth credentials.
type EnvCommand struct {
	*BaseCommand
}

// NewEnvCommand creates a new env command.
func NewEnvCommand(service cluster.Service, output OutputLogger) *EnvCommand {
	return &EnvCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute prints the service environment, sorted by key.
func (e *EnvCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return NewParamError("usage: %s", e.Usage())
	}

	env := e.service.Env()
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		e.output.OutputLine("%s=%q", key, env[key])
	}
	return nil
}

// Usage returns the usage string.
func (e *EnvCommand) Usage() string {
	return "env"
}

// Description returns the command description.
func (e *EnvCommand) Description() string {
	return "Show available environment variables"
}

// Completions returns possible completions.
func (e *EnvCommand) Completions(input string) []string {
	return nil
}
