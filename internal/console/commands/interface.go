// Package commands provides a shared interface for console command
// implementations.
//
// This package defines the Command interface that all console commands
// implement, enabling a clean registry pattern and improved testability.
// Commands are responsible for their own argument binding; a binding
// failure or any other user mistake is reported as a *ParamError, which
// the read-eval loop prints without ending the session.
package commands

import (
	"context"
	"fmt"
	"sort"
)

// Command represents a console command that can be executed interactively.
type Command interface {
	// Execute runs the command with the given arguments
	Execute(ctx context.Context, args []string) error

	// Usage returns the usage string for the command
	Usage() string

	// Description returns a one-line summary of what the command does
	Description() string

	// Completions returns possible completions for the command's
	// arguments. The input parameter is the current partial input.
	Completions(input string) []string
}

// OutputLogger defines the interface for command output.
// This separates user-facing output from system logging.
type OutputLogger interface {
	// User-facing output (goes to stdout, no timestamps)
	Output(format string, args ...interface{})
	OutputLine(format string, args ...interface{})

	// Status messages (timestamped)
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// Registry manages the command table for a console instance. The table
// is built once at construction; it never changes while the loop runs.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry. Reusing a name is a wiring
// mistake, so it panics rather than silently shadowing.
func (r *Registry) Register(name string, cmd Command) {
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("command %q registered twice", name))
	}
	r.commands[name] = cmd
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, exists := r.commands[name]
	return cmd, exists
}

// List returns all registered command names, sorted. The result is built
// fresh on every call, so it is safe to re-iterate whenever help text is
// rendered.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
