package commands

import (
	"context"

	"boltyard/internal/cluster"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ListCommand prints a fixed-width table of the configured machines.
type ListCommand struct {
	*BaseCommand
}

// NewListCommand creates a new list command.
func NewListCommand(service cluster.Service, output OutputLogger) *ListCommand {
	return &ListCommand{
		BaseCommand: NewBaseCommand(service, output),
	}
}

// Execute lists the cluster members. Members without a running instance
// are skipped, not shown as errors.
func (l *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return NewParamError("usage: %s", l.Usage())
	}

	t := table.NewWriter()
	style := table.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	style.Options.SeparateHeader = false
	style.Options.SeparateRows = false
	t.SetStyle(style)

	t.AppendHeader(table.Row{"NAME", "CONTAINER", "MODE", "BOLT PORT", "HTTP PORT", "DEBUG PORT"})
	for _, e := range l.service.Machines() {
		if e.Machine == nil {
			continue
		}
		t.AppendRow(table.Row{
			e.Spec.FQName,
			e.Machine.Container().ShortID(),
			e.Spec.Mode(),
			e.Spec.BoltPort,
			e.Spec.HTTPPort,
			e.Spec.DebugPort,
		})
	}
	l.output.OutputLine("%s", t.Render())
	return nil
}

// Usage returns the usage string.
func (l *ListCommand) Usage() string {
	return "ls"
}

// Description returns the command description.
func (l *ListCommand) Description() string {
	return "Show a detailed list of the available servers"
}

// Completions returns possible completions.
func (l *ListCommand) Completions(input string) []string {
	return nil
}
