package commands

import (
	"context"

	"boltyard/internal/cluster"
)

// helpTotalWidth is the total line width the command listing is fitted
// into: name column plus summary.
const helpTotalWidth = 73

// HelpCommand shows the command listing or one command's full help.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

// NewHelpCommand creates a new help command.
func NewHelpCommand(service cluster.Service, output OutputLogger, registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand(service, output),
		registry:    registry,
	}
}

// Execute shows help information.
func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		h.showGeneralHelp()
		return nil
	case 1:
		return h.showCommandHelp(args[0])
	default:
		return NewParamError("usage: %s", h.Usage())
	}
}

// showGeneralHelp lists every registered command, sorted, with a
// column-aligned summary truncated to the fixed total width.
func (h *HelpCommand) showGeneralHelp() {
	names := h.registry.List()

	nameWidth := 0
	for _, name := range names {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}
	textWidth := helpTotalWidth - nameWidth

	h.output.OutputLine("Commands:")
	for _, name := range names {
		cmd, _ := h.registry.Get(name)
		summary := cmd.Description()
		if len(summary) > textWidth {
			summary = summary[:textWidth-3] + "..."
		}
		h.output.OutputLine("  %-*s   %s", nameWidth, name, summary)
	}
}

// showCommandHelp renders one command's help from the same metadata used
// for dispatch, so help text cannot diverge from actual behavior.
func (h *HelpCommand) showCommandHelp(name string) error {
	cmd, exists := h.registry.Get(name)
	if !exists {
		return NewParamError("No such command %q", name)
	}
	h.output.OutputLine("Usage: %s", cmd.Usage())
	h.output.OutputLine("")
	h.output.OutputLine("%s", cmd.Description())
	return nil
}

// Usage returns the usage string.
func (h *HelpCommand) Usage() string {
	return "help [command]"
}

// Description returns the command description.
func (h *HelpCommand) Description() string {
	return "Get help on a command or show all available commands"
}

// Completions returns possible completions.
func (h *HelpCommand) Completions(input string) []string {
	return h.registry.List()
}
