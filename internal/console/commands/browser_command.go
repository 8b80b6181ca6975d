package commands

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"boltyard/internal/cluster"
)

// BrowserCommand opens a server's web interface in the default browser.
type BrowserCommand struct {
	*BaseCommand

	// open launches the browser. Replaceable in tests.
	open func(url string) error
}

// NewBrowserCommand creates a new browser command.
func NewBrowserCommand(service cluster.Service, output OutputLogger) *BrowserCommand {
	return &BrowserCommand{
		BaseCommand: NewBaseCommand(service, output),
		open:        openBrowser,
	}
}

// Execute opens the web interface of each matched server. If no machine
// name is given, 'a' is assumed.
func (b *BrowserCommand) Execute(ctx context.Context, args []string) error {
	token, err := b.targetFromArgs(args, b.Usage())
	if err != nil {
		return err
	}
	return b.forEachMachine(token, func(m cluster.Machine) error {
		b.output.OutputLine("Opening web browser for machine %s at %s", m.Spec().FQName, m.Spec().HTTPURI())
		return b.open(m.Spec().HTTPURI())
	})
}

// openBrowser opens the specified URL in the default web browser.
// It supports Linux, macOS, and Windows.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	// Start the command but don't wait for it to complete; the browser
	// opens in the background.
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Usage returns the usage string.
func (b *BrowserCommand) Usage() string {
	return "browser [machine]"
}

// Description returns the command description.
func (b *BrowserCommand) Description() string {
	return "Open the web interface for a server"
}

// Completions returns possible completions.
func (b *BrowserCommand) Completions(input string) []string {
	return b.machineCompletions()
}
