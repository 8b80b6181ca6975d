package commands

import (
	"context"
	"strconv"
	"time"

	"boltyard/internal/cluster"

	"github.com/briandowns/spinner"
)

// PauseCommand pauses a server for a given number of seconds. The whole
// console blocks for the duration; the operator asked for exactly that.
type PauseCommand struct {
	*BaseCommand

	// wait blocks for the pause interval. Replaceable in tests.
	wait func(d time.Duration)
}

// NewPauseCommand creates a new pause command.
func NewPauseCommand(service cluster.Service, output OutputLogger) *PauseCommand {
	return &PauseCommand{
		BaseCommand: NewBaseCommand(service, output),
		wait:        waitWithSpinner,
	}
}

// Execute pauses each matched server, blocks for the given duration,
// unpauses it and checks it is alive again. Matched servers are handled
// one after another, never overlapping.
func (p *PauseCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return NewParamError("usage: %s", p.Usage())
	}

	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return NewParamError("Invalid value for \"seconds\": %q is not a valid float", args[0])
	}

	token := ""
	if len(args) == 2 {
		token = args[1]
	}

	d := time.Duration(seconds * float64(time.Second))
	return p.forEachMachine(token, func(m cluster.Machine) error {
		return p.pauseMachine(m, seconds, d)
	})
}

func (p *PauseCommand) pauseMachine(m cluster.Machine, seconds float64, d time.Duration) error {
	p.output.OutputLine("Pausing machine %s for %gs", m.Spec().FQName, seconds)
	if err := m.Container().Pause(); err != nil {
		return err
	}
	p.wait(d)
	if err := m.Container().Unpause(); err != nil {
		return err
	}
	return m.Ping(0)
}

func waitWithSpinner(d time.Duration) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Paused..."
	s.Start()
	defer s.Stop()
	time.Sleep(d)
}

// Usage returns the usage string.
func (p *PauseCommand) Usage() string {
	return "pause <seconds> [machine]"
}

// Description returns the command description.
func (p *PauseCommand) Description() string {
	return "Pause a server for a given number of seconds"
}

// Completions returns possible completions.
func (p *PauseCommand) Completions(input string) []string {
	return p.machineCompletions()
}
