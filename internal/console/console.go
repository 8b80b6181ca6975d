package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"boltyard/internal/cluster"
	"boltyard/internal/console/commands"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
)

// Console is an interactive session bound to one cluster service.
//
// The console owns a command registry built once at construction, a
// readline instance providing history and tab completion, and the
// read-eval loop that ties them together. Failures are tiered: user
// mistakes are printed and the loop continues, the exit command unwinds
// exactly to the loop, and anything else terminates the session with the
// diagnostic intact.
type Console struct {
	service  cluster.Service
	logger   *Logger
	registry *commands.Registry
	connect  cluster.ConnectorFactory
	rl       *readline.Instance

	// args keeps the most recently dispatched token list. Retained for
	// inspection while debugging; nothing reads it at runtime.
	args []string
}

// New creates a console with the base command set: help, ls, ping, logs,
// pause, rt, browser, env and exit.
func New(service cluster.Service, logger *Logger, connect cluster.ConnectorFactory) *Console {
	c := &Console{
		service:  service,
		logger:   logger,
		connect:  connect,
		registry: commands.NewRegistry(),
	}
	c.registerBaseCommands()
	return c
}

// NewCluster creates a console that additionally accepts the
// topology-changing commands add, rm and reboot. The extension is
// additive; base command semantics are untouched.
func NewCluster(service cluster.Service, logger *Logger, connect cluster.ConnectorFactory) *Console {
	c := New(service, logger, connect)
	c.registerClusterCommands()
	return c
}

func (c *Console) registerBaseCommands() {
	reg := c.registry
	reg.Register("browser", commands.NewBrowserCommand(c.service, c.logger))
	reg.Register("env", commands.NewEnvCommand(c.service, c.logger))
	reg.Register("exit", commands.NewExitCommand(c.service, c.logger))
	reg.Register("help", commands.NewHelpCommand(c.service, c.logger, reg))
	reg.Register("logs", commands.NewLogsCommand(c.service, c.logger))
	reg.Register("ls", commands.NewListCommand(c.service, c.logger))
	reg.Register("pause", commands.NewPauseCommand(c.service, c.logger))
	reg.Register("ping", commands.NewPingCommand(c.service, c.logger))
	reg.Register("rt", commands.NewRoutingTableCommand(c.service, c.logger, c.connect))
}

func (c *Console) registerClusterCommands() {
	reg := c.registry
	reg.Register("add", commands.NewAddCommand(c.service, c.logger))
	reg.Register("reboot", commands.NewRebootCommand(c.service, c.logger))
	reg.Register("rm", commands.NewRemoveCommand(c.service, c.logger))
}

// Registry exposes the console's command table.
func (c *Console) Registry() *commands.Registry {
	return c.registry
}

// Invoke dispatches one tokenized command line: the first token names the
// command, the rest are handed to it raw for binding. An unknown name is
// a user error, not a crash.
func (c *Console) Invoke(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	c.args = tokens

	cmd, exists := c.registry.Get(tokens[0])
	if !exists {
		return commands.NewParamError("No such command %q", tokens[0])
	}
	return cmd.Execute(ctx, tokens[1:])
}

func (c *Console) buildPrompt() string {
	return c.logger.Prompt(c.service.Name())
}

// createCompleter builds tab completion from the registry: command names
// at the first position, each command's own completions after it.
func (c *Console) createCompleter() readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range c.registry.List() {
		cmd, _ := c.registry.Get(name)
		items = append(items, readline.PcItem(name, readline.PcItemDynamic(cmd.Completions)))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run starts the read-eval loop and blocks until the session ends.
//
// The loop has two states: prompting (block for one line) and
// dispatching. An empty line returns straight to the prompt. The session
// ends cleanly on the exit command, Ctrl+D, or context cancellation;
// a collaborator failure ends it with an error.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              c.buildPrompt(),
		HistoryFile:         filepath.Join(os.TempDir(), ".boltyard_history"),
		AutoComplete:        c.createCompleter(),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	c.rl = rl

	c.logger.Info("Console ready. Type 'help' for available commands. Use TAB for completion.")

	for {
		// Check if context is cancelled before each iteration
		select {
		case <-ctx.Done():
			c.logger.Info("Console shutting down...")
			return nil
		default:
		}

		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue // Empty line on Ctrl+C, keep prompting
			}
		} else if err == io.EOF {
			c.logger.Info("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		tokens, err := tokenize(input)
		if err != nil {
			c.logger.Error("%v", err)
			continue
		}

		if err := c.Invoke(ctx, tokens); err != nil {
			if errors.Is(err, commands.ErrExit) {
				c.logger.Info("Goodbye!")
				return nil
			}
			var paramErr *commands.ParamError
			if errors.As(err, &paramErr) {
				c.logger.Error("%s", paramErr.Error())
				continue
			}
			// A collaborator or programming failure. The operator must
			// see it unfiltered, so it ends the session.
			return err
		}
	}
}

// tokenize splits one input line into shell words, honoring quoting and
// escaping, so arguments containing spaces can be quoted.
func tokenize(input string) ([]string, error) {
	tokens, err := shlex.Split(input)
	if err != nil {
		return nil, fmt.Errorf("unparsable input: %w", err)
	}
	return tokens, nil
}

// filterInput filters input characters for readline
func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
