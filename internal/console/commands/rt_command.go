package commands

import (
	"context"
	"strings"

	"boltyard/internal/cluster"
)

// RoutingTableCommand displays the routing table for a database, as seen
// by one of the cluster's routers.
type RoutingTableCommand struct {
	*BaseCommand
	connect cluster.ConnectorFactory
}

// NewRoutingTableCommand creates a new rt command.
func NewRoutingTableCommand(service cluster.Service, output OutputLogger, connect cluster.ConnectorFactory) *RoutingTableCommand {
	return &RoutingTableCommand{
		BaseCommand: NewBaseCommand(service, output),
		connect:     connect,
	}
}

// Execute opens a transient connection to the first router, requests a
// refreshed routing table and prints the endpoint groupings. The
// connection is closed on every path, including failures.
func (r *RoutingTableCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return NewParamError("usage: %s", r.Usage())
	}
	database := ""
	if len(args) == 1 {
		database = args[0]
	}

	routers := r.service.Routers()
	if len(routers) == 0 {
		return NewParamError("No routers available")
	}

	cx, err := r.connect(routers[0])
	if err != nil {
		return err
	}
	defer cx.Close()

	if database == "" {
		r.output.OutputLine("Refreshing routing information for the default database...")
	} else {
		r.output.OutputLine("Refreshing routing information for database %q...", database)
	}

	rt, err := cx.RefreshRoutingTable(database)
	if err != nil {
		return err
	}

	r.output.OutputLine("Routers: %s", strings.Join(cx.RouterProfiles(), " "))
	r.output.OutputLine("Readers: %s", strings.Join(rt.Readers, " "))
	r.output.OutputLine("Writers: %s", strings.Join(rt.Writers, " "))
	return nil
}

// Usage returns the usage string.
func (r *RoutingTableCommand) Usage() string {
	return "rt [database]"
}

// Description returns the command description.
func (r *RoutingTableCommand) Description() string {
	return "Display the routing table for a given database"
}

// Completions returns possible completions.
func (r *RoutingTableCommand) Completions(input string) []string {
	return nil
}
