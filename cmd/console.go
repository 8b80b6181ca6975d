package cmd

import (
	"fmt"
	"os"

	"boltyard/internal/cluster"
	"boltyard/internal/console"
	"boltyard/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	consoleFile    string
	consoleCluster bool
	consoleVerbose bool
	consoleNoColor bool
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Boot a cluster and start the interactive console",
	Long: `The console command boots the cluster described by a definition file
(or a default single-server cluster) as docker containers and starts an
interactive console bound to it.

In the console you can:
- List the configured servers and their containers (ls)
- Ping a server by name to check it is available (ping)
- Pause a server for a number of seconds (pause)
- Display a server's container logs (logs)
- Display the routing table from one of the routers (rt)
- Open the web interface for a server (browser)
- Show the environment published by the service (env)

With --cluster the console additionally accepts topology-changing
commands (add, rm, reboot).

Command history, arrow-key recall and tab completion are available at
the prompt. The session ends with 'exit' or Ctrl+D.`,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().StringVarP(&consoleFile, "file", "f", "", "Cluster definition file (YAML)")
	consoleCmd.Flags().BoolVar(&consoleCluster, "cluster", false, "Enable topology-changing commands (add, rm, reboot)")
	consoleCmd.Flags().BoolVar(&consoleVerbose, "verbose", false, "Enable verbose logging")
	consoleCmd.Flags().BoolVar(&consoleNoColor, "no-color", false, "Disable colored output")
}

func runConsole(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if consoleVerbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	def, err := loadDefinition()
	if err != nil {
		return err
	}

	svc := cluster.NewLocalService(def, cluster.NewDockerRuntime())
	if err := svc.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start cluster %q: %w", def.Name, err)
	}
	defer svc.Stop()

	logger := console.NewLogger(consoleVerbose, !consoleNoColor)

	var con *console.Console
	if consoleCluster {
		con = console.NewCluster(svc, logger, cluster.NewHTTPConnector)
	} else {
		con = console.New(svc, logger, cluster.NewHTTPConnector)
	}

	return con.Run(cmd.Context())
}

func loadDefinition() (*cluster.Definition, error) {
	if consoleFile == "" {
		return cluster.DefaultDefinition(), nil
	}
	def, err := cluster.LoadDefinition(consoleFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load cluster definition %q: %w", consoleFile, err)
	}
	return def, nil
}
