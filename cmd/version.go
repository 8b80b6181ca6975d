package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of boltyard",
		Long:  `All software has versions. This is boltyard's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main via SetVersion.
			fmt.Fprintf(cmd.OutOrStdout(), "boltyard version %s\n", rootCmd.Version)
		},
	}
}
