// Command ecopayout runs the ecosystem payout contract against a local data
// directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	ConfigFile string
	DataDir    string
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ecopayout",
		Short:         "Ecosystem payout contract",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&rootFlags.ConfigFile, "config", "c", "", "Configuration file (default <datadir>/config.yaml)")
	cmd.PersistentFlags().StringVarP(&rootFlags.DataDir, "datadir", "d", "", "Data directory for configuration and contract state")

	cmd.AddCommand(
		newInitCmd(),
		newExecCmd(),
		newQueryCmd(),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
