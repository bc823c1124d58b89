package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	// Registers the engine's configuration schema.
	_ "github.com/quarrydb/quarry/internal/conf/params"
)

var verbose bool

// Execute runs the root command.
func Execute(version, commit string) error {
	return newRootCommand(version, commit).Execute()
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quarryconf",
		Short: "Inspect and validate Quarry engine configuration",
		Long: `quarryconf works against the Quarry engine's configuration schema.

It can list every public configuration entry with its default and
documentation, and validate key=value pairs the way a running session
would before accepting them.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}
