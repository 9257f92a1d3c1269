/*
PURPOSE:
  Defines the root Cobra command for the prompt2 CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --verbose.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/prompt2/main.go
  - Calls: Child commands (run, preview, models, init)
  - Modifies: Global logging verbosity before any subcommand runs.

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Cobra's own error/usage printing is silenced so main.go reports once.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/prompt2/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	// verbose switches the logger to debug level for every subcommand
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "prompt2",
		Short: "Batch prompt runner for Poe-compatible chat endpoints",
		Long: `Pairs every value in the first column of a table with every prompt in a
prompt file, sends one chat completion per pair, and saves each reply as a
JSON result file. Use 'run --help' for the main options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./prompt2.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
