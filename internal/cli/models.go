/*
PURPOSE:
  Defines the 'models' subcommand.
  Helps verify credentials and endpoint connectivity before a long run.

REQUIREMENTS:
  User-specified:
  - List the models the endpoint offers.

  Implementation-discovered:
  - Useful validation step before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.ListModels() (via Engine)

ERROR HANDLING:
  - Returns the endpoint error directly if the listing fails.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  prompt2 models

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/client.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/engine"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyOverrides(cmd, cfg)
		if err := resolveAPIKey(cfg); err != nil {
			return err
		}

		e := engine.New(cfg)
		models, err := e.ListModels(cmd.Context())
		if err != nil {
			return err
		}
		for _, m := range models {
			fmt.Printf("- %s\n", m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().StringVar(&baseURLOverride, "base-url", "", "Chat-completions endpoint base URL")
}
