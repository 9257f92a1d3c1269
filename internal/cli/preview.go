/*
PURPOSE:
  Defines the 'preview' subcommand.
  Shows what a run would do without sending a single request.

REQUIREMENTS:
  User-specified:
  - List the extracted items and the request count up front.

  Implementation-discovered:
  - Must use the same load/override path as run so the preview matches reality.

ARCHITECTURE INTEGRATION:
  - Calls: internal/table, internal/prompt
  - Uses: internal/config

ERROR HANDLING:
  - Surfaces the same input validation errors as run (missing table, empty
    first column, empty prompt file).

IMPLEMENTATION RULES:
  - Never build an engine here; preview must work without POE_API_KEY.

USAGE:
  prompt2 preview -t items.csv -p prompts.txt

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Keep the override handling in sync with run.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/prompt"
	"github.com/xumofan/prompt2/internal/table"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the items and request count without calling the endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyOverrides(cmd, cfg)
		if err := requireInputs(cfg); err != nil {
			return err
		}

		items, err := table.ExtractFirstColumn(cfg.Table)
		if err != nil {
			return err
		}
		if cfg.Limit > 0 && len(items) > cfg.Limit {
			items = items[:cfg.Limit]
		}
		prompts, err := prompt.Load(cfg.Prompts, cfg.PromptMode)
		if err != nil {
			return err
		}

		fmt.Printf("Items (%d):\n", len(items))
		for _, item := range items {
			fmt.Printf("- %s\n", item)
		}
		fmt.Printf("Prompts: %d (mode: %s)\n", len(prompts), cfg.PromptMode)
		fmt.Printf("Requests: %d\n", len(items)*len(prompts))
		fmt.Printf("Output directory: %s\n", cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&tableOverride, "table", "t", "", "CSV or Excel file whose first column lists the items")
	previewCmd.Flags().StringVarP(&promptsOverride, "prompts", "p", "", "Text file containing the prompt(s)")
	previewCmd.Flags().StringVar(&promptModeOverride, "prompt-mode", "", "How to read the prompt file: 'file' (whole file) or 'lines' (one per line)")
	previewCmd.Flags().IntVar(&limitOverride, "limit", 0, "Process only the first N items (0 = all)")
}
