/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full item-by-prompt batch.

REQUIREMENTS:
  User-specified:
  - Run every prompt against every table value, strictly in order.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Resolve the API key from the environment, never from YAML.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load, credential resolution, or the run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Validate -> Credentials -> Engine.Run.

USAGE:
  prompt2 run -t items.csv -p prompt.txt

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/engine"
)

var (
	tableOverride      string
	promptsOverride    string
	outputOverride     string
	modelOverride      string
	baseURLOverride    string
	promptModeOverride string
	limitOverride      int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every prompt against every table value",
	Long: `Reads the first column of a CSV or Excel table, pairs each value with each
prompt, and sends one chat completion per pair to the configured endpoint.
Requests are strictly sequential, in table order, with no retries; a failed
request stops the run immediately.

Each reply is saved as result_prompt<P>_item<I>.json in the output directory,
and a summary.json listing every result is written once the batch completes.`,
	Example: `  # Run with defaults (uses prompt2.yaml)
  prompt2 run -t items.csv -p prompt.txt

  # First 10 rows only, results under ./out
  prompt2 run -t items.xlsx -p prompt.txt -o ./out --limit 10

  # One request per non-blank prompt line
  prompt2 run -t items.csv -p prompts.txt --prompt-mode lines

  # Different model on the same endpoint
  prompt2 run -t items.csv -p prompt.txt -m claude-sonnet-4.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		// If err != nil here, it means user specified a file that didn't load, OR
		// parsing failed. config.Load handles "no file found" by returning defaults.
		if err != nil {
			return err
		}

		// 2. Overrides
		applyOverrides(cmd, cfg)
		if err := requireInputs(cfg); err != nil {
			return err
		}

		// 3. Credentials
		if err := resolveAPIKey(cfg); err != nil {
			return err
		}

		// 4. Execution
		return engine.Run(cfg)
	},
}

// applyOverrides copies any flags the user set on top of cfg. The override
// variables are shared across subcommands; each command registers only the
// flags that make sense for it, and unset ones stay zero here.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if tableOverride != "" {
		cfg.Table = tableOverride
	}
	if promptsOverride != "" {
		cfg.Prompts = promptsOverride
	}
	if outputOverride != "" {
		cfg.OutputDir = outputOverride
	}
	if modelOverride != "" {
		cfg.Model = modelOverride
	}
	if baseURLOverride != "" {
		cfg.BaseURL = baseURLOverride
	}
	if promptModeOverride != "" {
		cfg.PromptMode = promptModeOverride
	}
	// Zero disables the limit, so "flag was set" is the signal, not the value.
	if cmd.Flags().Changed("limit") {
		cfg.Limit = limitOverride
	}
}

func requireInputs(cfg *config.Config) error {
	if cfg.Table == "" {
		return errors.New("no table given (use --table or set it in the config file)")
	}
	if cfg.Prompts == "" {
		return errors.New("no prompt file given (use --prompts or set it in the config file)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&tableOverride, "table", "t", "", "CSV or Excel file whose first column lists the items")
	runCmd.Flags().StringVarP(&promptsOverride, "prompts", "p", "", "Text file containing the prompt(s)")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for result files")
	runCmd.Flags().StringVarP(&modelOverride, "model", "m", "", "Model name to request")
	runCmd.Flags().StringVar(&baseURLOverride, "base-url", "", "Chat-completions endpoint base URL")
	runCmd.Flags().StringVar(&promptModeOverride, "prompt-mode", "", "How to read the prompt file: 'file' (whole file) or 'lines' (one per line)")
	runCmd.Flags().IntVar(&limitOverride, "limit", 0, "Process only the first N items (0 = all)")
}
