package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/xumofan/prompt2/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().IntVar(&limitOverride, "limit", 0, "")

	tableOverride = "items.xlsx"
	modelOverride = "gpt-5"
	t.Cleanup(func() {
		tableOverride = ""
		modelOverride = ""
		limitOverride = 0
	})

	cfg := config.DefaultConfig()
	cfg.Table = "from-config.csv"
	cfg.Prompts = "from-config.txt"
	cfg.Limit = 7

	applyOverrides(cmd, cfg)
	if cfg.Table != "items.xlsx" {
		t.Fatalf("table = %q, want flag override", cfg.Table)
	}
	if cfg.Model != "gpt-5" {
		t.Fatalf("model = %q, want flag override", cfg.Model)
	}
	if cfg.Prompts != "from-config.txt" {
		t.Fatalf("prompts = %q, config value should survive an unset flag", cfg.Prompts)
	}
	if cfg.Limit != 7 {
		t.Fatalf("limit = %d, config value should survive an untouched flag", cfg.Limit)
	}

	// An explicit --limit 0 clears a limit set in the config file.
	if err := cmd.Flags().Set("limit", "0"); err != nil {
		t.Fatalf("setting limit flag: %v", err)
	}
	applyOverrides(cmd, cfg)
	if cfg.Limit != 0 {
		t.Fatalf("limit = %d, explicit zero should win over the config", cfg.Limit)
	}
}

func TestRequireInputs(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := requireInputs(cfg); err == nil {
		t.Fatalf("expected error when no table is configured")
	}
	cfg.Table = "items.csv"
	if err := requireInputs(cfg); err == nil {
		t.Fatalf("expected error when no prompt file is configured")
	}
	cfg.Prompts = "prompt.txt"
	if err := requireInputs(cfg); err != nil {
		t.Fatalf("requireInputs: %v", err)
	}
}
