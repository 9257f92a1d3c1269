/*
PURPOSE:
  Defines the configuration structure and loading logic for prompt2.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of table path, prompt file, output directory, model,
    endpoint base URL, row limit, and prompt mode.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - The API key must never live in YAML; it is resolved from the environment
    by the CLI layer and only carried here.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (outputs dir, Poe endpoint, haiku model).

USAGE:
  cfg, err := config.Load("prompt2.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"

	"github.com/xumofan/prompt2/internal/prompt"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for prompt2.
type Config struct {
	Table      string `yaml:"table"`
	Prompts    string `yaml:"prompts"`
	OutputDir  string `yaml:"output_dir"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	Limit      int    `yaml:"limit"` // 0 or negative = no limit
	PromptMode string `yaml:"prompt_mode"`

	// APIKey is resolved from POE_API_KEY by the CLI, never from YAML.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:  "outputs",
		Model:      "claude-haiku-4.5",
		BaseURL:    "https://api.poe.com/v1",
		PromptMode: prompt.ModeFile,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"prompt2.yaml", "prompt_runner.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
