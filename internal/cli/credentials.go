/*
PURPOSE:
  Resolves the Poe API key for commands that talk to the endpoint.

REQUIREMENTS:
  User-specified:
  - Read the key from the POE_API_KEY environment variable.
  - Pick up a local .env file when present.

  Implementation-discovered:
  - The key never lives in the YAML config, so configs can be shared safely.

ARCHITECTURE INTEGRATION:
  - Called by: run and models commands, before building an engine.
  - Uses: github.com/joho/godotenv

ERROR HANDLING:
  - A missing key is a hard error naming the variable.

IMPLEMENTATION RULES:
  - A missing .env file is normal, not an error.

USAGE:
  Internal helper, called from RunE functions.

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/run.go
  - internal/cli/models.go

MAINTENANCE:
  - Update if the endpoint ever needs more than one credential.
*/

package cli

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/output"
)

// resolveAPIKey fills cfg.APIKey from the environment, loading a local .env
// file first if one exists.
func resolveAPIKey(cfg *config.Config) error {
	if err := godotenv.Load(); err != nil {
		output.Logger.Debug("No .env file found, relying on environment variables")
	}
	cfg.APIKey = os.Getenv("POE_API_KEY")
	if cfg.APIKey == "" {
		return errors.New("POE_API_KEY is not set (export it or put it in a .env file)")
	}
	return nil
}
