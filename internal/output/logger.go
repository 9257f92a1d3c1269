/*
PURPOSE:
  Provides a structured logger for prompt2.
  Wraps slog for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy; per-request detail only when asked for.

  Implementation-discovered:
  - Needs Info/Error levels plus an opt-in Debug level for request payloads.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - N/A

IMPLEMENTATION RULES:
  - Use `log/slog` (Go 1.21+).
  - Level lives in a LevelVar so --verbose can flip it after init.

USAGE:
  output.Logger.Info("message", "key", "value")
  output.SetVerbose(true) // from the CLI

SELF-HEALING INSTRUCTIONS:
  - Ensure Go 1.21+ is used.

RELATED FILES:
  - internal/cli/root.go (wires --verbose)

MAINTENANCE:
  - Configurable handlers (JSON for non-interactive) if ever needed.
*/

package output

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// SetVerbose lowers the log level to Debug when v is true.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// SetLogger allows overriding the default logger (e.g. for testing)
func SetLogger(l *slog.Logger) {
	Logger = l
}
