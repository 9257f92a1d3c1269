/*
PURPOSE:
  Loads prompt templates from a text file.
  Two explicit modes: the whole file as one prompt, or one prompt per line.

REQUIREMENTS:
  User-specified:
  - Default is whole-file: a prompt is usually multi-line prose.
  - "lines" mode turns each non-blank line into its own prompt for quick
    side-by-side comparisons.

  Implementation-discovered:
  - The mode must be explicit configuration, not guessed from file content;
    a one-line file is a valid whole-file prompt.
  - Per-line trimming also strips \r so CRLF files behave.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner), internal/cli (preview)

ERROR HANDLING:
  - ErrNoPrompts when the file is empty after trimming.
  - Read errors are wrapped with the offending path.
  - Unknown modes are rejected loudly instead of falling back.

IMPLEMENTATION RULES:
  - Preserve file order in lines mode.
  - Empty mode string means ModeFile so direct callers get the default.

USAGE:
  prompts, err := prompt.Load("prompts/check.txt", prompt.ModeFile)

SELF-HEALING INSTRUCTIONS:
  - New modes get a case in Load and a constant next to ModeFile/ModeLines.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update if templated prompts (placeholders beyond the fixed item suffix)
    ever land.
*/

package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Prompt file interpretation modes.
const (
	ModeFile  = "file"
	ModeLines = "lines"
)

// ErrNoPrompts reports a prompt file with no usable content.
var ErrNoPrompts = errors.New("no prompts found in prompt file")

// Load reads the prompt file at path and returns the ordered prompts it
// yields under the given mode.
func Load(path, mode string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", path, err)
	}

	switch mode {
	case ModeFile, "":
		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil, ErrNoPrompts
		}
		return []string{text}, nil

	case ModeLines:
		var prompts []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			prompts = append(prompts, line)
		}
		if len(prompts) == 0 {
			return nil, ErrNoPrompts
		}
		return prompts, nil

	default:
		return nil, fmt.Errorf("unknown prompt mode %q (want %q or %q)", mode, ModeFile, ModeLines)
	}
}
