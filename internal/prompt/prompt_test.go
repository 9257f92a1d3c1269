package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePrompts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadWholeFile(t *testing.T) {
	path := writePrompts(t, "\n  Describe the value.\nBe terse.\n\n")

	prompts, err := Load(path, ModeFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"Describe the value.\nBe terse."}
	if !reflect.DeepEqual(prompts, want) {
		t.Fatalf("prompts = %q, want %q", prompts, want)
	}
}

func TestLoadEmptyModeDefaultsToFile(t *testing.T) {
	path := writePrompts(t, "Say hi")

	prompts, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(prompts) != 1 || prompts[0] != "Say hi" {
		t.Fatalf("prompts = %q", prompts)
	}
}

func TestLoadLines(t *testing.T) {
	path := writePrompts(t, "one\r\n\n  two  \n\n")

	prompts, err := Load(path, ModeLines)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"one", "two"}
	if !reflect.DeepEqual(prompts, want) {
		t.Fatalf("prompts = %q, want %q", prompts, want)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writePrompts(t, "   \n\t\n")

	if _, err := Load(path, ModeFile); !errors.Is(err, ErrNoPrompts) {
		t.Fatalf("file mode err = %v, want ErrNoPrompts", err)
	}
	if _, err := Load(path, ModeLines); !errors.Is(err, ErrNoPrompts) {
		t.Fatalf("lines mode err = %v, want ErrNoPrompts", err)
	}
}

func TestLoadUnknownMode(t *testing.T) {
	path := writePrompts(t, "Say hi")

	if _, err := Load(path, "paragraphs"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt"), ModeFile); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
