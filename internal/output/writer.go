/*
PURPOSE:
  Writes run results to disk as JSON.
  One file per (prompt, item) pair, plus one aggregate summary file.

REQUIREMENTS:
  User-specified:
  - Result files named result_prompt<P>_item<I>.json with 1-based indices so a
    file can be traced back to its inputs by name alone.
  - summary.json written once, after all pairs, listing every record with the
    path of its result file.

  Implementation-discovered:
  - Indented output (2 spaces) for human inspection.
  - HTML escaping off: responses are prose and may legitimately contain
    <, >, &; they must survive a round-trip untouched.
  - A summary entry is appended only after its file write succeeds, so every
    entry maps to exactly one persisted file.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Record

ERROR HANDLING:
  - Returns error on directory creation, marshaling, or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.Encoder for SetEscapeHTML/SetIndent control.
  - Thread-safe. The run loop is sequential today, but writer structs in this
    codebase are safe to share.

USAGE:
  w, err := output.NewResultWriter("outputs")
  path, err := w.Write(rec)
  summaryPath, err := w.WriteSummary()

SELF-HEALING INSTRUCTIONS:
  - If the file naming scheme changes, update resultFileName and the tests
    that assert on it.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update when the summary contract changes.
*/

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xumofan/prompt2/internal/model"
)

// SummaryFileName is the aggregate index written at the end of a run.
const SummaryFileName = "summary.json"

// ResultWriter persists records under a single output directory and
// accumulates the summary for the run.
type ResultWriter struct {
	dir     string
	mu      sync.Mutex
	entries []model.SummaryEntry
}

// NewResultWriter creates the output directory if needed and returns a writer
// rooted there.
func NewResultWriter(dir string) (*ResultWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	// Non-nil so an empty summary marshals as [] rather than null.
	return &ResultWriter{dir: dir, entries: make([]model.SummaryEntry, 0)}, nil
}

// Write serializes one record to its own file and appends it to the summary.
// It returns the path the record was written to.
func (w *ResultWriter) Write(rec model.Record) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := marshalIndent(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record (prompt %d, item %d): %w", rec.PromptIndex, rec.ItemIndex, err)
	}

	path := filepath.Join(w.dir, resultFileName(rec.PromptIndex, rec.ItemIndex))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write result file %s: %w", path, err)
	}

	w.entries = append(w.entries, model.SummaryEntry{Record: rec, File: path})
	return path, nil
}

// WriteSummary writes the accumulated entries as summary.json and returns its
// path. Call it once, after the last record.
func (w *ResultWriter) WriteSummary() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := marshalIndent(w.entries)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	path := filepath.Join(w.dir, SummaryFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file %s: %w", path, err)
	}
	return path, nil
}

// Count returns how many records have been written so far.
func (w *ResultWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func resultFileName(promptIndex, itemIndex int) string {
	return fmt.Sprintf("result_prompt%d_item%d.json", promptIndex, itemIndex)
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
