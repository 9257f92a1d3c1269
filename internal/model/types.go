/*
PURPOSE:
  Defines the core data structures used throughout prompt2.
  These models represent one request/response exchange and the run summary.

REQUIREMENTS:
  User-specified:
  - Record prompt index, item index, table value, prompt text, model name,
    response text, and a timestamp for every exchange.
  - Summary entries must point back at the file each record was written to.

  Implementation-discovered:
  - JSON tags are snake_case with 1-based indices; downstream scripts parse
    this shape, so it is a contract.
  - Embedding Record in SummaryEntry inlines its fields, which keeps a summary
    entry equal to its result file content plus the "file" key.

ARCHITECTURE INTEGRATION:
  - Used by: internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - time.Time for timestamps; encoding/json renders it RFC 3339 in UTC.

USAGE:
  rec := model.Record{PromptIndex: 1, ItemIndex: 1, ...}

SELF-HEALING INSTRUCTIONS:
  - New metadata goes on Record; it then flows into both the result files and
    the summary automatically.

RELATED FILES:
  - internal/output/writer.go

MAINTENANCE:
  - Update when the result file contract changes.
*/

package model

import (
	"time"
)

// Record captures one (item, prompt) exchange with the model.
type Record struct {
	PromptIndex int       `json:"prompt_index"`
	ItemIndex   int       `json:"item_index"`
	TableValue  string    `json:"table_value"`
	Prompt      string    `json:"prompt"`
	Model       string    `json:"model"`
	Response    string    `json:"response"`
	Timestamp   time.Time `json:"timestamp"`
}

// SummaryEntry is a Record plus the path of the result file it landed in.
type SummaryEntry struct {
	Record
	File string `json:"file"`
}
