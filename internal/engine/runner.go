/*
PURPOSE:
  High-level runner that orchestrates one batch.
  Loops through Items -> Prompts and records every exchange.

REQUIREMENTS:
  User-specified:
  - Items outer loop, prompts inner loop, strictly sequential.
  - One JSON file per pair plus summary.json at the end.
  - First failure aborts the run; files already written stay put and no
    summary is produced for a broken run.

  Implementation-discovered:
  - Input validation (table, prompts) must finish before the client exists,
    so a bad table never costs a network call.
  - The row limit applies to items only, before the loop, preserving order.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/table, internal/prompt, internal/output, internal/model

ERROR HANDLING:
  - Errors return immediately with pair context where relevant. No retries,
    no partial-run recovery.

IMPLEMENTATION RULES:
  - Iterate slices only; ordering is part of the contract.
  - Timestamps are UTC, taken when the response arrives.

USAGE:
  err := engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/client.go
  - internal/output/writer.go

MAINTENANCE:
  - Update iteration logic if parallel dispatch is ever introduced.
*/

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/model"
	"github.com/xumofan/prompt2/internal/output"
	"github.com/xumofan/prompt2/internal/prompt"
	"github.com/xumofan/prompt2/internal/table"
)

// Run executes the full batch: every table item against every prompt, one
// request at a time, in order.
func Run(cfg *config.Config) error {
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

	writer, err := output.NewResultWriter(cfg.OutputDir)
	if err != nil {
		return err
	}

	// Inputs are valid; only now does a client get built.
	e := New(cfg)
	ctx := context.Background()

	output.Logger.Info("Starting run",
		"items", len(items),
		"prompts", len(prompts),
		"model", cfg.Model,
		"output", cfg.OutputDir,
	)

	for itemIdx, item := range items {
		for promptIdx, promptText := range prompts {
			output.Logger.Info("Requesting completion", "item", itemIdx+1, "prompt", promptIdx+1, "value", item)

			response, err := e.Complete(ctx, promptText, item)
			if err != nil {
				return fmt.Errorf("completion failed for item %d, prompt %d: %w", itemIdx+1, promptIdx+1, err)
			}

			rec := model.Record{
				PromptIndex: promptIdx + 1,
				ItemIndex:   itemIdx + 1,
				TableValue:  item,
				Prompt:      promptText,
				Model:       cfg.Model,
				Response:    response,
				Timestamp:   time.Now().UTC(),
			}
			path, err := writer.Write(rec)
			if err != nil {
				return err
			}
			output.Logger.Debug("Result written", "file", path)
		}
	}

	summaryPath, err := writer.WriteSummary()
	if err != nil {
		return err
	}

	output.Logger.Info("Run complete", "results", writer.Count(), "summary", summaryPath)
	fmt.Printf("Saved %d results. Summary: %s\n", writer.Count(), summaryPath)
	return nil
}
