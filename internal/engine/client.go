/*
PURPOSE:
  Core engine for talking to the Poe API.
  Handles chat completions and model catalog listing.

REQUIREMENTS:
  User-specified:
  - One single-turn request per (item, prompt) pair.
  - The request text is the prompt, a blank line, then "Count value: <item>".
  - A failed request fails the run; no retry, no fallback.

  Implementation-discovered:
  - Poe speaks the OpenAI chat-completions contract, so the official
    openai-go client with a base URL override does the transport.
  - The SDK retries transient failures by default; MaxRetries must be 0 or
    the single-attempt contract is silently violated.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner), internal/cli (models)
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Transport and endpoint errors are returned as-is; callers add pair
    context. A 200 with no choices is also an error.

IMPLEMENTATION RULES:
  - Build the client once per run, reuse it for every request.
  - No timeout tuning here; a hung request is the operator's signal to kill
    the run.

USAGE:
  e := engine.New(cfg)
  reply, err := e.Complete(ctx, promptText, item)

SELF-HEALING INSTRUCTIONS:
  - If Poe moves off the OpenAI contract, this file is the only place that
    knows the wire format.

RELATED FILES:
  - internal/config/config.go
  - internal/engine/runner.go

MAINTENANCE:
  - Update when request parameters (temperature, max tokens) become
    configurable.
*/

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/xumofan/prompt2/internal/config"
	"github.com/xumofan/prompt2/internal/output"
)

// Engine handles Poe API interactions.
type Engine struct {
	Config *config.Config
	Client openai.Client
}

// New creates a new Engine whose client points at cfg.BaseURL.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Config: cfg,
		Client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
		),
	}
}

// Complete pairs promptText with item using the fixed template and returns
// the model's reply text.
func (e *Engine) Complete(ctx context.Context, promptText, item string) (string, error) {
	content := fmt.Sprintf("%s\n\nCount value: %s", promptText, item)
	output.Logger.Debug("Sending chat completion", "model", e.Config.Model, "chars", len(content))

	completion, err := e.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.Config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(content),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion: endpoint returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// ListModels returns the model identifiers the endpoint currently serves.
func (e *Engine) ListModels(ctx context.Context) ([]string, error) {
	page, err := e.Client.Models.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		names = append(names, m.ID)
	}
	return names, nil
}
