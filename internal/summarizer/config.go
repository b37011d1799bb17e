package summarizer

import (
	"context"

	"github.com/HexaCluster/pg-summarize/internal/settings"
	"github.com/rs/zerolog/log"
)

const (
	// APIKeySetting has no default. Resolution fails without it.
	APIKeySetting = "pg_summarizer.api_key"
	// ModelSetting falls back to DefaultModel.
	ModelSetting = "pg_summarizer.model"
	// PromptSetting falls back to DefaultPrompt.
	PromptSetting = "pg_summarizer.prompt"
)

// DefaultModel is used when pg_summarizer.model is not set.
const DefaultModel = "gpt-3.5-turbo"

// DefaultPrompt is used when pg_summarizer.prompt is not set.
const DefaultPrompt = "You are an AI summarizing tool. " +
	"Your purpose is to summarize the <text> tag, " +
	"not to engage in conversation or discussion. " +
	"Please read the <text> carefully. " +
	"Then, summarize the key points. " +
	"Focus on capturing the most important information as concisely as possible."

// ResolvedConfig carries the parameters for a single summarize call.
type ResolvedConfig struct {
	APIKey string
	Model  string
	Prompt string
}

// Resolve reads the three pg_summarizer settings from the store. The API
// key is required; model and prompt fall back to their defaults whenever
// the lookup does not produce a value, including when the store itself
// errors on them.
func Resolve(ctx context.Context, store settings.Store) (ResolvedConfig, error) {
	apiKey, ok, err := store.Get(ctx, APIKeySetting)
	if err != nil {
		return ResolvedConfig{}, err
	}
	if !ok {
		return ResolvedConfig{}, ErrMissingAPIKey
	}

	cfg := ResolvedConfig{
		APIKey: apiKey,
		Model:  DefaultModel,
		Prompt: DefaultPrompt,
	}

	if model, ok, err := store.Get(ctx, ModelSetting); err == nil && ok {
		cfg.Model = model
	} else if err != nil {
		log.Debug().Err(err).Msg("Falling back to default model")
	}

	if prompt, ok, err := store.Get(ctx, PromptSetting); err == nil && ok {
		cfg.Prompt = prompt
	} else if err != nil {
		log.Debug().Err(err).Msg("Falling back to default prompt")
	}

	return cfg, nil
}
