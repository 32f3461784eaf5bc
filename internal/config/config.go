// Package config loads and validates the startup configuration of the
// application from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	pkgconfig "newsdesk/pkg/config"
)

// Summarizer provider identifiers selectable via SUMMARIZER_PROVIDER.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// NER provider identifiers selectable via NER_PROVIDER.
const (
	NERClaude    = "claude"
	NERHeuristic = "heuristic"
)

// ErrMissingAPIKey indicates that the NewsAPI credential is absent.
// This is fatal at startup: without it no query can be served.
var ErrMissingAPIKey = errors.New("NEWSAPI_KEY is not set; get a free key from https://newsapi.org/register")

// Config holds the process-wide configuration consumed once at startup.
type Config struct {
	// NewsAPIKey is the NewsAPI.org credential. Required.
	NewsAPIKey string

	// OutputDir is the directory CSV exports are written to.
	// Created on first export if absent. Default: current directory.
	OutputDir string

	// DisplayLimit is the number of top-ranked articles shown, summarized,
	// and scanned for entities. The CSV export always covers the full
	// result set regardless of this limit. Default: 15.
	DisplayLimit int

	// SummarizerProvider selects the summarization backend:
	// "claude", "openai", or "none" (offline digest).
	SummarizerProvider string

	// NERProvider selects the entity-extraction backend:
	// "claude" or "heuristic" (offline capitalized-token scan).
	NERProvider string

	// AnthropicAPIKey authenticates Claude-backed adapters.
	AnthropicAPIKey string

	// OpenAIAPIKey authenticates the OpenAI summarizer.
	OpenAIAPIKey string
}

// Load reads the configuration from the environment. Providers that lack
// their API key are downgraded to the offline fallback with a warning so
// the rest of the pipeline keeps working (degraded mode).
func Load() Config {
	cfg := Config{
		NewsAPIKey:         os.Getenv("NEWSAPI_KEY"),
		OutputDir:          pkgconfig.GetEnvString("OUTPUT_DIR", "."),
		DisplayLimit:       pkgconfig.GetEnvInt("DISPLAY_LIMIT", 15),
		SummarizerProvider: pkgconfig.GetEnvString("SUMMARIZER_PROVIDER", ProviderClaude),
		NERProvider:        pkgconfig.GetEnvString("NER_PROVIDER", NERClaude),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
	}

	if cfg.SummarizerProvider == ProviderClaude && cfg.AnthropicAPIKey == "" {
		slog.Warn("ANTHROPIC_API_KEY not set, summarization runs in offline digest mode",
			slog.String("requested_provider", cfg.SummarizerProvider))
		cfg.SummarizerProvider = ProviderNone
	}
	if cfg.SummarizerProvider == ProviderOpenAI && cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, summarization runs in offline digest mode",
			slog.String("requested_provider", cfg.SummarizerProvider))
		cfg.SummarizerProvider = ProviderNone
	}
	if cfg.NERProvider == NERClaude && cfg.AnthropicAPIKey == "" {
		slog.Warn("ANTHROPIC_API_KEY not set, entity extraction falls back to heuristic mode")
		cfg.NERProvider = NERHeuristic
	}

	return cfg
}

// Validate checks the configuration for fatal problems.
// A missing NewsAPI credential aborts startup; everything else has a
// degraded-mode fallback applied during Load.
func (c Config) Validate() error {
	if c.NewsAPIKey == "" || c.NewsAPIKey == "your_api_key_here" {
		return ErrMissingAPIKey
	}

	if c.DisplayLimit < 1 || c.DisplayLimit > 100 {
		return fmt.Errorf("display limit %d out of range [1, 100]", c.DisplayLimit)
	}

	switch c.SummarizerProvider {
	case ProviderClaude, ProviderOpenAI, ProviderNone:
	default:
		return fmt.Errorf("unknown summarizer provider %q", c.SummarizerProvider)
	}

	switch c.NERProvider {
	case NERClaude, NERHeuristic:
	default:
		return fmt.Errorf("unknown NER provider %q", c.NERProvider)
	}

	return nil
}
