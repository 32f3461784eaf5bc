// Package main is the interactive news search console.
// Usage: newsdesk (configuration comes from the environment / .env file).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"newsdesk/internal/cli"
	"newsdesk/internal/config"
	"newsdesk/internal/export/csvexport"
	"newsdesk/internal/i18n"
	"newsdesk/internal/infra/ner"
	"newsdesk/internal/infra/newsapi"
	"newsdesk/internal/infra/summarizer"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/usecase/analysis"
	"newsdesk/internal/usecase/search"
	pkgconfig "newsdesk/pkg/config"
)

func main() {
	// .env is a local convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	// LOG_PRETTY switches to the human-readable text handler for local runs.
	logger := logging.NewLogger()
	if pkgconfig.GetEnvBool("LOG_PRETTY", false) {
		logger = logging.NewTextLogger()
	}
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	translator, err := i18n.New()
	if err != nil {
		logger.Error("failed to load translation catalogs", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	analysisSvc, err := buildAnalysis(cfg)
	if err != nil {
		logger.Error("failed to initialize analysis backends", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	searchSvc := &search.Service{
		News:     newsapi.NewClient(cfg.NewsAPIKey, newsapi.LoadConfig()),
		Exporter: csvexport.New(cfg.OutputDir),
		Analysis: analysisSvc,
		Limit:    cfg.DisplayLimit,
		Logger:   logger,
	}

	logger.Info("newsdesk starting",
		slog.String("summarizer", cfg.SummarizerProvider),
		slog.String("ner", cfg.NERProvider),
		slog.Int("display_limit", cfg.DisplayLimit))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repl := cli.New(os.Stdin, os.Stdout, translator, searchSvc, logger)
	if err := repl.Run(ctx); err != nil {
		logger.Error("session ended with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// buildAnalysis wires the summarization and entity-extraction backends
// selected by the configuration.
func buildAnalysis(cfg config.Config) (*analysis.Service, error) {
	var sum analysis.Summarizer
	switch cfg.SummarizerProvider {
	case config.ProviderClaude:
		sumCfg, err := summarizer.LoadClaudeConfig()
		if err != nil {
			return nil, fmt.Errorf("summarizer config: %w", err)
		}
		sum = summarizer.NewClaude(cfg.AnthropicAPIKey, sumCfg)
	case config.ProviderOpenAI:
		sumCfg, err := summarizer.LoadOpenAIConfig()
		if err != nil {
			return nil, fmt.Errorf("summarizer config: %w", err)
		}
		sum = summarizer.NewOpenAI(cfg.OpenAIAPIKey, sumCfg)
	case config.ProviderNone:
		sumCfg, err := summarizer.LoadClaudeConfig()
		if err != nil {
			return nil, fmt.Errorf("summarizer config: %w", err)
		}
		sum = summarizer.NewNoop(sumCfg.CharacterLimit)
	default:
		return nil, errors.New("unknown summarizer provider " + cfg.SummarizerProvider)
	}

	var ext analysis.Extractor
	switch cfg.NERProvider {
	case config.NERClaude:
		ext = ner.NewClaude(cfg.AnthropicAPIKey, ner.LoadConfig())
	case config.NERHeuristic:
		ext = ner.NewHeuristic()
	default:
		return nil, errors.New("unknown NER provider " + cfg.NERProvider)
	}

	return analysis.NewService(sum, ext), nil
}
