// Package summarizer provides abstractive summarization adapters for the
// headline analysis pipeline. It includes Claude (Anthropic) and OpenAI
// backed implementations with circuit breaker and retry reliability
// patterns, plus an offline digest fallback.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/resilience/retry"
	"newsdesk/internal/utils/text"
)

// maxInputChars bounds the model input. Headlines rarely come close, but a
// pathological result set must not blow the token budget.
const maxInputChars = 6000

// Claude generates abstractive summaries using Anthropic's Claude API.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a Claude summarizer with the given API key and
// configuration. Circuit breaker, retry policy, and metrics recording are
// wired automatically.
func NewClaude(apiKey string, config Config) *Claude {
	slog.Info("initialized claude summarizer",
		slog.Int("character_limit", config.CharacterLimit),
		slog.String("model", config.Model))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize generates a summary of the given text in the given language
// ("en" or "de"). It uses circuit breaker and retry logic for reliability.
func (c *Claude) Summarize(ctx context.Context, language, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, language, input)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// buildPrompt constructs the summarization prompt: one abstractive summary
// in the target language, inside the configured character limit.
func (c *Claude) buildPrompt(language, input string) string {
	return fmt.Sprintf(
		"The following are news headlines about one topic. Write a single %s paragraph of at most %d characters that summarizes what they collectively report. Respond with the summary only.\n\n%s",
		promptLanguage(language), c.config.CharacterLimit, input)
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, language, input string) (string, error) {
	requestID := uuid.New().String()

	truncated := text.TruncateAtSentence(input, maxInputChars)
	if len(truncated) < len(input) {
		slog.Warn("input truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(input)),
			slog.Int("truncated_length", len(truncated)))
	}

	prompt := c.buildPrompt(language, truncated)

	slog.InfoContext(ctx, "starting summarization",
		slog.String("request_id", requestID),
		slog.String("language", language),
		slog.Int("input_length", text.CountRunes(truncated)),
		slog.Int("character_limit", c.config.CharacterLimit))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= c.config.CharacterLimit

	slog.InfoContext(ctx, "summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration(duration)
	if !withinLimit {
		c.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
