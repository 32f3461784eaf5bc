// Package ner provides named-entity extraction adapters for headline
// analysis: a Claude-backed extractor and an offline heuristic fallback.
package ner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/resilience/circuitbreaker"
	"newsdesk/internal/resilience/retry"
	pkgconfig "newsdesk/pkg/config"
)

// Labels the extractor is asked to use. Mentions with other labels are
// normalized to MISC rather than dropped.
var knownLabels = map[string]struct{}{
	"PERSON": {}, "ORG": {}, "GPE": {}, "LOC": {}, "PRODUCT": {},
	"EVENT": {}, "DATE": {}, "MONEY": {}, "MISC": {},
}

// Config holds the tunable parameters of the Claude entity extractor.
type Config struct {
	// Model is the Claude model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single extraction call.
	Timeout time.Duration
}

// LoadConfig reads the extractor configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Model:     pkgconfig.GetEnvString("NER_MODEL", string(anthropic.Model("claude-sonnet-4-5-20250929"))),
		MaxTokens: pkgconfig.GetEnvInt("NER_MAX_TOKENS", 2048),
		Timeout:   pkgconfig.GetEnvDuration("NER_TIMEOUT", 60*time.Second),
	}
}

// Claude extracts named entities from headline batches using Anthropic's
// Claude API. One call covers the whole batch of a query.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a Claude entity extractor with the given API key and
// configuration.
func NewClaude(apiKey string, config Config) *Claude {
	slog.Info("initialized claude entity extractor",
		slog.String("model", config.Model))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Extract returns every entity mention recognized across the given
// headlines. An empty batch yields an empty result without a model call.
func (c *Claude) Extract(ctx context.Context, language string, headlines []string) ([]entity.Mention, error) {
	if len(headlines) == 0 {
		return []entity.Mention{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var mentions []entity.Mention

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doExtract(ctx, language, headlines)
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

		mentions = cbResult.([]entity.Mention)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("claude entity extraction failed after retries: %w", retryErr)
	}

	return mentions, nil
}

// buildPrompt asks for a strict JSON array so the response parses without
// free-text cleanup beyond code-fence stripping.
func buildPrompt(language string, headlines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Extract every named entity from the following %s news headlines. ", languageName(language))
	b.WriteString("Respond with a JSON array only, no prose, where each element is ")
	b.WriteString(`{"text": "<entity surface text exactly as written>", "label": "<PERSON|ORG|GPE|LOC|PRODUCT|EVENT|DATE|MONEY|MISC>"}. `)
	b.WriteString("List one element per occurrence, so an entity appearing in three headlines appears three times.\n\n")
	for i, h := range headlines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h)
	}
	return b.String()
}

// doExtract performs the actual API call without retry or circuit breaker.
func (c *Claude) doExtract(ctx context.Context, language string, headlines []string) ([]entity.Mention, error) {
	requestID := uuid.New().String()

	slog.InfoContext(ctx, "starting entity extraction",
		slog.String("request_id", requestID),
		slog.String("language", language),
		slog.Int("headlines", len(headlines)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(buildPrompt(language, headlines)),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "entity extraction failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		c.metricsRecorder.RecordFailure()
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return nil, fmt.Errorf("claude api returned unexpected response type")
	}

	mentions, err := ParseMentions(textBlock.Text)
	if err != nil {
		return nil, fmt.Errorf("parse entity response: %w", err)
	}

	slog.InfoContext(ctx, "entity extraction completed",
		slog.String("request_id", requestID),
		slog.Int("mentions", len(mentions)),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordMentions(len(mentions))
	c.metricsRecorder.RecordDuration(duration)

	return mentions, nil
}

// ParseMentions decodes a JSON array of mentions from a model response.
// Markdown code fences around the array are tolerated. Mentions with blank
// or single-rune surface text are dropped as noise; unknown labels are
// normalized to MISC.
func ParseMentions(raw string) ([]entity.Mention, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decoded []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("decode mentions: %w", err)
	}

	mentions := make([]entity.Mention, 0, len(decoded))
	for _, d := range decoded {
		text := strings.TrimSpace(d.Text)
		if len([]rune(text)) <= 1 {
			continue
		}
		label := strings.ToUpper(strings.TrimSpace(d.Label))
		if _, ok := knownLabels[label]; !ok {
			label = "MISC"
		}
		mentions = append(mentions, entity.Mention{Text: text, Label: label})
	}

	return mentions, nil
}

func languageName(lang string) string {
	switch lang {
	case "de":
		return "German"
	default:
		return "English"
	}
}
