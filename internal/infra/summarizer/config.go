package summarizer

import (
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	pkgconfig "newsdesk/pkg/config"
)

const (
	// minCharLimit is the minimum allowed character limit for summaries.
	minCharLimit = 100

	// maxCharLimit is the maximum allowed character limit for summaries.
	maxCharLimit = 5000

	// defaultCharLimit suits a digest of up to fifteen headlines.
	defaultCharLimit = 400
)

// Config holds configuration parameters shared by the AI summarizers.
type Config struct {
	// CharacterLimit is the maximum number of characters allowed in a
	// summary. Loaded from SUMMARIZER_CHAR_LIMIT (range 100-5000).
	CharacterLimit int

	// Model is the provider-specific model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization call.
	Timeout time.Duration
}

// Validate checks the configuration fields.
func (c Config) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// ValidateCharacterLimit validates that the character limit is within the
// valid range (100-5000).
func ValidateCharacterLimit(limit int) error {
	if limit < minCharLimit {
		return fmt.Errorf("character limit %d is below minimum %d", limit, minCharLimit)
	}
	if limit > maxCharLimit {
		return fmt.Errorf("character limit %d exceeds maximum %d", limit, maxCharLimit)
	}
	return nil
}

// LoadClaudeConfig loads the Claude summarizer configuration from
// environment variables, with defaults suitable for headline digests.
func LoadClaudeConfig() (Config, error) {
	return loadConfig(string(anthropic.Model("claude-sonnet-4-5-20250929")))
}

// LoadOpenAIConfig loads the OpenAI summarizer configuration from
// environment variables.
func LoadOpenAIConfig() (Config, error) {
	return loadConfig(pkgconfig.GetEnvString("OPENAI_SUMMARIZER_MODEL", "gpt-4o-mini"))
}

func loadConfig(model string) (Config, error) {
	cfg := Config{
		CharacterLimit: pkgconfig.GetEnvInt("SUMMARIZER_CHAR_LIMIT", defaultCharLimit),
		Model:          model,
		MaxTokens:      pkgconfig.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:        pkgconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid summarizer configuration: %w", err)
	}
	return cfg, nil
}

// promptLanguage maps a search language code to the language name used in
// summarization prompts. Unknown codes default to English.
func promptLanguage(lang string) string {
	switch lang {
	case "de":
		return "German"
	default:
		return "English"
	}
}
