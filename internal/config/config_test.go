package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NEWSAPI_KEY", "test-key")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("DISPLAY_LIMIT", "")
	t.Setenv("SUMMARIZER_PROVIDER", "")
	t.Setenv("NER_PROVIDER", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg := config.Load()

	assert.Equal(t, "test-key", cfg.NewsAPIKey)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 15, cfg.DisplayLimit)
	// No Anthropic key: both AI providers degrade to offline fallbacks.
	assert.Equal(t, config.ProviderNone, cfg.SummarizerProvider)
	assert.Equal(t, config.NERHeuristic, cfg.NERProvider)
}

func TestLoad_ClaudeProviderKept(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg := config.Load()

	assert.Equal(t, config.ProviderClaude, cfg.SummarizerProvider)
	assert.Equal(t, config.NERClaude, cfg.NERProvider)
}

func TestLoad_OpenAIDegradesWithoutKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SUMMARIZER_PROVIDER", "openai")

	cfg := config.Load()
	assert.Equal(t, config.ProviderNone, cfg.SummarizerProvider)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg = config.Load()
	assert.Equal(t, config.ProviderOpenAI, cfg.SummarizerProvider)
}

func TestValidate(t *testing.T) {
	setBaseEnv(t)

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "missing key",
			mutate:  func(c *config.Config) { c.NewsAPIKey = "" },
			wantErr: "NEWSAPI_KEY",
		},
		{
			name:    "placeholder key",
			mutate:  func(c *config.Config) { c.NewsAPIKey = "your_api_key_here" },
			wantErr: "NEWSAPI_KEY",
		},
		{
			name:    "display limit too large",
			mutate:  func(c *config.Config) { c.DisplayLimit = 500 },
			wantErr: "display limit",
		},
		{
			name:    "unknown summarizer provider",
			mutate:  func(c *config.Config) { c.SummarizerProvider = "bard" },
			wantErr: "summarizer provider",
		},
		{
			name:    "unknown ner provider",
			mutate:  func(c *config.Config) { c.NERProvider = "spacy" },
			wantErr: "NER provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Load()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MissingKeyIsSentinel(t *testing.T) {
	cfg := config.Config{DisplayLimit: 15}
	assert.ErrorIs(t, cfg.Validate(), config.ErrMissingAPIKey)
}
