package summarizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/infra/summarizer"
)

func testConfig() summarizer.Config {
	return summarizer.Config{
		CharacterLimit: 400,
		Model:          "test-model",
		MaxTokens:      1024,
		Timeout:        time.Second,
	}
}

func TestValidateCharacterLimit(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{name: "valid default", limit: 400},
		{name: "lower bound", limit: 100},
		{name: "upper bound", limit: 5000},
		{name: "below minimum", limit: 50, wantErr: true},
		{name: "above maximum", limit: 6000, wantErr: true},
		{name: "zero", limit: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := summarizer.ValidateCharacterLimit(tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Model = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.MaxTokens = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Timeout = 0
	assert.Error(t, bad.Validate())
}

func TestLoadClaudeConfig_EnvOverride(t *testing.T) {
	t.Setenv("SUMMARIZER_CHAR_LIMIT", "900")

	cfg, err := summarizer.LoadClaudeConfig()
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.CharacterLimit)
}

func TestLoadClaudeConfig_RejectsOutOfRange(t *testing.T) {
	t.Setenv("SUMMARIZER_CHAR_LIMIT", "7")

	_, err := summarizer.LoadClaudeConfig()
	assert.Error(t, err)
}

func TestNewClaude(t *testing.T) {
	claude := summarizer.NewClaude("test-api-key", testConfig())
	require.NotNil(t, claude)
}

func TestClaude_Summarize_ContextTimeout(t *testing.T) {
	claude := summarizer.NewClaude("invalid-test-key", testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(5 * time.Millisecond)

	_, err := claude.Summarize(ctx, "en", "test text")
	assert.Error(t, err)
}

func TestNewOpenAI(t *testing.T) {
	o := summarizer.NewOpenAI("test-api-key", testConfig())
	require.NotNil(t, o)
}

func TestOpenAI_Summarize_ContextTimeout(t *testing.T) {
	o := summarizer.NewOpenAI("invalid-test-key", testConfig())

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(5 * time.Millisecond)

	_, err := o.Summarize(ctx, "en", "test text")
	assert.Error(t, err)
}

func TestNoop_Summarize(t *testing.T) {
	noop := summarizer.NewNoop(400)

	in := "Short digest input."
	out, err := noop.Summarize(context.Background(), "de", in)

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNoop_Summarize_TruncatesLongInput(t *testing.T) {
	noop := summarizer.NewNoop(100)

	in := "First headline about something. Second headline about something else. Third headline that pushes past the limit."
	out, err := noop.Summarize(context.Background(), "en", in)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 100)
	assert.Equal(t, "First headline about something. Second headline about something else.", out)
}
