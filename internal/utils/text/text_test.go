package text_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"newsdesk/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII text", input: "hello", expected: 5},
		{name: "empty string", input: "", expected: 0},
		{name: "German umlauts", input: "Bundesländer", expected: 12},
		{name: "sharp s", input: "Straße", expected: 6},
		{name: "emoji", input: "news📰", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.CountRunes(tt.input))
		})
	}
}

func TestTruncateDisplay(t *testing.T) {
	assert.Equal(t, "short", text.TruncateDisplay("short", 10))

	out := text.TruncateDisplay("a very long entity name indeed", 10)
	assert.LessOrEqual(t, len([]rune(out)), 10)
	assert.Contains(t, out, "..")
}

func TestTruncateAtSentence(t *testing.T) {
	in := "First headline. Second headline. Third headline that is quite long."

	out := text.TruncateAtSentence(in, 40)
	assert.Equal(t, "First headline. Second headline.", out)

	// No boundary inside the budget: hard cut.
	assert.Equal(t, "abcdefghij", text.TruncateAtSentence("abcdefghijklmno", 10))

	// Already within budget: unchanged.
	assert.Equal(t, in, text.TruncateAtSentence(in, len(in)))
}

func TestTruncateAtSentence_NeverSplitsRunes(t *testing.T) {
	// "ä" is two bytes; a byte cut at 8 would land mid-rune.
	out := text.TruncateAtSentence("Bundesländer", 8)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "Bundesl", out)

	// Cut point inside a 4-byte emoji backs up past it.
	out = text.TruncateAtSentence("ab📰cd", 4)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "ab", out)
}
