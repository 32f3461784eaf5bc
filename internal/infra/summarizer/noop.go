package summarizer

import (
	"context"

	"newsdesk/internal/utils/text"
)

// Noop is an offline summarizer used when no AI provider is configured.
// It returns a leading extract of the input instead of an abstractive
// summary, keeping the pipeline alive in degraded mode.
type Noop struct {
	limit int
}

// NewNoop creates a Noop summarizer bounded by the given character limit.
// Non-positive limits fall back to the default.
func NewNoop(limit int) *Noop {
	if limit <= 0 {
		limit = defaultCharLimit
	}
	return &Noop{limit: limit}
}

// Summarize returns the input truncated at a sentence boundary within the
// configured limit. The language is ignored; the extract is verbatim input.
func (n *Noop) Summarize(_ context.Context, _ string, input string) (string, error) {
	return text.TruncateAtSentence(input, n.limit), nil
}
