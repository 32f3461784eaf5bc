// Package analysis adapts the external model contracts (abstractive
// summarization and named-entity extraction) into the normalized outputs
// the console shows: one summary string and a frequency-ordered entity
// table. Both models are bound once at session start and reused
// sequentially across queries.
package analysis

import (
	"context"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/utils/text"
	pkgconfig "newsdesk/pkg/config"
)

// FallbackSummary is returned when the headline blob is empty or too short
// to be worth a model invocation.
const FallbackSummary = "no summary available"

// defaultMinInputRunes is the minimum viable summarization input length.
const defaultMinInputRunes = 40

// Summarizer is the abstractive summarization contract. Implementations
// live in internal/infra/summarizer.
type Summarizer interface {
	Summarize(ctx context.Context, language, input string) (string, error)
}

// Extractor is the named-entity extraction contract. Implementations live
// in internal/infra/ner.
type Extractor interface {
	Extract(ctx context.Context, language string, headlines []string) ([]entity.Mention, error)
}

// Service fans the top-N headlines of a query out to both models.
// The two sub-contracts are independent: a failure in one never affects
// the other.
type Service struct {
	summarizer    Summarizer
	extractor     Extractor
	minInputRunes int
}

// NewService creates the analysis service around the given model adapters.
// The minimum viable input length is tunable via SUMMARIZER_MIN_INPUT.
func NewService(s Summarizer, x Extractor) *Service {
	minRunes := pkgconfig.GetEnvInt("SUMMARIZER_MIN_INPUT", defaultMinInputRunes)
	if minRunes < 0 {
		minRunes = defaultMinInputRunes
	}
	return &Service{summarizer: s, extractor: x, minInputRunes: minRunes}
}

// Summarize joins the articles' headlines into one blob and asks the model
// for a single abstractive summary. Empty, whitespace-only, or too-short
// input returns FallbackSummary without invoking the model. Model failures
// are returned to the caller for degraded-mode display.
func (s *Service) Summarize(ctx context.Context, language string, articles []entity.Article) (string, error) {
	input := JoinHeadlines(entity.Headlines(articles))

	if text.CountRunes(strings.TrimSpace(input)) < s.minInputRunes {
		return FallbackSummary, nil
	}

	return s.summarizer.Summarize(ctx, language, input)
}

// ExtractEntities collects entity mentions across the articles' headlines
// and aggregates them into frequency-ordered counts. An empty article list
// yields an empty result, never an error. Headlines in which the model
// recognizes nothing simply contribute no mentions.
func (s *Service) ExtractEntities(ctx context.Context, language string, articles []entity.Article) ([]entity.Count, error) {
	headlines := entity.Headlines(articles)
	if len(headlines) == 0 {
		return []entity.Count{}, nil
	}

	mentions, err := s.extractor.Extract(ctx, language, headlines)
	if err != nil {
		return nil, err
	}

	return entity.AggregateMentions(mentions), nil
}

// JoinHeadlines concatenates headlines into one sentence-per-headline
// blob: ". "-joined with a closing period. An empty input yields "".
func JoinHeadlines(headlines []string) string {
	if len(headlines) == 0 {
		return ""
	}
	return strings.Join(headlines, ". ") + "."
}
