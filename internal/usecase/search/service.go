// Package search orchestrates one query end to end: fetch articles from
// the news upstream, then fan the in-memory list out to the three
// independent consumers: console display, CSV export, and headline
// analysis. The branches never depend on each other's output, and a
// failure in one leaves the others intact.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/export/csvexport"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/usecase/analysis"
)

// NewsSearcher is the query client contract, implemented by
// internal/infra/newsapi.
type NewsSearcher interface {
	Search(ctx context.Context, query, language string) ([]entity.Article, error)
}

// Exporter is the CSV export contract, implemented by
// internal/export/csvexport.
type Exporter interface {
	Export(records []csvexport.Record, topic, language string) (string, error)
}

// Service runs the per-query pipeline. It holds no state across queries;
// the model bindings inside the analysis service are fixed at session
// start.
type Service struct {
	News     NewsSearcher
	Exporter Exporter
	Analysis *analysis.Service

	// Limit is the top-N display cap. The CSV export always covers the
	// full result set.
	Limit int

	Logger *slog.Logger
}

// Result carries the independent outputs of one query's fan-out.
// Branch errors are recorded per branch instead of aborting the query,
// so the console can show whatever succeeded.
type Result struct {
	// Articles is the full result set in upstream relevancy order.
	Articles []entity.Article

	// TopN is the display subset: the first Limit articles.
	TopN []entity.Article

	CSVPath string
	CSVErr  error

	Summary    string
	SummaryErr error

	Entities    []entity.Count
	EntitiesErr error
}

// Empty reports whether the query produced no articles at all.
func (r *Result) Empty() bool {
	return len(r.Articles) == 0
}

// Run executes one query. Upstream API errors abort the whole query;
// everything past the fetch is a fan-out branch whose error only degrades
// its own output. A zero-article result short-circuits: no export and no
// analysis are attempted.
func (s *Service) Run(ctx context.Context, topic, language string) (*Result, error) {
	logger := logging.WithQueryID(s.logger(), uuid.New().String()).With(
		slog.String("topic", topic),
		slog.String("language", language))

	// Downstream clients log through the context so their entries carry
	// the query id too.
	ctx = logging.WithLogger(ctx, logger)

	logger.Info("searching news")

	articles, err := s.News.Search(ctx, topic, language)
	if err != nil {
		logger.Error("news search failed", slog.Any("error", err))
		return nil, fmt.Errorf("search %q: %w", topic, err)
	}

	result := &Result{Articles: articles}
	if result.Empty() {
		logger.Info("no articles found")
		return result, nil
	}

	result.TopN = entity.TopN(articles, s.Limit)
	logger.Info("articles fetched",
		slog.Int("total", len(articles)),
		slog.Int("displayed", len(result.TopN)))

	// Export covers the full set, not the display subset.
	result.CSVPath, result.CSVErr = s.Exporter.Export(toRecords(articles), topic, language)
	if result.CSVErr != nil {
		logger.Error("csv export failed", slog.Any("error", result.CSVErr))
	}

	result.Summary, result.SummaryErr = s.Analysis.Summarize(ctx, language, result.TopN)
	if result.SummaryErr != nil {
		logger.Error("summarization failed", slog.Any("error", result.SummaryErr))
	}

	result.Entities, result.EntitiesErr = s.Analysis.ExtractEntities(ctx, language, result.TopN)
	if result.EntitiesErr != nil {
		logger.Error("entity extraction failed", slog.Any("error", result.EntitiesErr))
	}

	return result, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// toRecords projects articles onto the fixed export schema.
func toRecords(articles []entity.Article) []csvexport.Record {
	records := make([]csvexport.Record, 0, len(articles))
	for _, a := range articles {
		records = append(records, csvexport.Record{
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source,
			Author:      a.Author,
			Description: a.Description,
		})
	}
	return records
}
