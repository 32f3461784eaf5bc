package analysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/usecase/analysis"
)

type mockSummarizer struct {
	calls    int
	gotLang  string
	gotInput string
	result   string
	err      error
}

func (m *mockSummarizer) Summarize(_ context.Context, language, input string) (string, error) {
	m.calls++
	m.gotLang = language
	m.gotInput = input
	return m.result, m.err
}

type mockExtractor struct {
	calls    int
	got      []string
	mentions []entity.Mention
	err      error
}

func (m *mockExtractor) Extract(_ context.Context, _ string, headlines []string) ([]entity.Mention, error) {
	m.calls++
	m.got = headlines
	return m.mentions, m.err
}

func articlesWithTitles(titles ...string) []entity.Article {
	articles := make([]entity.Article, len(titles))
	for i, title := range titles {
		articles[i] = entity.Article{Title: title}
	}
	return articles
}

func TestSummarize_CallsModelWithJoinedHeadlines(t *testing.T) {
	sum := &mockSummarizer{result: "a summary"}
	svc := analysis.NewService(sum, &mockExtractor{})

	articles := articlesWithTitles(
		"Chancellor announces new climate package for northern states",
		"Opposition criticizes climate package as insufficient",
	)

	got, err := svc.Summarize(context.Background(), "de", articles)

	require.NoError(t, err)
	assert.Equal(t, "a summary", got)
	assert.Equal(t, 1, sum.calls)
	assert.Equal(t, "de", sum.gotLang)
	assert.Equal(t,
		"Chancellor announces new climate package for northern states. Opposition criticizes climate package as insufficient.",
		sum.gotInput)
}

func TestSummarize_EmptyInputNeverInvokesModel(t *testing.T) {
	sum := &mockSummarizer{result: "should not appear"}
	svc := analysis.NewService(sum, &mockExtractor{})

	tests := []struct {
		name     string
		articles []entity.Article
	}{
		{name: "no articles", articles: nil},
		{name: "empty titles", articles: articlesWithTitles("", "")},
		{name: "whitespace only", articles: articlesWithTitles("   ", "\t")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Summarize(context.Background(), "en", tt.articles)
			require.NoError(t, err)
			assert.Equal(t, analysis.FallbackSummary, got)
		})
	}
	assert.Zero(t, sum.calls)
}

func TestSummarize_BelowMinimumLengthUsesFallback(t *testing.T) {
	sum := &mockSummarizer{result: "should not appear"}
	svc := analysis.NewService(sum, &mockExtractor{})

	got, err := svc.Summarize(context.Background(), "en", articlesWithTitles("Short"))

	require.NoError(t, err)
	assert.Equal(t, analysis.FallbackSummary, got)
	assert.Zero(t, sum.calls)
}

func TestSummarize_PropagatesModelError(t *testing.T) {
	wantErr := errors.New("model unavailable")
	sum := &mockSummarizer{err: wantErr}
	svc := analysis.NewService(sum, &mockExtractor{})

	_, err := svc.Summarize(context.Background(), "en", articlesWithTitles(
		"A sufficiently long headline about current events in Europe",
	))

	assert.ErrorIs(t, err, wantErr)
}

func TestExtractEntities_Aggregates(t *testing.T) {
	x := &mockExtractor{mentions: []entity.Mention{
		{Text: "Berlin", Label: "GPE"},
		{Text: "Siemens", Label: "ORG"},
		{Text: "Berlin", Label: "GPE"},
	}}
	svc := analysis.NewService(&mockSummarizer{}, x)

	counts, err := svc.ExtractEntities(context.Background(), "de", articlesWithTitles("a", "b"))

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, entity.Count{Text: "Berlin", Label: "GPE", Count: 2}, counts[0])
	assert.Equal(t, entity.Count{Text: "Siemens", Label: "ORG", Count: 1}, counts[1])
}

func TestExtractEntities_EmptyInputSkipsModel(t *testing.T) {
	x := &mockExtractor{}
	svc := analysis.NewService(&mockSummarizer{}, x)

	counts, err := svc.ExtractEntities(context.Background(), "en", nil)

	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Zero(t, x.calls)
}

func TestExtractEntities_NoRecognizedEntitiesIsNotAnError(t *testing.T) {
	x := &mockExtractor{mentions: []entity.Mention{}}
	svc := analysis.NewService(&mockSummarizer{}, x)

	counts, err := svc.ExtractEntities(context.Background(), "en", articlesWithTitles("nothing here"))

	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestExtractEntities_PropagatesModelError(t *testing.T) {
	wantErr := errors.New("model not available")
	x := &mockExtractor{err: wantErr}
	svc := analysis.NewService(&mockSummarizer{}, x)

	_, err := svc.ExtractEntities(context.Background(), "en", articlesWithTitles("headline"))
	assert.ErrorIs(t, err, wantErr)
}

func TestExtractEntities_SkipsEmptyTitles(t *testing.T) {
	x := &mockExtractor{mentions: []entity.Mention{}}
	svc := analysis.NewService(&mockSummarizer{}, x)

	_, err := svc.ExtractEntities(context.Background(), "en", []entity.Article{
		{Title: "Real headline"},
		{Title: ""},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Real headline"}, x.got)
}

func TestJoinHeadlines(t *testing.T) {
	assert.Equal(t, "", analysis.JoinHeadlines(nil))
	assert.Equal(t, "One.", analysis.JoinHeadlines([]string{"One"}))
	assert.Equal(t, "One. Two.", analysis.JoinHeadlines([]string{"One", "Two"}))
}
