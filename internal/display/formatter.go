// Package display turns a ranked article list into the console-facing
// top-N entries. It never re-sorts: upstream order already encodes the
// relevancy ranking.
package display

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// Entry is one formatted result line exposed to the renderer.
type Entry struct {
	// Rank is the 1-based position in the ranked list.
	Rank int

	// Title is the article title; empty when the upstream value is
	// missing. The renderer substitutes a localized placeholder, so no
	// display string is baked in here.
	Title string

	// Source is the publishing outlet's name.
	Source string

	// Published is the human-readable publish timestamp.
	Published string

	// URL is the article link.
	URL string
}

// Iterator lazily yields at most limit formatted entries in input order.
// It is finite and non-restartable: once drained it stays drained.
type Iterator struct {
	articles []entity.Article
	limit    int
	pos      int
}

// NewIterator creates an iterator over the first limit articles.
// A negative limit yields nothing.
func NewIterator(articles []entity.Article, limit int) *Iterator {
	if limit < 0 {
		limit = 0
	}
	return &Iterator{articles: articles, limit: limit}
}

// Next returns the next formatted entry, or false when the sequence is
// exhausted.
func (it *Iterator) Next() (Entry, bool) {
	if it.pos >= it.limit || it.pos >= len(it.articles) {
		return Entry{}, false
	}

	a := it.articles[it.pos]
	it.pos++

	return Entry{
		Rank:      it.pos,
		Title:     a.Title,
		Source:    a.Source,
		Published: FormatPublished(a.PublishedAt),
		URL:       a.URL,
	}, true
}

// Collect drains the iterator into a slice. Mostly a test convenience;
// the renderer consumes entries one at a time.
func (it *Iterator) Collect() []Entry {
	var entries []Entry
	for {
		e, ok := it.Next()
		if !ok {
			return entries
		}
		entries = append(entries, e)
	}
}

// FormatPublished renders an ISO-8601 timestamp as "2006-01-02 15:04:05".
// Unparseable input is passed through untouched rather than dropped.
func FormatPublished(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("2006-01-02 15:04:05")
}
