// Package entity defines the core domain values of the application:
// news articles as returned by the search upstream, and the named-entity
// aggregates derived from their headlines.
package entity

// Article represents a single news article as returned by the search
// upstream. Articles are immutable once received; missing upstream fields
// are normalized to the empty string, never to a literal null marker.
type Article struct {
	Title       string
	URL         string
	PublishedAt string // ISO-8601 timestamp as delivered by the upstream
	Source      string
	Author      string
	Description string
}

// Headlines returns the non-empty titles of the given articles,
// preserving input order.
func Headlines(articles []Article) []string {
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.Title != "" {
			titles = append(titles, a.Title)
		}
	}
	return titles
}

// TopN returns the first n articles, or all of them when fewer exist.
// The upstream order already encodes relevancy ranking, so no re-sorting
// happens here.
func TopN(articles []Article, n int) []Article {
	if n < 0 {
		n = 0
	}
	if len(articles) <= n {
		return articles
	}
	return articles[:n]
}
