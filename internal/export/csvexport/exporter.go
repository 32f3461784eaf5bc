// Package csvexport writes full search result sets to timestamped CSV
// files with a fixed six-column schema. The export always covers every
// returned article, independent of the console display cap.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// header is the fixed column schema, in order.
var header = []string{"Title", "URL", "Published Date", "Source", "Author", "Description"}

// maxTopicRunes caps the sanitized topic embedded in the filename.
const maxTopicRunes = 30

// Record is one exported row. Missing fields are empty strings, never a
// literal null marker.
type Record struct {
	Title       string
	URL         string
	PublishedAt string
	Source      string
	Author      string
	Description string
}

// Exporter writes article exports under a configured output directory,
// creating it on demand.
type Exporter struct {
	outputDir string

	// now is injectable for deterministic filenames in tests.
	now func() time.Time
}

// New creates an Exporter rooted at outputDir.
func New(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir, now: time.Now}
}

// NewWithClock creates an Exporter with an injected clock.
func NewWithClock(outputDir string, now func() time.Time) *Exporter {
	return &Exporter{outputDir: outputDir, now: now}
}

// Export writes one CSV file named
// news_<sanitized_topic>_<lang>_<YYYYMMDD_HHMMSS>.csv containing a header
// row plus one row per record, and returns the file path. The output
// directory is created if absent; I/O failures are returned to the caller
// and not retried.
func (e *Exporter) Export(records []Record, topic, language string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", e.outputDir, err)
	}

	filename := fmt.Sprintf("news_%s_%s_%s.csv",
		SanitizeTopic(topic), language, e.now().Format("20060102_150405"))
	path := filepath.Join(e.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	writeErr := w.Write(header)
	for _, r := range records {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{r.Title, r.URL, r.PublishedAt, r.Source, r.Author, r.Description})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return "", fmt.Errorf("write export file %s: %w", path, writeErr)
	}

	slog.Info("exported articles to csv",
		slog.String("file", path),
		slog.Int("rows", len(records)))

	return path, nil
}

// SanitizeTopic makes a topic string safe for embedding in a filename:
// every rune that is not a Unicode letter or digit becomes an underscore,
// and the result is capped at 30 runes. The transformation is idempotent.
func SanitizeTopic(topic string) string {
	var b strings.Builder
	count := 0
	for _, r := range topic {
		if count == maxTopicRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
		count++
	}
	return b.String()
}
