// Package text provides small utilities for text measurement and display
// truncation, shared by the AI adapters and the console renderer.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Counting runes instead of bytes keeps character limits correct for
// non-ASCII input such as German umlauts.
func CountRunes(text string) int {
	return len([]rune(text))
}

// TruncateDisplay shortens s so that it occupies at most width terminal
// cells, appending ".." when truncation happens. Width is measured with
// go-runewidth so double-width characters are accounted for.
func TruncateDisplay(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "..")
}

// TruncateAtSentence shortens s to at most max bytes, preferring to cut at
// the last full sentence ('.' boundary) within the budget. Used to keep
// model inputs inside token limits without splitting a headline mid-word.
func TruncateAtSentence(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back the cut point up to a rune boundary so a multi-byte character
	// is never split.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	head := s[:cut]
	if last := strings.LastIndex(head, "."); last > 0 {
		return head[:last+1]
	}
	return head
}
