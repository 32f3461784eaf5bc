package ner

import (
	"context"
	"strings"
	"unicode"

	"newsdesk/internal/domain/entity"
)

// Stopwords per language for the heuristic extractor. Headlines capitalize
// freely, so common function words must not be mistaken for entities.
var heuristicStopwords = map[string]map[string]struct{}{
	"en": toSet("the", "and", "for", "with", "from", "this", "that", "after",
		"over", "into", "amid", "under", "what", "when", "where", "why",
		"how", "his", "her", "its", "are", "was", "will", "has", "have",
		"new", "more", "most", "not", "but", "about", "against"),
	"de": toSet("der", "die", "das", "den", "dem", "des", "und", "für",
		"mit", "von", "nach", "über", "unter", "gegen", "eine", "einen",
		"einer", "einem", "eines", "ein", "auf", "aus", "bei", "wie",
		"was", "wer", "wann", "warum", "ist", "sind", "wird", "werden",
		"hat", "haben", "nicht", "mehr", "auch", "noch", "als", "beim"),
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Heuristic is the offline fallback extractor used when no model API key
// is configured: it collects capitalized tokens longer than two runes that
// are not stopwords, labeled UNKNOWN. Crude, but it keeps the entity
// table populated in degraded mode.
type Heuristic struct{}

// NewHeuristic creates the offline fallback extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Extract scans the headlines for capitalized candidate tokens.
// It never returns an error; an empty batch yields an empty result.
func (h *Heuristic) Extract(_ context.Context, language string, headlines []string) ([]entity.Mention, error) {
	stopwords := heuristicStopwords[language]
	if stopwords == nil {
		stopwords = heuristicStopwords["en"]
	}

	mentions := []entity.Mention{}
	for _, headline := range headlines {
		for _, word := range strings.Fields(headline) {
			candidate := strings.Trim(word, `.,!?;:"'-—()[]`)
			if len([]rune(candidate)) <= 2 {
				continue
			}
			runes := []rune(candidate)
			if !unicode.IsUpper(runes[0]) {
				continue
			}
			if _, stop := stopwords[strings.ToLower(candidate)]; stop {
				continue
			}
			mentions = append(mentions, entity.Mention{Text: candidate, Label: "UNKNOWN"})
		}
	}

	return mentions, nil
}
