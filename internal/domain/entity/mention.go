package entity

import "sort"

// Mention is a single recognized entity span: its surface text and the
// category label assigned by the extraction model. Surface text is
// case-sensitive and kept exactly as the model produced it.
type Mention struct {
	Text  string
	Label string
}

// Count is an aggregated entity mention: the surface text, its label, and
// how often it occurred across the analyzed headlines.
type Count struct {
	Text  string
	Label string
	Count int
}

// AggregateMentions groups mentions by (text, label) and returns counts in
// descending frequency order. Ties keep first-seen order, so the result is
// deterministic for a given mention sequence. An empty or nil input yields
// an empty slice.
func AggregateMentions(mentions []Mention) []Count {
	counts := make([]Count, 0, len(mentions))
	index := make(map[Mention]int, len(mentions))

	for _, m := range mentions {
		if i, ok := index[m]; ok {
			counts[i].Count++
			continue
		}
		index[m] = len(counts)
		counts = append(counts, Count{Text: m.Text, Label: m.Label, Count: 1})
	}

	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}
