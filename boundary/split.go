package boundary

import "strings"

// splitter is a Set flattened for the scan loop.
type splitter struct {
	delims  map[string]bool
	pairs   []Boundary
	acronym bool
}

func newSplitter(s Set) *splitter {
	sp := &splitter{delims: make(map[string]bool)}
	for _, b := range s.List() {
		switch {
		case b.kind == kindDelimiter:
			sp.delims[b.delim] = true
		case b.kind == kindAcronym:
			sp.acronym = true
		default:
			sp.pairs = append(sp.pairs, b)
		}
	}
	return sp
}

// splitsBefore reports whether a transition boundary separates gs[i-1] and gs[i].
func (sp *splitter) splitsBefore(gs []string, i int) bool {
	for _, b := range sp.pairs {
		if b.matchPair(gs[i-1], gs[i]) {
			return true
		}
	}
	// Acronym: looking ahead keeps the scan single pass; the split falls
	// before gs[i] when gs[i-1], gs[i] are upper and gs[i+1] is lower.
	return sp.acronym && i+1 < len(gs) && matchAcronym(gs[i-1], gs[i], gs[i+1])
}

// Split breaks text into words at every position where a boundary in set
// matches. Delimiter characters are dropped; every other character is kept,
// in order, in exactly one word. Empty words are never returned.
//
// An empty set returns text as a single word. An empty text returns no words.
func Split(text string, set Set) []string {
	if text == "" {
		return nil
	}
	if len(set) == 0 {
		return []string{text}
	}

	sp := newSplitter(set)
	gs := graphemes(text)
	words := make([]string, 0, 4)

	var word strings.Builder
	word.Grow(len(text))
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for i, g := range gs {
		if i > 0 && sp.splitsBefore(gs, i) {
			flush()
		}
		if sp.delims[g] {
			flush()
			continue
		}
		word.WriteString(g)
	}
	flush()

	return words
}
