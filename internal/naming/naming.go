// Package naming provides flat-name normalization and name suggestions.
package naming

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// MaxSuggestDistance is the largest edit distance Suggest accepts.
const MaxSuggestDistance = 2

var folder = cases.Fold()

// Flat returns the lookup form of a name: case folded, with everything
// but letters and digits removed.
// Example: "SCREAMING_SNAKE" -> "screamingsnake"
// Example: "Upper Camel" -> "uppercamel"
func Flat(s string) string {
	if s == "" {
		return ""
	}

	folded := folder.String(s)

	var result strings.Builder
	result.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Suggest returns the candidate closest to name when its edit distance, measured
// on flat forms, is at most MaxSuggestDistance. Ties keep the earliest candidate.
// It returns "" when nothing is close enough or name is already an exact match.
func Suggest(name string, candidates []string) string {
	flat := Flat(name)
	if flat == "" {
		return ""
	}

	lev := metrics.NewLevenshtein()
	best := ""
	bestDist := MaxSuggestDistance + 1
	for _, c := range candidates {
		d := lev.Distance(flat, Flat(c))
		if d == 0 {
			return ""
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
