// Package pattern defines how each word of a split identifier is cased.
//
// A [Pattern] depends only on a word's position in the sequence, never on
// its content: [Camel] lowercases the first word and capitalizes the rest,
// [Sentence] capitalizes the first word and lowercases the rest, and so on.
//
// [Random] and [PseudoRandom] draw case bits from a [math/rand/v2.Source].
// Pass a seeded source to [Transform] for reproducible output; a nil source
// uses a fresh generator per call, so output differs from run to run. This is
// the defined behavior of those patterns.
package pattern

import (
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/internal/naming"
)

// Pattern enumerates the word casing patterns.
type Pattern int

const (
	// Lowercase: lower, lower, ...
	Lowercase Pattern = iota
	// Uppercase: UPPER, UPPER, ...
	Uppercase
	// Capital: Capital, Capital, ...
	Capital
	// Sentence: Capital, lower, lower, ...
	Sentence
	// Camel: lower, Capital, Capital, ...
	Camel
	// Alternating: letters alternate lower/upper, starting lower in every word.
	Alternating
	// Toggle: letters alternate upper/lower, starting upper in every word.
	Toggle
	// PseudoRandom: letters in pairs, a random case then its opposite.
	PseudoRandom
	// Random: every letter independently random.
	Random
)

var names = [...]string{
	Lowercase:    "Lowercase",
	Uppercase:    "Uppercase",
	Capital:      "Capital",
	Sentence:     "Sentence",
	Camel:        "Camel",
	Alternating:  "Alternating",
	Toggle:       "Toggle",
	PseudoRandom: "PseudoRandom",
	Random:       "Random",
}

var examples = [...]string{
	Lowercase:    "lower, lower, ...",
	Uppercase:    "UPPER, UPPER, ...",
	Capital:      "Capital, Capital, ...",
	Sentence:     "Capital, lower, lower, ...",
	Camel:        "lower, Capital, Capital, ...",
	Alternating:  "aLtErNaTiNg, aLtErNaTiNg, ...",
	Toggle:       "ToGgLe, ToGgLe, ...",
	PseudoRandom: "pSUeDorANdOm, pSUedORaNdoM, ...",
	Random:       "RanDOM, RAndom, ...",
}

// All returns every pattern in catalog order.
func All() []Pattern {
	out := make([]Pattern, len(names))
	for i := range names {
		out[i] = Pattern(i)
	}
	return out
}

// String returns the pattern name, e.g. "PseudoRandom".
func (p Pattern) String() string {
	if p < 0 || int(p) >= len(names) {
		return "Pattern(?)"
	}
	return names[p]
}

// Example returns a short illustration of the pattern for help output.
func (p Pattern) Example() string {
	if p < 0 || int(p) >= len(examples) {
		return ""
	}
	return examples[p]
}

// IsRandom reports whether the pattern consumes random bits.
func (p Pattern) IsRandom() bool {
	return p == Random || p == PseudoRandom
}

// Resolve looks up a pattern by name. Matching is case and punctuation
// insensitive: "pseudo_random", "PseudoRandom" and "PSEUDO-RANDOM" all match.
// It returns a *caseerrors.UnknownPatternError when nothing matches.
func Resolve(name string) (Pattern, error) {
	flat := naming.Flat(name)
	if flat != "" {
		for i, n := range names {
			if naming.Flat(n) == flat {
				return Pattern(i), nil
			}
		}
	}
	return 0, &caseerrors.UnknownPatternError{
		Name:       name,
		Suggestion: naming.Suggest(name, names[:]),
	}
}
