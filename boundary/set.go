package boundary

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Set is an unordered, deduplicated collection of boundaries.
// Add and Union return new sets and never modify their receiver.
type Set map[Boundary]struct{}

// NewSet returns a set holding bs.
func NewSet(bs ...Boundary) Set {
	s := make(Set, len(bs))
	for _, b := range bs {
		s[b] = struct{}{}
	}
	return s
}

// Defaults returns every delimiter and transition boundary except UpperLower.
// It is the set used when no source style or custom boundaries are given.
func Defaults() Set {
	return NewSet(
		Hyphen, Underscore, Space,
		LowerUpper, Acronym,
		LowerDigit, UpperDigit, DigitLower, DigitUpper,
	)
}

// Has reports whether b is in the set.
func (s Set) Has(b Boundary) bool {
	_, ok := s[b]
	return ok
}

// Len returns the number of boundaries in the set.
func (s Set) Len() int {
	return len(s)
}

// Add returns a new set holding the boundaries of s and bs. s is left
// unchanged.
func (s Set) Add(bs ...Boundary) Set {
	out := make(Set, len(s)+len(bs))
	for b := range s {
		out[b] = struct{}{}
	}
	for _, b := range bs {
		out[b] = struct{}{}
	}
	return out
}

// Union returns a new set holding the boundaries of s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for b := range s {
		out[b] = struct{}{}
	}
	for b := range o {
		out[b] = struct{}{}
	}
	return out
}

// List returns the boundaries in catalog order, followed by custom
// delimiters sorted by character.
func (s Set) List() []Boundary {
	out := make([]Boundary, 0, len(s))
	for _, b := range catalog {
		if s.Has(b) {
			out = append(out, b)
		}
	}
	var custom []Boundary
	for b := range s {
		if b.kind == kindDelimiter && b.name == "" {
			custom = append(custom, b)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i].delim < custom[j].delim })
	return append(out, custom...)
}

// String returns the boundary names in List order, comma separated.
func (s Set) String() string {
	list := s.List()
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name()
	}
	return strings.Join(names, ", ")
}

// FromString returns the boundaries exhibited by s.
//
// Every built-in boundary whose sample pattern occurs in s is selected:
// single characters for delimiters, adjacent pairs for transitions and
// adjacent triples for Acronym. Any other character that is neither a letter
// nor a digit becomes a Delimiter boundary.
//
// Example: "aA" -> {LowerUpper}
// Example: "-" -> {Hyphen}
// Example: "_aA1" -> {Underscore, LowerUpper, UpperDigit}
// Example: "." -> {Delimiter(.)}
func FromString(s string) Set {
	gs := graphemes(s)
	out := make(Set)
	for i, g := range gs {
		if !isLetterOrDigit(g) {
			out[delimiterFor(g)] = struct{}{}
		}
		if i > 0 {
			for _, b := range catalog[3:] {
				if b.matchPair(gs[i-1], g) {
					out[b] = struct{}{}
				}
			}
		}
		if i > 1 && matchAcronym(gs[i-2], gs[i-1], g) {
			out[Acronym] = struct{}{}
		}
	}
	return out
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}
