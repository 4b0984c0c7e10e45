package boundary

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type kind uint8

const (
	kindDelimiter kind = iota
	kindLowerUpper
	kindUpperLower
	kindAcronym
	kindLowerDigit
	kindUpperDigit
	kindDigitLower
	kindDigitUpper
)

// Boundary is one splitting rule. Boundary values are comparable and can be
// used as map keys.
type Boundary struct {
	kind  kind
	name  string
	delim string
}

// Built-in boundaries, in catalog order.
var (
	// Hyphen splits on "-".
	Hyphen = Boundary{kind: kindDelimiter, name: "Hyphen", delim: "-"}
	// Underscore splits on "_".
	Underscore = Boundary{kind: kindDelimiter, name: "Underscore", delim: "_"}
	// Space splits on " ".
	Space = Boundary{kind: kindDelimiter, name: "Space", delim: " "}
	// LowerUpper splits between a lowercase and an uppercase letter (aA).
	LowerUpper = Boundary{kind: kindLowerUpper, name: "LowerUpper"}
	// UpperLower splits between an uppercase and a lowercase letter (Aa).
	UpperLower = Boundary{kind: kindUpperLower, name: "UpperLower"}
	// Acronym splits before the last letter of an uppercase run that is
	// followed by a lowercase letter (AAa).
	Acronym = Boundary{kind: kindAcronym, name: "Acronym"}
	// LowerDigit splits between a lowercase letter and a digit (a1).
	LowerDigit = Boundary{kind: kindLowerDigit, name: "LowerDigit"}
	// UpperDigit splits between an uppercase letter and a digit (A1).
	UpperDigit = Boundary{kind: kindUpperDigit, name: "UpperDigit"}
	// DigitLower splits between a digit and a lowercase letter (1a).
	DigitLower = Boundary{kind: kindDigitLower, name: "DigitLower"}
	// DigitUpper splits between a digit and an uppercase letter (1A).
	DigitUpper = Boundary{kind: kindDigitUpper, name: "DigitUpper"}
)

var catalog = []Boundary{
	Hyphen, Underscore, Space,
	LowerUpper, UpperLower, Acronym,
	LowerDigit, UpperDigit, DigitLower, DigitUpper,
}

var samples = map[kind]string{
	kindLowerUpper: "aA",
	kindUpperLower: "Aa",
	kindAcronym:    "AAa",
	kindLowerDigit: "a1",
	kindUpperDigit: "A1",
	kindDigitLower: "1a",
	kindDigitUpper: "1A",
}

// Delimiter returns a delimiter boundary for an arbitrary character.
// Delimiter('-'), Delimiter('_') and Delimiter(' ') return the built-in
// Hyphen, Underscore and Space boundaries.
func Delimiter(r rune) Boundary {
	return delimiterFor(string(r))
}

func delimiterFor(g string) Boundary {
	for _, b := range catalog[:3] {
		if b.delim == g {
			return b
		}
	}
	return Boundary{kind: kindDelimiter, delim: g}
}

// All returns every built-in boundary in catalog order.
func All() []Boundary {
	out := make([]Boundary, len(catalog))
	copy(out, catalog)
	return out
}

// Name returns the boundary's name, e.g. "LowerUpper" or "Delimiter(.)".
func (b Boundary) Name() string {
	if b.name == "" {
		return fmt.Sprintf("Delimiter(%s)", b.delim)
	}
	return b.name
}

// Sample returns the shortest string that exhibits the boundary:
// the delimiter itself, or an example such as "aA" or "AAa".
func (b Boundary) Sample() string {
	if b.kind == kindDelimiter {
		return b.delim
	}
	return samples[b.kind]
}

// IsDelimiter reports whether the boundary consumes the character it matches.
func (b Boundary) IsDelimiter() bool {
	return b.kind == kindDelimiter
}

// String implements fmt.Stringer.
func (b Boundary) String() string {
	return b.Name()
}

// isUpper reports whether a grapheme is an uppercase letter.
func isUpper(g string) bool {
	return strings.ToUpper(g) == g && strings.ToLower(g) != g
}

// isLower reports whether a grapheme is a lowercase letter.
func isLower(g string) bool {
	return strings.ToLower(g) == g && strings.ToUpper(g) != g
}

// isDigit reports whether every rune of a grapheme is a digit.
func isDigit(g string) bool {
	if g == "" {
		return false
	}
	for _, r := range g {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// matchPair reports whether a two-character transition b matches prev, cur.
func (b Boundary) matchPair(prev, cur string) bool {
	switch b.kind {
	case kindLowerUpper:
		return isLower(prev) && isUpper(cur)
	case kindUpperLower:
		return isUpper(prev) && isLower(cur)
	case kindLowerDigit:
		return isLower(prev) && isDigit(cur)
	case kindUpperDigit:
		return isUpper(prev) && isDigit(cur)
	case kindDigitLower:
		return isDigit(prev) && isLower(cur)
	case kindDigitUpper:
		return isDigit(prev) && isUpper(cur)
	}
	return false
}

// matchAcronym reports whether a, b, c is an uppercase run followed by a lowercase letter.
func matchAcronym(a, b, c string) bool {
	return isUpper(a) && isUpper(b) && isLower(c)
}

// isLetterOrDigit reports whether g begins with a letter or digit.
func isLetterOrDigit(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
