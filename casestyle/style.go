package casestyle

import (
	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/pattern"
)

// Style is a named case convention.
type Style struct {
	// Name is the canonical display name, e.g. "Snake" or "UpperCamel"
	Name string
	// Short is an optional alternate lookup name, e.g. "screaming"
	Short string
	// Boundaries split input written in this style
	Boundaries boundary.Set
	// Pattern cases the words of output in this style
	Pattern pattern.Pattern
	// Delimiter joins the words of output in this style
	Delimiter string
}

// Entry is one line of the catalog: a canonical style or an alias of one.
type Entry struct {
	// Name is the entry's display name
	Name string
	// Short is an optional alternate lookup name
	Short string
	// AliasOf names the canonical style when the entry is an alias
	AliasOf string
	// Style is the canonical definition the entry resolves to
	Style Style
}

// IsAlias reports whether the entry points at another style's definition.
func (e Entry) IsAlias() bool {
	return e.AliasOf != ""
}

// alias is a lookup-only record pointing at a canonical style.
type alias struct {
	name   string
	short  string
	target string
	// after places the alias in listings right after this canonical style
	after string
}

var camelBoundaries = []boundary.Boundary{
	boundary.LowerUpper, boundary.Acronym,
	boundary.LowerDigit, boundary.UpperDigit,
	boundary.DigitLower, boundary.DigitUpper,
}

func builtinStyles() []Style {
	space := boundary.NewSet(boundary.Space)
	underscore := boundary.NewSet(boundary.Underscore)
	hyphen := boundary.NewSet(boundary.Hyphen)
	camel := boundary.NewSet(camelBoundaries...)

	return []Style{
		{Name: "Upper", Boundaries: space, Pattern: pattern.Uppercase, Delimiter: " "},
		{Name: "Lower", Boundaries: space, Pattern: pattern.Lowercase, Delimiter: " "},
		{Name: "Title", Boundaries: space, Pattern: pattern.Capital, Delimiter: " "},
		{Name: "Sentence", Boundaries: space, Pattern: pattern.Sentence, Delimiter: " "},
		{Name: "Toggle", Boundaries: space, Pattern: pattern.Toggle, Delimiter: " "},
		{Name: "Camel", Boundaries: camel, Pattern: pattern.Camel, Delimiter: ""},
		{Name: "Pascal", Boundaries: camel, Pattern: pattern.Capital, Delimiter: ""},
		{Name: "Snake", Boundaries: underscore, Pattern: pattern.Lowercase, Delimiter: "_"},
		{Name: "UpperSnake", Boundaries: underscore, Pattern: pattern.Uppercase, Delimiter: "_"},
		{Name: "Kebab", Boundaries: hyphen, Pattern: pattern.Lowercase, Delimiter: "-"},
		{Name: "Cobol", Boundaries: hyphen, Pattern: pattern.Uppercase, Delimiter: "-"},
		{Name: "Train", Boundaries: hyphen, Pattern: pattern.Capital, Delimiter: "-"},
		{Name: "Flat", Boundaries: boundary.NewSet(), Pattern: pattern.Lowercase, Delimiter: ""},
		{Name: "UpperFlat", Boundaries: boundary.NewSet(), Pattern: pattern.Uppercase, Delimiter: ""},
		{Name: "Alternating", Short: "alternate", Boundaries: space, Pattern: pattern.Alternating, Delimiter: " "},
		{Name: "Random", Boundaries: space, Pattern: pattern.Random, Delimiter: " "},
		{Name: "PseudoRandom", Short: "pseudo", Boundaries: space, Pattern: pattern.PseudoRandom, Delimiter: " "},
	}
}

func builtinAliases() []alias {
	return []alias{
		{name: "UpperCamel", target: "Pascal", after: "Pascal"},
		{name: "ScreamingSnake", short: "screaming", target: "UpperSnake", after: "UpperSnake"},
		{name: "UpperKebab", target: "Cobol", after: "Cobol"},
	}
}
