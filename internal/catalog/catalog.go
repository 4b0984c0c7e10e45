// Package catalog describes the known cases, patterns and boundaries in a
// form both the CLI and the MCP server print.
package catalog

import (
	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/casestyle"
	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/pattern"
)

// Case describes one registry entry.
type Case struct {
	Name       string `json:"name"                yaml:"name"`
	Short      string `json:"short,omitempty"     yaml:"short,omitempty"`
	AliasOf    string `json:"alias_of,omitempty"  yaml:"alias_of,omitempty"`
	Example    string `json:"example"             yaml:"example"`
	Pattern    string `json:"pattern"             yaml:"pattern"`
	Delimiter  string `json:"delimiter"           yaml:"delimiter"`
	Boundaries string `json:"boundaries"          yaml:"boundaries"`
}

// Pattern describes one word pattern.
type Pattern struct {
	Name    string `json:"name"    yaml:"name"`
	Example string `json:"example" yaml:"example"`
}

// Boundary describes one built-in boundary.
type Boundary struct {
	Name      string `json:"name"      yaml:"name"`
	Sample    string `json:"sample"    yaml:"sample"`
	Delimiter bool   `json:"delimiter" yaml:"delimiter"`
	Default   bool   `json:"default"   yaml:"default"`
}

// Cases lists every entry of reg in listing order. Each example is the
// entry's own name written in that case, e.g. "snake_case".
func Cases(reg *casestyle.Registry) []Case {
	entries := reg.All()
	out := make([]Case, 0, len(entries))
	for _, e := range entries {
		out = append(out, Case{
			Name:       e.Name,
			Short:      e.Short,
			AliasOf:    e.AliasOf,
			Example:    Example(e),
			Pattern:    e.Style.Pattern.String(),
			Delimiter:  e.Style.Delimiter,
			Boundaries: e.Style.Boundaries.String(),
		})
	}
	return out
}

// Example renders the entry's name in its own case.
func Example(e casestyle.Entry) string {
	return converter.Convert(e.Name+" case", e.Style)
}

// Patterns lists every pattern in catalog order.
func Patterns() []Pattern {
	all := pattern.All()
	out := make([]Pattern, 0, len(all))
	for _, p := range all {
		out = append(out, Pattern{Name: p.String(), Example: p.Example()})
	}
	return out
}

// Boundaries lists the built-in boundaries in catalog order.
func Boundaries() []Boundary {
	defaults := boundary.Defaults()
	all := boundary.All()
	out := make([]Boundary, 0, len(all))
	for _, b := range all {
		out = append(out, Boundary{
			Name:      b.Name(),
			Sample:    b.Sample(),
			Delimiter: b.IsDelimiter(),
			Default:   defaults.Has(b),
		})
	}
	return out
}
