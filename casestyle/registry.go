package casestyle

import (
	"fmt"

	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/internal/naming"
	"github.com/erraggy/ccase/pattern"
)

// Registry maps style names to styles. A Registry is immutable once built
// and safe for concurrent use. Styles it returns carry their own copies of
// the boundary sets.
type Registry struct {
	entries []Entry
	// index maps flat names and short names to positions in entries
	index map[string]int
}

var defaultRegistry = mustBuild(builtinStyles(), builtinAliases())

// Default returns the registry of built-in styles.
func Default() *Registry {
	return defaultRegistry
}

// Resolve looks up name in the default registry.
func Resolve(name string) (Style, error) {
	return defaultRegistry.Resolve(name)
}

// All returns the default registry's catalog in listing order.
func All() []Entry {
	return defaultRegistry.All()
}

func mustBuild(styles []Style, aliases []alias) *Registry {
	r, err := build(styles, aliases)
	if err != nil {
		panic(err)
	}
	return r
}

func build(styles []Style, aliases []alias) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(styles)+len(aliases)),
		index:   make(map[string]int, 2*(len(styles)+len(aliases))),
	}

	canonical := make(map[string]Style, len(styles))
	for _, s := range styles {
		canonical[s.Name] = s
	}

	for _, s := range styles {
		if err := r.add(Entry{Name: s.Name, Short: s.Short, Style: s}); err != nil {
			return nil, err
		}
		for _, a := range aliases {
			if a.after != s.Name {
				continue
			}
			target, ok := canonical[a.target]
			if !ok {
				return nil, &caseerrors.ConfigError{Option: "alias", Value: a.name, Message: fmt.Sprintf("unknown target style %q", a.target)}
			}
			if err := r.add(Entry{Name: a.name, Short: a.short, AliasOf: a.target, Style: target}); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// add appends e and indexes its names, rejecting names already in use.
func (r *Registry) add(e Entry) error {
	if err := validateStyle(e.Style); err != nil {
		return err
	}

	flat := naming.Flat(e.Name)
	keys := []string{flat}
	if e.Short != "" {
		keys = append(keys, naming.Flat(e.Short))
	}
	for _, k := range keys {
		if k == "" {
			return &caseerrors.ConfigError{Option: "style", Value: e.Name, Message: "name must contain a letter or digit"}
		}
		if i, ok := r.index[k]; ok {
			return &caseerrors.ConfigError{
				Option:  "style",
				Value:   e.Name,
				Message: fmt.Sprintf("name %q is already used by %s", k, r.entries[i].Name),
			}
		}
	}

	r.entries = append(r.entries, e.clone())
	for _, k := range keys {
		r.index[k] = len(r.entries) - 1
	}
	return nil
}

// clone returns e with its own copy of the boundary set, so callers cannot
// change the sets held by the registry.
func (e Entry) clone() Entry {
	e.Style.Boundaries = e.Style.Boundaries.Union(nil)
	return e
}

func validateStyle(s Style) error {
	if s.Pattern < 0 || int(s.Pattern) >= len(pattern.All()) {
		return &caseerrors.ConfigError{Option: "pattern", Value: int(s.Pattern), Message: fmt.Sprintf("style %s has an invalid pattern", s.Name)}
	}
	return nil
}

// Lookup returns the catalog entry for name, which may be an alias.
// Matching compares the flat form of name against each entry's flat name and
// short name. It returns a *caseerrors.UnknownCaseError when nothing matches.
func (r *Registry) Lookup(name string) (Entry, error) {
	if i, ok := r.index[naming.Flat(name)]; ok {
		return r.entries[i].clone(), nil
	}
	return Entry{}, &caseerrors.UnknownCaseError{
		Name:       name,
		Suggestion: naming.Suggest(name, r.Names()),
	}
}

// Resolve returns the canonical style for name. Aliases resolve to the
// style they point at.
func (r *Registry) Resolve(name string) (Style, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return Style{}, err
	}
	return e.Style, nil
}

// All returns the catalog in listing order, aliases included.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.clone()
	}
	return out
}

// Names returns every entry name and short name, in listing order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Name)
		if e.Short != "" {
			out = append(out, e.Short)
		}
	}
	return out
}

// With returns a new registry holding r's styles followed by styles.
// r is left unchanged. A style whose name or short name collides with an
// existing one is rejected with a *caseerrors.ConfigError.
func (r *Registry) With(styles ...Style) (*Registry, error) {
	out := &Registry{
		entries: make([]Entry, len(r.entries), len(r.entries)+len(styles)),
		index:   make(map[string]int, len(r.index)+2*len(styles)),
	}
	copy(out.entries, r.entries)
	for k, v := range r.index {
		out.index[k] = v
	}

	for _, s := range styles {
		if err := out.add(Entry{Name: s.Name, Short: s.Short, Style: s}); err != nil {
			return nil, err
		}
	}
	return out, nil
}
