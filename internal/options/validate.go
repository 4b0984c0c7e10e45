// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/ccase/caseerrors"

// Flag pairs an option's display name with whether the caller supplied it.
type Flag struct {
	Name string
	Set  bool
}

// ValidateExclusive ensures at most one of flags is set.
// It returns a *caseerrors.ConflictError naming the first two set flags,
// in the order given.
func ValidateExclusive(flags ...Flag) error {
	var first *Flag
	for i := range flags {
		if !flags[i].Set {
			continue
		}
		if first == nil {
			first = &flags[i]
			continue
		}
		return &caseerrors.ConflictError{Option: flags[i].Name, ConflictsWith: first.Name}
	}
	return nil
}

// ValidateRequired ensures at least one of flags is set.
// what names the requirement in the returned *caseerrors.MissingError.
func ValidateRequired(what string, flags ...Flag) error {
	for _, f := range flags {
		if f.Set {
			return nil
		}
	}
	names := ""
	for i, f := range flags {
		if i > 0 {
			names += " or "
		}
		names += f.Name
	}
	return &caseerrors.MissingError{What: what, Message: "one of " + names + " is required"}
}
