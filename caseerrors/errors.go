package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnknownCase indicates a style name matched no registry entry.
	ErrUnknownCase = errors.New("unknown case")

	// ErrUnknownPattern indicates a pattern name matched no catalog entry.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrConflictingOptions indicates mutually exclusive options were combined.
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrMissingRequired indicates a required option or input is missing.
	ErrMissingRequired = errors.New("missing required option")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// UnknownCaseError reports a style name that matched nothing.
type UnknownCaseError struct {
	// Name is the raw text that was looked up
	Name string
	// Suggestion is the closest known style name, if any
	Suggestion string
}

// Error returns a human-readable error message.
func (e *UnknownCaseError) Error() string {
	msg := fmt.Sprintf("'%s' is not a valid case", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Unwrap returns nil as UnknownCaseError has no underlying cause.
func (e *UnknownCaseError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownCaseError) Is(target error) bool {
	return target == ErrUnknownCase
}

// UnknownPatternError reports a pattern name that matched nothing.
type UnknownPatternError struct {
	// Name is the raw text that was looked up
	Name string
	// Suggestion is the closest known pattern name, if any
	Suggestion string
}

// Error returns a human-readable error message.
func (e *UnknownPatternError) Error() string {
	msg := fmt.Sprintf("'%s' is not a valid pattern", e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Unwrap returns nil as UnknownPatternError has no underlying cause.
func (e *UnknownPatternError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownPatternError) Is(target error) bool {
	return target == ErrUnknownPattern
}

// ConflictError reports two options that cannot be used together.
type ConflictError struct {
	// Option is the option that was rejected
	Option string
	// ConflictsWith is the option it cannot be combined with
	ConflictsWith string
}

// Error returns a human-readable error message.
func (e *ConflictError) Error() string {
	if e.Option == "" || e.ConflictsWith == "" {
		return "conflicting options"
	}
	return fmt.Sprintf("the option %s cannot be used with %s", e.Option, e.ConflictsWith)
}

// Unwrap returns nil as ConflictError has no underlying cause.
func (e *ConflictError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictingOptions
}

// MissingError reports a required option or input that was not supplied.
type MissingError struct {
	// What names the missing option or input (e.g., "--to", "input")
	What string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *MissingError) Error() string {
	msg := "missing required option"
	if e.What != "" {
		msg += ": " + e.What
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as MissingError has no underlying cause.
func (e *MissingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MissingError) Is(target error) bool {
	return target == ErrMissingRequired
}

// ConfigError represents an invalid configuration or input.
// This includes invalid option values and malformed custom style definitions.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
