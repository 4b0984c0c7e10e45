// Package caseerrors provides structured error types for the ccase library.
//
// Import path: github.com/erraggy/ccase/caseerrors
//
// Every error in this package describes invalid configuration: an unknown
// style or pattern name, options that cannot be combined, a missing required
// option, or a bad custom style definition. They are raised before any
// conversion runs. Splitting, transforming and joining never fail.
//
// # Error Types
//
//   - [UnknownCaseError]: a style name matches no registry entry
//   - [UnknownPatternError]: a pattern name matches no catalog entry
//   - [ConflictError]: two mutually exclusive options were both supplied
//   - [MissingError]: a required option or input is absent
//   - [ConfigError]: an option value or style definition is invalid
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnknownCase]: Matches any [UnknownCaseError]
//   - [ErrUnknownPattern]: Matches any [UnknownPatternError]
//   - [ErrConflictingOptions]: Matches any [ConflictError]
//   - [ErrMissingRequired]: Matches any [MissingError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	style, err := casestyle.Resolve("snek")
//	if errors.Is(err, caseerrors.ErrUnknownCase) {
//	    // Handle unknown case name
//	}
//
// Extract error details with errors.As():
//
//	var caseErr *caseerrors.UnknownCaseError
//	if errors.As(err, &caseErr) && caseErr.Suggestion != "" {
//	    fmt.Printf("did you mean %q?\n", caseErr.Suggestion)
//	}
package caseerrors
