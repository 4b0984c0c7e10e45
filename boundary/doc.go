// Package boundary defines the rules that decide where one word ends and the
// next begins, and splits text into words with them.
//
// # Boundaries
//
// A [Boundary] is either a delimiter or a transition:
//
//   - Delimiter boundaries ([Hyphen], [Underscore], [Space] and any
//     character passed to [Delimiter]) match a single character, which is
//     consumed and never kept in a word.
//   - Transition boundaries ([LowerUpper], [UpperLower], [LowerDigit],
//     [UpperDigit], [DigitLower], [DigitUpper], [Acronym]) match the juncture
//     between two characters and consume nothing.
//
// [Acronym] splits a run of uppercase letters before its last letter when a
// lowercase letter follows, so "HTTPServer" becomes "HTTP" and "Server".
//
// # Sets
//
// Boundaries are grouped in a [Set]. [Defaults] holds every delimiter and
// transition boundary except [UpperLower], which would split "HTTPServer"
// into "HTTPS" and "erver" and is therefore opt-in.
//
// [FromString] builds a set from an example string: "aA" selects
// [LowerUpper], "-" selects [Hyphen], "." selects Delimiter('.').
//
// # Splitting
//
//	words := boundary.Split("myVar-Name", boundary.Defaults())
//	// words == []string{"my", "Var", "Name"}
//
// Text is walked by grapheme cluster, so combining marks stay attached to
// their base character.
package boundary
