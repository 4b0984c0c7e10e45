// Package naming provides name normalization shared by the ccase registries.
//
// Style and pattern names are looked up by their flat form: case folded, with
// every rune that is not a letter or a digit removed. "SCREAMING_SNAKE",
// "ScreamingSnake" and "screaming-snake" all share the flat form
// "screamingsnake".
//
// The package also ranks candidate names by edit distance so callers can
// offer a "did you mean" hint after a failed lookup.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
