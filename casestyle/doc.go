// Package casestyle is the registry of named case styles.
//
// A [Style] is a complete recipe for one naming convention: the boundaries
// used to split text written in that style, the pattern used to case words
// and the delimiter used to join them.
//
// # Lookup
//
// Names are matched on their flat form, ignoring case and punctuation, so
// "screaming", "ScreamingSnake" and "SCREAMING_SNAKE" all resolve to the same
// style:
//
//	style, err := casestyle.Resolve("SCREAMING_SNAKE")
//	if err != nil {
//	    log.Fatal(err) // *caseerrors.UnknownCaseError
//	}
//	fmt.Println(style.Name) // UpperSnake
//
// Some names are aliases: UpperCamel resolves to Pascal, UpperKebab to Cobol
// and ScreamingSnake to UpperSnake. An alias contributes no behavior of its
// own; resolving it yields the canonical style.
//
// # Custom styles
//
// [LoadFile] reads extra styles from YAML or TOML, and [Registry.With] returns
// a registry that knows about them:
//
//	styles, err := casestyle.LoadFile("styles.yaml")
//	reg, err := casestyle.Default().With(styles...)
//	dot, err := reg.Resolve("dot")
package casestyle
