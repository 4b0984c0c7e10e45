// Package converter rewrites identifiers from one case convention to another.
//
// A conversion runs three stages: the input is split into words at a set of
// [boundary.Boundary] values, each word is cased by a [pattern.Pattern], and
// the words are joined with a delimiter. A [casestyle.Style] bundles all
// three.
//
// # Quick Start
//
// Convert with the built-in styles:
//
//	snake, _ := casestyle.Resolve("snake")
//	fmt.Println(converter.Convert("myVarName", snake)) // my_var_name
//
// Or build a reusable Converter with functional options:
//
//	c, err := converter.New(
//		converter.WithTargetName("kebab"),
//		converter.WithSourceName("camel"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(c.Convert("myVarName")) // my-var-name
//
// # Choosing Boundaries
//
// Words are split at the first of these that is configured:
//
//   - boundaries given with [WithBoundaries] or [WithBoundaryString]
//   - the boundaries of the source style given with [WithSource] or [WithSourceName]
//   - [boundary.Defaults]
//
// A source style and explicit boundaries cannot be combined. Likewise a
// target style fixes both pattern and delimiter, so it cannot be combined
// with [WithPattern] or [WithDelimiter].
//
// # Random Patterns
//
// Random and PseudoRandom output differs between runs. [WithSeed] makes it
// reproducible: every conversion draws from a fresh generator seeded with the
// same value, so an input converts the same way no matter how a batch is
// scheduled.
//
// # Batches
//
// [Converter.ConvertAll] converts many inputs concurrently and returns the
// results in input order. A Converter is immutable after [New] and safe for
// concurrent use.
//
// # Related Packages
//
//   - [github.com/erraggy/ccase/casestyle] - named styles and custom style files
//   - [github.com/erraggy/ccase/boundary] - word splitting
//   - [github.com/erraggy/ccase/pattern] - word casing
//   - [github.com/erraggy/ccase/caseerrors] - error types returned by New
package converter
