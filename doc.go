// Package ccase converts identifiers and phrases between case conventions.
//
// "myVarName" in snake case is "my_var_name", in kebab case "my-var-name"
// and in screaming snake case "MY_VAR_NAME". Conversion splits the input into
// words, cases each word, and joins the words with a delimiter.
//
// # Packages
//
//   - converter: convert text, singly or in concurrent batches
//   - casestyle: the catalog of named styles and custom style files
//   - boundary: where words begin and end
//   - pattern: how each word is cased
//   - caseerrors: structured errors for errors.Is and errors.As
//
// # Quick Start
//
//	snake, _ := casestyle.Resolve("snake")
//	fmt.Println(converter.Convert("HTTPServer", snake)) // http_server
//
// # Command Line
//
// The ccase command wraps the library:
//
//	ccase -t snake myVarName                  # my_var_name
//	ccase -t snake -f kebab my-varName        # my_varname
//	ccase -t snake -b aA myVar-Name-Longer    # my_var-name-longer
//	ccase list                                # every known case
//
// ccase mcp serves the same operations as Model Context Protocol tools.
package ccase
