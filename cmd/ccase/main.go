package main

import (
	"context"
	"io"
	"os"

	"github.com/erraggy/ccase"
	"github.com/erraggy/ccase/cmd/ccase/commands"
	"github.com/erraggy/ccase/internal/cliutil"
)

func main() {
	os.Exit(run(os.Args[1:], commands.StdStreams()))
}

// run dispatches args and returns the process exit code. Anything that is
// not a subcommand is a conversion: "ccase -t snake myVar".
func run(args []string, s commands.Streams) int {
	if len(args) == 0 {
		printUsage(s.Err)
		return 1
	}

	var err error
	switch args[0] {
	case "version", "--version":
		cliutil.Writef(s.Out, "ccase %s\n", ccase.Version())
		return 0
	case "help", "-h", "--help":
		printUsage(s.Out)
		return 0
	case "list":
		err = commands.RunList(args[1:], s)
	case "patterns":
		err = commands.RunPatterns(args[1:], s)
	case "boundaries":
		err = commands.RunBoundaries(args[1:], s)
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		err = commands.RunConvert(context.Background(), args, s)
	}

	if err != nil {
		cliutil.Writef(s.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	usage := `ccase - convert text between case conventions

Usage:
  ccase -t <case> [flags] <input>...
  ccase -p <pattern> [-d <delimiter>] [flags] <input>...
  ccase <command> [flags]

Conversion flags:
  -t, --to <case>           case to convert to
  -f, --from <case>         case the input is written in
  -b, --boundaries <text>   boundaries to split on, as example text
  -p, --pattern <pattern>   word pattern, instead of --to
  -d, --delimiter <text>    word delimiter, with --pattern
      --styles <file>       custom style file (default $CCASE_STYLES_FILE)
      --seed <n>            seed for random cases
  -j, --jobs <n>            inputs converted in parallel
  -v, --verbose             log debug output to stderr

Commands:
  list         List every case with an example
  patterns     List word patterns for --pattern
  boundaries   List word boundaries for --boundaries
  mcp          Serve conversions as MCP tools over stdio
  version      Show version information
  help         Show this help message

Examples:
  ccase -t snake myVarName
  ccase -t kebab -f camel myVarName
  ccase --to screaming --boundaries aA myVar-Name
  echo myVarName | ccase -t title

Run 'ccase <command> --help' for command help.
`
	cliutil.Writef(w, "%s", usage)
	cliutil.Writef(w, "\n%s\n", ccase.BuildInfo())
}
