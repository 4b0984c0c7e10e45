package commands

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/casestyle"
	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/internal/cliutil"
	"github.com/erraggy/ccase/internal/options"
)

// StylesFileEnv names the environment variable holding a custom style file.
const StylesFileEnv = "CCASE_STYLES_FILE"

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To         string
	From       string
	Boundaries string
	Pattern    string
	Delimiter  string
	Styles     string
	Seed       uint64
	Jobs       int
	Verbose    bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("ccase", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", "", "case to convert to")
	fs.StringVar(&flags.To, "to", "", "case to convert to")
	fs.StringVar(&flags.From, "f", "", "case to convert from (its boundaries split the input)")
	fs.StringVar(&flags.From, "from", "", "case to convert from (its boundaries split the input)")
	fs.StringVar(&flags.Boundaries, "b", "", "boundaries to split on, given as example text (e.g. \"aA-\")")
	fs.StringVar(&flags.Boundaries, "boundaries", "", "boundaries to split on, given as example text (e.g. \"aA-\")")
	fs.StringVar(&flags.Pattern, "p", "", "pattern to case words with, instead of --to")
	fs.StringVar(&flags.Pattern, "pattern", "", "pattern to case words with, instead of --to")
	fs.StringVar(&flags.Delimiter, "d", "", "delimiter to join words with, used with --pattern")
	fs.StringVar(&flags.Delimiter, "delimiter", "", "delimiter to join words with, used with --pattern")
	fs.StringVar(&flags.Styles, "styles", "", "custom style file (.yaml, .toml or .json; default $"+StylesFileEnv+")")
	fs.Uint64Var(&flags.Seed, "seed", 0, "seed for reproducible random and pseudo-random cases")
	fs.IntVar(&flags.Jobs, "j", 0, "inputs converted in parallel (default: number of CPUs)")
	fs.IntVar(&flags.Jobs, "jobs", 0, "inputs converted in parallel (default: number of CPUs)")
	fs.BoolVar(&flags.Verbose, "v", false, "log debug output to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase -t <case> [flags] <input>...\n")
		cliutil.Writef(fs.Output(), "       ccase -p <pattern> [-d <delimiter>] [flags] <input>...\n\n")
		cliutil.Writef(fs.Output(), "Convert text between case conventions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  ccase -t snake myVarName                  # my_var_name\n")
		cliutil.Writef(fs.Output(), "  ccase -t snake -f kebab my-varName        # my_varname\n")
		cliutil.Writef(fs.Output(), "  ccase -t snake -b aA myVar-Name-Longer    # my_var-name-longer\n")
		cliutil.Writef(fs.Output(), "  ccase -p capital -d . my_var_name         # My.Var.Name\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | ccase -t kebab\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Case names ignore case and punctuation: screaming, ScreamingSnake and SCREAMING_SNAKE match\n")
		cliutil.Writef(fs.Output(), "  - With no input arguments, lines are read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Run 'ccase list' for case names, 'ccase patterns' for patterns\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or input\n")
	}

	return fs, flags
}

// RunConvert executes a conversion, reading from and writing to s.
func RunConvert(ctx context.Context, args []string, s Streams) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(usageWriter(s))

	inputs, err := parseArgs(fs, args)
	if err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	isSet := func(short, long string) bool { return set[short] || set[long] }

	if err := validateConvertFlags(isSet); err != nil {
		return err
	}

	logger := converter.Logger(converter.NopLogger{})
	if flags.Verbose {
		logger = converter.NewSlogAdapter(slog.New(slog.NewTextHandler(s.Err, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	reg, err := loadStyles(flags.Styles, logger)
	if err != nil {
		return err
	}

	opts := []converter.Option{converter.WithRegistry(reg), converter.WithLogger(logger)}
	if isSet("t", "to") {
		opts = append(opts, converter.WithTargetName(flags.To))
	}
	if isSet("f", "from") {
		opts = append(opts, converter.WithSourceName(flags.From))
	}
	if isSet("b", "boundaries") {
		opts = append(opts, converter.WithBoundaryString(flags.Boundaries))
	}
	if isSet("p", "pattern") {
		opts = append(opts, converter.WithPatternName(flags.Pattern))
	}
	if isSet("d", "delimiter") {
		opts = append(opts, converter.WithDelimiter(flags.Delimiter))
	}
	if set["seed"] {
		opts = append(opts, converter.WithSeed(flags.Seed))
	}
	if isSet("j", "jobs") {
		opts = append(opts, converter.WithConcurrency(flags.Jobs))
	}

	c, err := converter.New(opts...)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		inputs, err = readStdin(s)
		if err != nil {
			return err
		}
	}

	outputs, err := c.ConvertAll(ctx, inputs)
	if err != nil {
		return err
	}
	for _, out := range outputs {
		cliutil.Writef(s.Out, "%s\n", out)
	}
	return nil
}

// validateConvertFlags reports flag combinations that cannot work, using the
// long flag names in messages.
func validateConvertFlags(isSet func(short, long string) bool) error {
	to := options.Flag{Name: "--to", Set: isSet("t", "to")}
	pattern := options.Flag{Name: "--pattern", Set: isSet("p", "pattern")}

	if err := options.ValidateExclusive(
		options.Flag{Name: "--from", Set: isSet("f", "from")},
		options.Flag{Name: "--boundaries", Set: isSet("b", "boundaries")},
	); err != nil {
		return err
	}
	if err := options.ValidateExclusive(to, pattern); err != nil {
		return err
	}
	if err := options.ValidateExclusive(to, options.Flag{Name: "--delimiter", Set: isSet("d", "delimiter")}); err != nil {
		return err
	}
	return options.ValidateRequired("--to", to, pattern)
}

// loadStyles returns the default registry, extended with the styles in path
// or, when path is empty, in the file named by CCASE_STYLES_FILE.
func loadStyles(path string, logger converter.Logger) (*casestyle.Registry, error) {
	if path == "" {
		path = os.Getenv(StylesFileEnv)
	}
	if path == "" {
		return casestyle.Default(), nil
	}

	styles, err := casestyle.LoadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := casestyle.Default().With(styles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("loaded custom styles", "file", path, "count", len(styles))
	return reg, nil
}

// readStdin returns the lines of s.In, or a MissingError when stdin is a
// terminal or holds no lines. A single empty line is one input.
func readStdin(s Streams) ([]string, error) {
	missing := &caseerrors.MissingError{What: "input", Message: "provide input as arguments or on stdin"}
	if s.In == nil || cliutil.IsTerminal(s.In) {
		return nil, missing
	}
	lines, err := ReadLines(s.In)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, missing
	}
	return lines, nil
}
