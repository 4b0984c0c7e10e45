package commands

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/erraggy/ccase/converter"
	"github.com/erraggy/ccase/internal/catalog"
	"github.com/erraggy/ccase/internal/cliutil"
	"github.com/erraggy/ccase/internal/naming"
)

// ListFlags contains flags for the list, patterns and boundaries commands
type ListFlags struct {
	Format string
	Styles string
}

// SetupListFlags creates and configures a FlagSet for one of the listing
// commands. name is the command name, e.g. "list".
func SetupListFlags(name, summary string) (*flag.FlagSet, *ListFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &ListFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	if name == "list" {
		fs.StringVar(&flags.Styles, "styles", "", "custom style file to include (default $"+StylesFileEnv+")")
	}

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: ccase %s [flags]\n\n", name)
		cliutil.Writef(fs.Output(), "%s\n\n", summary)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// RunList prints every known case. Text output names each case by the flat
// form it is looked up with.
func RunList(args []string, s Streams) error {
	fs, flags := SetupListFlags("list", "List every case, with its short name and an example.")
	fs.SetOutput(usageWriter(s))
	if err := parseListFlags(fs, flags, args); err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	reg, err := loadStyles(flags.Styles, converter.NopLogger{})
	if err != nil {
		return err
	}
	cases := catalog.Cases(reg)

	if flags.Format != FormatText {
		return OutputStructured(s.Out, cases, flags.Format)
	}

	st := cliutil.NewStyler(s.Out)
	tw := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	cliutil.Writef(tw, "CASE\tSHORT\tEXAMPLE\n")
	for _, c := range cases {
		short := c.Short
		if c.AliasOf != "" {
			short = joinNonEmpty(short, "alias of "+naming.Flat(c.AliasOf))
		}
		cliutil.Writef(tw, "%s\t%s\t%s\n", naming.Flat(c.Name), short, st.Bold(c.Example))
	}
	return tw.Flush()
}

// RunPatterns prints every word pattern.
func RunPatterns(args []string, s Streams) error {
	fs, flags := SetupListFlags("patterns", "List the word patterns usable with --pattern.")
	fs.SetOutput(usageWriter(s))
	if err := parseListFlags(fs, flags, args); err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	patterns := catalog.Patterns()
	if flags.Format != FormatText {
		return OutputStructured(s.Out, patterns, flags.Format)
	}

	tw := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	cliutil.Writef(tw, "PATTERN\tEXAMPLE\n")
	for _, p := range patterns {
		cliutil.Writef(tw, "%s\t%s\n", p.Name, p.Example)
	}
	return tw.Flush()
}

// RunBoundaries prints every built-in boundary.
func RunBoundaries(args []string, s Streams) error {
	fs, flags := SetupListFlags("boundaries", "List the built-in boundaries and the --boundaries text that selects each.")
	fs.SetOutput(usageWriter(s))
	if err := parseListFlags(fs, flags, args); err != nil {
		if isHelp(err) {
			return nil
		}
		return err
	}

	bounds := catalog.Boundaries()
	if flags.Format != FormatText {
		return OutputStructured(s.Out, bounds, flags.Format)
	}

	tw := tabwriter.NewWriter(s.Out, 0, 4, 2, ' ', 0)
	cliutil.Writef(tw, "BOUNDARY\tSAMPLE\tDEFAULT\n")
	for _, b := range bounds {
		def := "no"
		if b.Default {
			def = "yes"
		}
		cliutil.Writef(tw, "%s\t%q\t%s\n", b.Name, b.Sample, def)
	}
	return tw.Flush()
}

func parseListFlags(fs *flag.FlagSet, flags *ListFlags, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("%s takes no arguments", fs.Name())
	}
	return ValidateOutputFormat(flags.Format)
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + ", " + b
}
