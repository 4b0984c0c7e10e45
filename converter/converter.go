package converter

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/casestyle"
	"github.com/erraggy/ccase/pattern"
	"golang.org/x/sync/errgroup"
)

// Converter converts text into a fixed case. It is immutable after New and
// safe for concurrent use.
type Converter struct {
	boundaries  boundary.Set
	pattern     pattern.Pattern
	delimiter   string
	seed        uint64
	seeded      bool
	concurrency int
	logger      Logger
}

// New creates a Converter from options. All configuration errors are
// reported here; the returned Converter never fails to convert.
//
// Errors are from the caseerrors package: a ConflictError for options that
// cannot be combined, a MissingError when neither a target nor a pattern is
// given, an UnknownCaseError or UnknownPatternError for names that resolve to
// nothing, and a ConfigError for invalid values.
func New(opts ...Option) (*Converter, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	bounds, p, delim, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	c := &Converter{
		boundaries:  bounds,
		pattern:     p,
		delimiter:   delim,
		concurrency: cfg.concurrency,
		logger:      cfg.logger,
	}
	if cfg.seed != nil {
		c.seed = *cfg.seed
		c.seeded = true
	}

	c.logger.Debug("converter configured",
		"boundaries", bounds.String(),
		"pattern", p.String(),
		"delimiter", delim,
		"seeded", c.seeded,
	)
	return c, nil
}

// Boundaries returns a copy of the boundaries input is split at.
func (c *Converter) Boundaries() boundary.Set {
	return c.boundaries.Union(nil)
}

// Pattern returns the pattern output words are cased with.
func (c *Converter) Pattern() pattern.Pattern {
	return c.pattern
}

// Delimiter returns the string output words are joined with.
func (c *Converter) Delimiter() string {
	return c.delimiter
}

// Split returns the words of input under the configured boundaries.
func (c *Converter) Split(input string) []string {
	return boundary.Split(input, c.boundaries)
}

// Convert converts input. Converting "" returns "".
func (c *Converter) Convert(input string) string {
	words := c.Split(input)
	out := Join(pattern.Transform(words, c.pattern, c.source()), c.delimiter)
	c.logger.Debug("converted", "input", input, "words", len(words), "output", out)
	return out
}

// source returns the random source for one conversion, or nil for a
// call-local generator.
func (c *Converter) source() rand.Source {
	if !c.seeded || !c.pattern.IsRandom() {
		return nil
	}
	return rand.NewPCG(c.seed, c.seed)
}

// ConvertAll converts inputs concurrently, limited by WithConcurrency. The
// result has the same length and order as inputs. The only error is the
// context's, when ctx is done before every input is converted.
func (c *Converter) ConvertAll(ctx context.Context, inputs []string) ([]string, error) {
	out := make([]string, len(inputs))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, input := range inputs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = c.Convert(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Debug("converted batch", "count", len(inputs))
	return out, nil
}

// Join joins words with delimiter between each adjacent pair. The delimiter
// is inserted as is. Joining no words returns "".
func Join(words []string, delimiter string) string {
	return strings.Join(words, delimiter)
}

// Convert converts input into the style to, splitting at the default
// boundaries.
//
// Example:
//
//	snake, _ := casestyle.Resolve("snake")
//	converter.Convert("HTTPServer", snake) // http_server
func Convert(input string, to casestyle.Style) string {
	return convert(input, boundary.Defaults(), to)
}

// ConvertFrom converts input written in the style from into the style to.
// Only from's boundaries are used to split.
//
// Example:
//
//	snake, _ := casestyle.Resolve("snake")
//	pascal, _ := casestyle.Resolve("pascal")
//	converter.ConvertFrom("my_var-name", snake, pascal) // MyVar-name
func ConvertFrom(input string, from, to casestyle.Style) string {
	return convert(input, from.Boundaries, to)
}

func convert(input string, bounds boundary.Set, to casestyle.Style) string {
	words := boundary.Split(input, bounds)
	return Join(pattern.Transform(words, to.Pattern, nil), to.Delimiter)
}
