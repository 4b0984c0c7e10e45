package converter

import (
	"runtime"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/casestyle"
	"github.com/erraggy/ccase/internal/options"
	"github.com/erraggy/ccase/pattern"
)

// Option is a function that configures a Converter
type Option func(*convertConfig) error

// convertConfig holds configuration collected from options.
// Names are resolved against the registry once every option has run, so
// WithRegistry may appear anywhere in the list.
type convertConfig struct {
	registry *casestyle.Registry

	// Target style (at most one of target/targetName)
	target     *casestyle.Style
	targetName *string

	// Source style (at most one of source/sourceName)
	source     *casestyle.Style
	sourceName *string

	// Explicit boundaries (at most one of boundaries/boundaryString)
	boundaries     boundary.Set
	boundaryString *string

	// Pattern and delimiter overrides
	pattern     *pattern.Pattern
	patternName *string
	delimiter   *string

	seed        *uint64
	concurrency int
	logger      Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		registry:    casestyle.Default(),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	hasTarget := cfg.target != nil || cfg.targetName != nil
	hasSource := cfg.source != nil || cfg.sourceName != nil
	hasBoundaries := cfg.boundaries != nil || cfg.boundaryString != nil
	hasPattern := cfg.pattern != nil || cfg.patternName != nil

	if err := options.ValidateExclusive(
		options.Flag{Name: "from", Set: hasSource},
		options.Flag{Name: "boundaries", Set: hasBoundaries},
	); err != nil {
		return nil, err
	}
	if err := options.ValidateExclusive(
		options.Flag{Name: "to", Set: hasTarget},
		options.Flag{Name: "pattern", Set: hasPattern},
	); err != nil {
		return nil, err
	}
	if err := options.ValidateExclusive(
		options.Flag{Name: "to", Set: hasTarget},
		options.Flag{Name: "delimiter", Set: cfg.delimiter != nil},
	); err != nil {
		return nil, err
	}
	if err := options.ValidateRequired("case",
		options.Flag{Name: "to", Set: hasTarget},
		options.Flag{Name: "pattern", Set: hasPattern},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolve turns the collected names into the boundaries, pattern and
// delimiter a Converter runs with.
func (cfg *convertConfig) resolve() (boundary.Set, pattern.Pattern, string, error) {
	if cfg.targetName != nil {
		s, err := cfg.registry.Resolve(*cfg.targetName)
		if err != nil {
			return nil, 0, "", err
		}
		cfg.target = &s
	}
	if cfg.sourceName != nil {
		s, err := cfg.registry.Resolve(*cfg.sourceName)
		if err != nil {
			return nil, 0, "", err
		}
		cfg.source = &s
	}
	if cfg.patternName != nil {
		p, err := pattern.Resolve(*cfg.patternName)
		if err != nil {
			return nil, 0, "", err
		}
		cfg.pattern = &p
	}

	var bounds boundary.Set
	switch {
	case cfg.boundaryString != nil:
		bounds = boundary.FromString(*cfg.boundaryString)
	case cfg.boundaries != nil:
		bounds = cfg.boundaries
	case cfg.source != nil:
		bounds = cfg.source.Boundaries.Union(nil)
	default:
		bounds = boundary.Defaults()
	}

	if cfg.target != nil {
		return bounds, cfg.target.Pattern, cfg.target.Delimiter, nil
	}
	delim := ""
	if cfg.delimiter != nil {
		delim = *cfg.delimiter
	}
	return bounds, *cfg.pattern, delim, nil
}

// WithTarget sets the style to convert into. It fixes both the pattern and
// the delimiter of the output.
func WithTarget(s casestyle.Style) Option {
	return func(cfg *convertConfig) error {
		cfg.target = &s
		cfg.targetName = nil
		return nil
	}
}

// WithTargetName sets the target style by name, e.g. "snake" or "screaming".
// The name is resolved against the registry (see WithRegistry).
func WithTargetName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.targetName = &name
		cfg.target = nil
		return nil
	}
}

// WithSource sets the style the input is written in. Its boundaries are used
// to split the input.
func WithSource(s casestyle.Style) Option {
	return func(cfg *convertConfig) error {
		cfg.source = &s
		cfg.sourceName = nil
		return nil
	}
}

// WithSourceName sets the source style by name.
func WithSourceName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.sourceName = &name
		cfg.source = nil
		return nil
	}
}

// WithBoundaries sets the exact boundaries used to split the input.
// An empty set keeps each input as a single word.
func WithBoundaries(set boundary.Set) Option {
	return func(cfg *convertConfig) error {
		cfg.boundaries = set.Union(nil)
		cfg.boundaryString = nil
		return nil
	}
}

// WithBoundaryString sets the boundaries from a string of examples, as
// described by boundary.FromString. "aA-" splits on lower-to-upper
// transitions and hyphens.
func WithBoundaryString(s string) Option {
	return func(cfg *convertConfig) error {
		if s == "" {
			return &caseerrors.ConfigError{Option: "boundaries", Value: s, Message: "boundary string must not be empty"}
		}
		cfg.boundaryString = &s
		cfg.boundaries = nil
		return nil
	}
}

// WithPattern sets the word pattern directly, without a target style.
func WithPattern(p pattern.Pattern) Option {
	return func(cfg *convertConfig) error {
		if p < 0 || int(p) >= len(pattern.All()) {
			return &caseerrors.ConfigError{Option: "pattern", Value: int(p), Message: "unknown pattern"}
		}
		cfg.pattern = &p
		cfg.patternName = nil
		return nil
	}
}

// WithPatternName sets the word pattern by name, e.g. "camel" or "pseudo_random".
func WithPatternName(name string) Option {
	return func(cfg *convertConfig) error {
		cfg.patternName = &name
		cfg.pattern = nil
		return nil
	}
}

// WithDelimiter sets the string placed between output words when converting
// with a pattern.
// Default: ""
func WithDelimiter(d string) Option {
	return func(cfg *convertConfig) error {
		cfg.delimiter = &d
		return nil
	}
}

// WithRegistry sets the registry that style names are resolved against.
// Default: casestyle.Default()
func WithRegistry(r *casestyle.Registry) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &caseerrors.ConfigError{Option: "registry", Message: "registry must not be nil"}
		}
		cfg.registry = r
		return nil
	}
}

// WithSeed makes Random and PseudoRandom output reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *convertConfig) error {
		cfg.seed = &seed
		return nil
	}
}

// WithConcurrency limits how many inputs ConvertAll converts at once.
// Default: runtime.GOMAXPROCS(0)
func WithConcurrency(n int) Option {
	return func(cfg *convertConfig) error {
		if n < 1 {
			return &caseerrors.ConfigError{Option: "concurrency", Value: n, Message: "must be at least 1"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithLogger sets the structured logger.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
