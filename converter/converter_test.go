package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"unicode"

	"github.com/erraggy/ccase/boundary"
	"github.com/erraggy/ccase/caseerrors"
	"github.com/erraggy/ccase/casestyle"
	"github.com/erraggy/ccase/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStyle(t *testing.T, name string) casestyle.Style {
	t.Helper()
	s, err := casestyle.Resolve(name)
	require.NoError(t, err)
	return s
}

func TestConverter_Convert(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		input string
		want  string
	}{
		{name: "camel to snake", opts: []Option{WithTargetName("snake")}, input: "myVarName", want: "my_var_name"},
		{name: "camel to kebab", opts: []Option{WithTargetName("kebab")}, input: "myVarName", want: "my-var-name"},
		{name: "acronym", opts: []Option{WithTargetName("snake")}, input: "HTTPServer", want: "http_server"},
		{name: "mixed delimiters", opts: []Option{WithTargetName("camel")}, input: "my_var-name here", want: "myVarNameHere"},
		{name: "digits", opts: []Option{WithTargetName("snake")}, input: "Version2Beta", want: "version_2_beta"},
		{name: "screaming", opts: []Option{WithTargetName("screaming")}, input: "myVarName", want: "MY_VAR_NAME"},
		{name: "title", opts: []Option{WithTargetName("title")}, input: "my_var_name", want: "My Var Name"},
		{name: "sentence", opts: []Option{WithTargetName("sentence")}, input: "my_var_name", want: "My var name"},
		{name: "train", opts: []Option{WithTargetName("train")}, input: "my_var_name", want: "My-Var-Name"},
		{name: "cobol", opts: []Option{WithTargetName("cobol")}, input: "my_var_name", want: "MY-VAR-NAME"},
		{name: "flat", opts: []Option{WithTargetName("flat")}, input: "my_var_name", want: "myvarname"},
		{name: "upper flat", opts: []Option{WithTargetName("upper_flat")}, input: "my_var_name", want: "MYVARNAME"},
		{name: "alternating", opts: []Option{WithTargetName("alternating")}, input: "my_var_name", want: "mY vAr nAmE"},
		{name: "toggle", opts: []Option{WithTargetName("toggle")}, input: "my_var_name", want: "My VaR NaMe"},

		// Source styles
		{name: "from snake to pascal", opts: []Option{WithSourceName("snake"), WithTargetName("pascal")}, input: "my_var-name", want: "MyVar-name"},
		{name: "from kebab to snake", opts: []Option{WithSourceName("KEBab"), WithTargetName("snake")}, input: "my-varName", want: "my_varname"},
		{name: "from pascal to snake", opts: []Option{WithSourceName("pascal"), WithTargetName("snake")}, input: "myVar-name", want: "my_var-name"},

		// Custom boundaries
		{name: "boundaries aA", opts: []Option{WithBoundaryString("aA"), WithTargetName("snake")}, input: "myVar-Name-Longer", want: "my_var-name-longer"},
		{name: "boundaries hyphen", opts: []Option{WithBoundaryString("-"), WithTargetName("snake")}, input: "myVar-Name-Longer", want: "myvar_name_longer"},
		{name: "boundary set", opts: []Option{WithBoundaries(boundary.NewSet(boundary.Underscore)), WithTargetName("kebab")}, input: "a_bC", want: "a-bc"},
		{name: "empty boundary set", opts: []Option{WithBoundaries(boundary.NewSet()), WithTargetName("snake")}, input: "my-VarName", want: "my-varname"},
		{name: "custom delimiter boundary", opts: []Option{WithBoundaryString("."), WithTargetName("snake")}, input: "a.b.c", want: "a_b_c"},

		// Pattern and delimiter
		{name: "pattern only", opts: []Option{WithPatternName("capital")}, input: "my_var_name", want: "MyVarName"},
		{name: "pattern and delimiter", opts: []Option{WithPattern(pattern.Uppercase), WithDelimiter(".")}, input: "myVarName", want: "MY.VAR.NAME"},
		{name: "delimiter is not cased", opts: []Option{WithPattern(pattern.Uppercase), WithDelimiter("x")}, input: "a b", want: "AxB"},

		// Edge cases
		{name: "empty input", opts: []Option{WithTargetName("snake")}, input: "", want: ""},
		{name: "only delimiters", opts: []Option{WithTargetName("snake")}, input: "__--  ", want: ""},
		{name: "unicode", opts: []Option{WithTargetName("snake")}, input: "ÉtéÀParis", want: "été_à_paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Convert(tt.input))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		target error
	}{
		{name: "nothing", opts: nil, target: caseerrors.ErrMissingRequired},
		{name: "delimiter only", opts: []Option{WithDelimiter("_")}, target: caseerrors.ErrMissingRequired},
		{name: "from with boundaries", opts: []Option{WithTargetName("snake"), WithSourceName("camel"), WithBoundaryString("-")}, target: caseerrors.ErrConflictingOptions},
		{name: "to with pattern", opts: []Option{WithTargetName("snake"), WithPattern(pattern.Camel)}, target: caseerrors.ErrConflictingOptions},
		{name: "to with delimiter", opts: []Option{WithTargetName("snake"), WithDelimiter("-")}, target: caseerrors.ErrConflictingOptions},
		{name: "unknown target", opts: []Option{WithTargetName("SNEK")}, target: caseerrors.ErrUnknownCase},
		{name: "unknown source", opts: []Option{WithTargetName("snake"), WithSourceName("nope")}, target: caseerrors.ErrUnknownCase},
		{name: "unknown pattern", opts: []Option{WithPatternName("zigzag")}, target: caseerrors.ErrUnknownPattern},
		{name: "invalid pattern", opts: []Option{WithPattern(pattern.Pattern(99))}, target: caseerrors.ErrConfig},
		{name: "empty boundary string", opts: []Option{WithTargetName("snake"), WithBoundaryString("")}, target: caseerrors.ErrConfig},
		{name: "zero concurrency", opts: []Option{WithTargetName("snake"), WithConcurrency(0)}, target: caseerrors.ErrConfig},
		{name: "nil registry", opts: []Option{WithTargetName("snake"), WithRegistry(nil)}, target: caseerrors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestNew_ConflictMessage(t *testing.T) {
	_, err := New(WithTargetName("snake"), WithSourceName("camel"), WithBoundaryString("-"))
	require.Error(t, err)
	assert.Equal(t, "the option boundaries cannot be used with from", err.Error())
}

func TestNew_UnknownCaseSuggestion(t *testing.T) {
	_, err := New(WithTargetName("SNEK"))
	require.Error(t, err)

	var caseErr *caseerrors.UnknownCaseError
	require.True(t, errors.As(err, &caseErr))
	assert.Equal(t, "SNEK", caseErr.Name)
	assert.Equal(t, "Snake", caseErr.Suggestion)
}

func TestNew_LaterOptionWins(t *testing.T) {
	c, err := New(WithTargetName("kebab"), WithTarget(mustStyle(t, "snake")))
	require.NoError(t, err)
	assert.Equal(t, "my_var", c.Convert("myVar"))

	c, err = New(WithTarget(mustStyle(t, "snake")), WithTargetName("kebab"))
	require.NoError(t, err)
	assert.Equal(t, "my-var", c.Convert("myVar"))
}

func TestNew_BoundarySelection(t *testing.T) {
	c, err := New(WithTargetName("snake"))
	require.NoError(t, err)
	assert.Equal(t, boundary.Defaults().List(), c.Boundaries().List())

	c, err = New(WithTargetName("snake"), WithSourceName("kebab"))
	require.NoError(t, err)
	assert.Equal(t, []boundary.Boundary{boundary.Hyphen}, c.Boundaries().List())

	c, err = New(WithTargetName("snake"), WithBoundaryString("_"))
	require.NoError(t, err)
	assert.Equal(t, []boundary.Boundary{boundary.Underscore}, c.Boundaries().List())
}

func TestConverter_BoundariesAreCopied(t *testing.T) {
	set := boundary.NewSet(boundary.Hyphen)
	c, err := New(WithTargetName("snake"), WithBoundaries(set))
	require.NoError(t, err)

	set[boundary.LowerUpper] = struct{}{}
	assert.Equal(t, "myvar_name", c.Convert("myVar-name"))

	got := c.Boundaries()
	got[boundary.LowerUpper] = struct{}{}
	assert.Equal(t, "myvar_name", c.Convert("myVar-name"))
	assert.Equal(t, 1, c.Boundaries().Len())
}

func TestNew_PatternAndDelimiter(t *testing.T) {
	c, err := New(WithTargetName("kebab"))
	require.NoError(t, err)
	assert.Equal(t, pattern.Lowercase, c.Pattern())
	assert.Equal(t, "-", c.Delimiter())

	c, err = New(WithPatternName("camel"))
	require.NoError(t, err)
	assert.Equal(t, pattern.Camel, c.Pattern())
	assert.Equal(t, "", c.Delimiter())
}

func TestNew_CustomRegistry(t *testing.T) {
	dot := casestyle.Style{
		Name:       "Dot",
		Boundaries: boundary.NewSet(boundary.Delimiter('.')),
		Pattern:    pattern.Lowercase,
		Delimiter:  ".",
	}
	reg, err := casestyle.Default().With(dot)
	require.NoError(t, err)

	// Registry given after the name still resolves it.
	c, err := New(WithTargetName("dot"), WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, "my.var.name", c.Convert("myVarName"))

	c, err = New(WithSourceName("dot"), WithTargetName("snake"), WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, "my_var_name", c.Convert("my.var.name"))
}

func TestConvert_Idempotent(t *testing.T) {
	tests := []struct {
		style string
		text  string
	}{
		{"Upper", "MY VAR NAME"},
		{"Lower", "my var name"},
		{"Title", "My Var Name"},
		{"Sentence", "My var name"},
		{"Toggle", "My VaR NaMe"},
		{"Camel", "myVarName"},
		{"Pascal", "MyVarName"},
		{"Snake", "my_var_name"},
		{"UpperSnake", "MY_VAR_NAME"},
		{"Kebab", "my-var-name"},
		{"Cobol", "MY-VAR-NAME"},
		{"Train", "My-Var-Name"},
		{"Flat", "myvarname"},
		{"UpperFlat", "MYVARNAME"},
		{"Alternating", "mY vAr nAmE"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			s := mustStyle(t, tt.style)
			assert.Equal(t, tt.text, ConvertFrom(tt.text, s, s))
		})
	}
}

func TestConvert_Functions(t *testing.T) {
	snake := mustStyle(t, "snake")
	pascal := mustStyle(t, "pascal")

	assert.Equal(t, "my_var_name", Convert("myVarName", snake))
	assert.Equal(t, "http_server", Convert("HTTPServer", snake))
	assert.Equal(t, "", Convert("", snake))
	assert.Equal(t, "MyVar-name", ConvertFrom("my_var-name", snake, pascal))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join(nil, "_"))
	assert.Equal(t, "", Join([]string{}, "_"))
	assert.Equal(t, "a", Join([]string{"a"}, "_"))
	assert.Equal(t, "a_b_c", Join([]string{"a", "b", "c"}, "_"))
	assert.Equal(t, "aXb", Join([]string{"a", "b"}, "X"))
}

func TestConvert_Seeded(t *testing.T) {
	for _, target := range []string{"random", "pseudo"} {
		t.Run(target, func(t *testing.T) {
			c1, err := New(WithTargetName(target), WithSeed(42))
			require.NoError(t, err)
			c2, err := New(WithTargetName(target), WithSeed(42))
			require.NoError(t, err)

			input := "the quick brown fox jumps over the lazy dog"
			first := c1.Convert(input)
			assert.Equal(t, first, c1.Convert(input))
			assert.Equal(t, first, c2.Convert(input))
			assert.Equal(t, strings.ToLower(input), strings.ToLower(first))
		})
	}
}

func TestConvert_PseudoRandomMixesCase(t *testing.T) {
	c, err := New(WithTargetName("pseudo"))
	require.NoError(t, err)

	for range 50 {
		for _, word := range strings.Fields(c.Convert("ab hello worlds")) {
			assert.True(t, hasUpper(word) && hasLower(word), "word %q", word)
		}
	}
}

func hasUpper(s string) bool { return strings.IndexFunc(s, unicode.IsUpper) >= 0 }
func hasLower(s string) bool { return strings.IndexFunc(s, unicode.IsLower) >= 0 }

func TestConvertAll(t *testing.T) {
	c, err := New(WithTargetName("snake"), WithConcurrency(3))
	require.NoError(t, err)

	inputs := make([]string, 100)
	want := make([]string, 100)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("myVar%dName", i)
		want[i] = fmt.Sprintf("my_var_%d_name", i)
	}

	got, err := c.ConvertAll(context.Background(), inputs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvertAll_Empty(t *testing.T) {
	c, err := New(WithTargetName("snake"))
	require.NoError(t, err)

	got, err := c.ConvertAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConvertAll_SeededMatchesSingle(t *testing.T) {
	c, err := New(WithTargetName("random"), WithSeed(7), WithConcurrency(4))
	require.NoError(t, err)

	inputs := []string{"alpha beta", "gamma", "alpha beta", "delta epsilon"}
	got, err := c.ConvertAll(context.Background(), inputs)
	require.NoError(t, err)
	for i, in := range inputs {
		assert.Equal(t, c.Convert(in), got[i])
	}
}

func TestConvertAll_Canceled(t *testing.T) {
	c, err := New(WithTargetName("snake"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := c.ConvertAll(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestConverter_Logger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	c, err := New(WithTargetName("snake"), WithLogger(NewSlogAdapter(slog.New(handler))))
	require.NoError(t, err)
	c.Convert("myVar")

	out := buf.String()
	assert.Contains(t, out, "converter configured")
	assert.Contains(t, out, "output=my_var")
}
