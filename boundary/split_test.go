package boundary

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		set   Set
		want  []string
	}{
		// Empty input and empty sets
		{name: "empty string", input: "", set: Defaults(), want: nil},
		{name: "empty set keeps whole input", input: "my_var-Name", set: NewSet(), want: []string{"my_var-Name"}},
		{name: "nil set keeps whole input", input: "myVar", set: nil, want: []string{"myVar"}},

		// Delimiters
		{name: "snake", input: "my_var_name", set: NewSet(Underscore), want: []string{"my", "var", "name"}},
		{name: "kebab", input: "my-var-name", set: NewSet(Hyphen), want: []string{"my", "var", "name"}},
		{name: "spaces", input: "my var name", set: NewSet(Space), want: []string{"my", "var", "name"}},
		{name: "leading and trailing delimiters", input: "__my_var__", set: NewSet(Underscore), want: []string{"my", "var"}},
		{name: "consecutive mixed delimiters", input: "my-_ var", set: Defaults(), want: []string{"my", "var"}},
		{name: "only delimiters", input: "-_-", set: Defaults(), want: []string{}},
		{name: "custom delimiter", input: "com.example.api", set: NewSet(Delimiter('.')), want: []string{"com", "example", "api"}},
		{name: "inactive delimiter kept", input: "my_var-name", set: NewSet(Underscore), want: []string{"my", "var-name"}},

		// Transitions
		{name: "camel", input: "myVarName", set: Defaults(), want: []string{"my", "Var", "Name"}},
		{name: "pascal", input: "MyVarName", set: Defaults(), want: []string{"My", "Var", "Name"}},
		{name: "acronym", input: "HTTPServer", set: Defaults(), want: []string{"HTTP", "Server"}},
		{name: "acronym in the middle", input: "parseHTTPRequest", set: Defaults(), want: []string{"parse", "HTTP", "Request"}},
		{name: "two letter acronym", input: "IOError", set: Defaults(), want: []string{"IO", "Error"}},
		{name: "trailing acronym", input: "serveHTTP", set: Defaults(), want: []string{"serve", "HTTP"}},
		{name: "acronym without acronym boundary", input: "HTTPServer", set: NewSet(LowerUpper), want: []string{"HTTPServer"}},
		{name: "upper lower is opt-in", input: "HTTPServer", set: NewSet(UpperLower), want: []string{"HTTPS", "erver"}},
		{name: "lower digit", input: "abc123", set: NewSet(LowerDigit), want: []string{"abc", "123"}},
		{name: "upper digit", input: "ABC123", set: NewSet(UpperDigit), want: []string{"ABC", "123"}},
		{name: "digit lower", input: "123abc", set: NewSet(DigitLower), want: []string{"123", "abc"}},
		{name: "digit upper", input: "123ABC", set: NewSet(DigitUpper), want: []string{"123", "ABC"}},
		{name: "digits with defaults", input: "base64Encode2x", set: Defaults(), want: []string{"base", "64", "Encode", "2", "x"}},
		{name: "lower upper only", input: "myVar-Name-Longer", set: NewSet(LowerUpper), want: []string{"my", "Var-Name-Longer"}},
		{name: "hyphen only", input: "myVar-Name-Longer", set: NewSet(Hyphen), want: []string{"myVar", "Name", "Longer"}},

		// Unicode
		{name: "unicode letters", input: "überCase", set: Defaults(), want: []string{"über", "Case"}},
		{name: "combining mark stays attached", input: "caféBar", set: Defaults(), want: []string{"café", "Bar"}},
		{name: "non-letters kept verbatim", input: "a+b", set: Defaults(), want: []string{"a+b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.set)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplit_KeepsNonDelimiterCharacters(t *testing.T) {
	inputs := []string{
		"myVarName",
		"HTTPServer_v2-final",
		"  leading and trailing  ",
		"__x__y__",
		"already-kebab-case",
		"MiXeD_cAsE-With spaces123abc",
		"日本語_test",
	}
	set := Defaults()

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			words := Split(input, set)
			for _, w := range words {
				assert.NotEmpty(t, w)
			}

			stripped := strings.Map(func(r rune) rune {
				if r == '-' || r == '_' || r == ' ' {
					return -1
				}
				return r
			}, input)
			assert.Equal(t, stripped, strings.Join(words, ""))
		})
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Boundary
	}{
		{name: "empty", input: "", want: nil},
		{name: "lower upper", input: "aA", want: []Boundary{LowerUpper}},
		{name: "upper lower", input: "Aa", want: []Boundary{UpperLower}},
		{name: "hyphen", input: "-", want: []Boundary{Hyphen}},
		{name: "underscore and space", input: "_ ", want: []Boundary{Underscore, Space}},
		{name: "acronym sample", input: "AAa", want: []Boundary{UpperLower, Acronym}},
		{name: "digits", input: "a1A", want: []Boundary{LowerDigit, DigitUpper}},
		{name: "mixed", input: "_aA1", want: []Boundary{Underscore, LowerUpper, UpperDigit}},
		{name: "custom delimiter", input: ".", want: []Boundary{Delimiter('.')}},
		{name: "custom delimiters sorted last", input: "/-.", want: []Boundary{Hyphen, Delimiter('.'), Delimiter('/')}},
		{name: "letters alone select nothing", input: "abc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.input).List()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
