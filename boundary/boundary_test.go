package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundary_Metadata(t *testing.T) {
	tests := []struct {
		b         Boundary
		name      string
		sample    string
		delimiter bool
	}{
		{Hyphen, "Hyphen", "-", true},
		{Underscore, "Underscore", "_", true},
		{Space, "Space", " ", true},
		{LowerUpper, "LowerUpper", "aA", false},
		{UpperLower, "UpperLower", "Aa", false},
		{Acronym, "Acronym", "AAa", false},
		{LowerDigit, "LowerDigit", "a1", false},
		{UpperDigit, "UpperDigit", "A1", false},
		{DigitLower, "DigitLower", "1a", false},
		{DigitUpper, "DigitUpper", "1A", false},
		{Delimiter('.'), "Delimiter(.)", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.b.Name())
			assert.Equal(t, tt.name, tt.b.String())
			assert.Equal(t, tt.sample, tt.b.Sample())
			assert.Equal(t, tt.delimiter, tt.b.IsDelimiter())
		})
	}
}

func TestDelimiter_BuiltinCharacters(t *testing.T) {
	assert.Equal(t, Hyphen, Delimiter('-'))
	assert.Equal(t, Underscore, Delimiter('_'))
	assert.Equal(t, Space, Delimiter(' '))
	assert.NotEqual(t, Hyphen, Delimiter('.'))
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 10)
	assert.Equal(t, Hyphen, all[0])
	assert.Equal(t, DigitUpper, all[len(all)-1])

	// Mutating the result must not affect the catalog.
	all[0] = Space
	assert.Equal(t, Hyphen, All()[0])
}

func TestSet(t *testing.T) {
	t.Run("deduplicates", func(t *testing.T) {
		s := NewSet(Hyphen, Hyphen, Delimiter('-'))
		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Has(Hyphen))
	})

	t.Run("defaults exclude upper lower", func(t *testing.T) {
		d := Defaults()
		assert.Equal(t, 9, d.Len())
		assert.False(t, d.Has(UpperLower))
		for _, b := range All() {
			if b != UpperLower {
				assert.True(t, d.Has(b), "defaults should include %s", b)
			}
		}
	})

	t.Run("union leaves operands untouched", func(t *testing.T) {
		a := NewSet(Hyphen)
		b := NewSet(Underscore)
		u := a.Union(b)
		assert.Equal(t, 2, u.Len())
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("add returns a new set", func(t *testing.T) {
		a := NewSet(Hyphen)
		b := a.Add(Underscore, Delimiter('.'), Hyphen)
		assert.Equal(t, 3, b.Len())
		assert.True(t, b.Has(Underscore))
		assert.True(t, b.Has(Delimiter('.')))
		assert.Equal(t, 1, a.Len())
		assert.False(t, a.Has(Underscore))
	})

	t.Run("add to nil set", func(t *testing.T) {
		var s Set
		got := s.Add(Space)
		assert.Equal(t, 1, got.Len())
		assert.True(t, got.Has(Space))
	})

	t.Run("list order and string", func(t *testing.T) {
		s := NewSet(Delimiter('.'), Acronym, Hyphen, LowerUpper)
		assert.Equal(t, []Boundary{Hyphen, LowerUpper, Acronym, Delimiter('.')}, s.List())
		assert.Equal(t, "Hyphen, LowerUpper, Acronym, Delimiter(.)", s.String())
	})

	t.Run("nil set", func(t *testing.T) {
		var s Set
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Has(Hyphen))
		assert.Empty(t, s.List())
		assert.Equal(t, "", s.String())
	})
}
