package pattern

import (
	"math/rand/v2"
	"strings"

	"github.com/rivo/uniseg"
)

// Transform cases words according to p. Only letter case changes: the word
// count and every character's identity are preserved, and digits and
// punctuation pass through unchanged.
//
// src supplies random bits for Random and PseudoRandom. A nil src uses a
// call-local generator seeded from the runtime. Sources are not safe for
// concurrent use, so each concurrent caller needs its own.
func Transform(words []string, p Pattern, src rand.Source) []string {
	out := make([]string, len(words))
	if len(words) == 0 {
		return out
	}

	var rb *randBits
	if p.IsRandom() {
		if src == nil {
			src = rand.NewPCG(rand.Uint64(), rand.Uint64())
		}
		rb = &randBits{src: src}
	}

	for i, w := range words {
		switch p {
		case Lowercase:
			out[i] = strings.ToLower(w)
		case Uppercase:
			out[i] = strings.ToUpper(w)
		case Capital:
			out[i] = capitalize(w)
		case Sentence:
			if i == 0 {
				out[i] = capitalize(w)
			} else {
				out[i] = strings.ToLower(w)
			}
		case Camel:
			if i == 0 {
				out[i] = strings.ToLower(w)
			} else {
				out[i] = capitalize(w)
			}
		case Alternating:
			out[i] = alternate(w, false)
		case Toggle:
			out[i] = alternate(w, true)
		case PseudoRandom:
			out[i] = pseudoRandom(w, rb)
		case Random:
			out[i] = random(w, rb)
		default:
			out[i] = w
		}
	}
	return out
}

// capitalize uppercases the first character of w and lowercases the rest.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(w, -1)
	return strings.ToUpper(first) + strings.ToLower(rest)
}

// isLetter reports whether a grapheme has distinct upper and lower forms.
func isLetter(g string) bool {
	return strings.ToUpper(g) != strings.ToLower(g)
}

// mapLetters rewrites each letter of w with fn; other graphemes are copied.
func mapLetters(w string, fn func(g string) string) string {
	var b strings.Builder
	b.Grow(len(w))
	gr := uniseg.NewGraphemes(w)
	for gr.Next() {
		g := gr.Str()
		if isLetter(g) {
			b.WriteString(fn(g))
		} else {
			b.WriteString(g)
		}
	}
	return b.String()
}

func setCase(g string, upper bool) string {
	if upper {
		return strings.ToUpper(g)
	}
	return strings.ToLower(g)
}

// alternate flips case on every letter, beginning with upper when startUpper is set.
func alternate(w string, startUpper bool) string {
	upper := startUpper
	return mapLetters(w, func(g string) string {
		g = setCase(g, upper)
		upper = !upper
		return g
	})
}

// pseudoRandom cases letters in pairs: the first letter of a pair gets a
// random case and the second the opposite, so any word with two or more
// letters mixes both cases.
func pseudoRandom(w string, rb *randBits) string {
	var pending *bool
	return mapLetters(w, func(g string) string {
		if pending != nil {
			upper := !*pending
			pending = nil
			return setCase(g, upper)
		}
		upper := rb.next()
		pending = &upper
		return setCase(g, upper)
	})
}

// random cases each letter independently.
func random(w string, rb *randBits) string {
	return mapLetters(w, func(g string) string {
		return setCase(g, rb.next())
	})
}

// randBits hands out one bit at a time from a rand.Source.
type randBits struct {
	src rand.Source
	buf uint64
	n   int
}

func (r *randBits) next() bool {
	if r.n == 0 {
		r.buf = r.src.Uint64()
		r.n = 64
	}
	bit := r.buf&1 == 1
	r.buf >>= 1
	r.n--
	return bit
}
