// Package generator picks random words for the words mode.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// Options controls how picked words are decorated.
type Options struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator samples words uniformly from a list.
type Generator struct {
	rnd   *rand.Rand
	words []string
	opts  Options
}

// New returns a Generator seeded with the current time.
func New(words []string, opts Options) *Generator {
	return NewWithSeed(words, opts, time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(words []string, opts Options, seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		words: words,
		opts:  opts,
	}
}

// Word returns one uniformly sampled word.
func (g *Generator) Word() string {
	if len(g.words) == 0 {
		return ""
	}
	word := g.words[g.rnd.Intn(len(g.words))]
	word = applyCaps(g.rnd, word, g.opts.CapsPct)
	return applyPunct(g.rnd, word, g.opts.PunctPct, g.opts.PunctSet)
}

// Generate returns count sampled words.
func (g *Generator) Generate(count int) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.Word())
	}
	return result
}

// Intn exposes the generator's source for other uniform picks.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rnd.Intn(n)
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
