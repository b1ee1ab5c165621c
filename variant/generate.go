// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package variant

import "github.com/siemens/typodig/homoglyph"

// Homoglypher returns all spellings of a word obtainable by replacing any
// subset of its characters with look-alikes from the specified alphabet.
type Homoglypher interface {
	Combinations(word string, alphabet []rune) []string
}

// Generator generates the variants of keywords, using the configured alphabet,
// homoglyphs and leet limit.
type Generator struct {
	alphabet   []rune
	homoglyphs Homoglypher
	leetLimit  int
}

// Option can be passed to NewGenerator and Generate.
type Option func(*Generator)

// NewGenerator returns a new Generator. Unless configured otherwise, it uses
// the [DefaultAlphabet], the [homoglyph.DefaultTable] table and the
// [DefaultLeetLimit].
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		alphabet:   DefaultAlphabet(),
		homoglyphs: homoglyph.DefaultTable,
		leetLimit:  DefaultLeetLimit,
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// WithAlphabet sets the alphabet of characters used for appending and
// substituting.
func WithAlphabet(alphabet []rune) Option {
	return func(g *Generator) {
		g.alphabet = append([]rune(nil), alphabet...)
	}
}

// WithHomoglyphs sets the homoglyph substitution to use; nil disables homoglyph
// substitution.
func WithHomoglyphs(h Homoglypher) Option {
	return func(g *Generator) {
		g.homoglyphs = h
	}
}

// WithLeetLimit limits the number of substitutable letters taking part in
// digit substitutions, see [Leet].
func WithLeetLimit(limit int) Option {
	return func(g *Generator) {
		g.leetLimit = limit
	}
}

// Alphabet returns (a copy of) the generator's alphabet.
func (g *Generator) Alphabet() []rune {
	return append([]rune(nil), g.alphabet...)
}

// Generate returns the variants of the specified keyword. Calling Generate
// multiple times with the same keyword always returns the same variants in the
// same order. An empty keyword yields no variants.
func (g *Generator) Generate(keyword string) []string {
	if keyword == "" {
		return nil
	}
	variants := Suffixes(keyword, g.alphabet)
	if g.homoglyphs != nil {
		variants = append(variants, g.homoglyphs.Combinations(keyword, g.alphabet)...)
	}
	variants = append(variants, Leet(keyword, g.leetLimit)...)
	variants = append(variants, Subdomains(keyword)...)
	variants = append(variants, Deletions(keyword)...)
	return variants
}

// Generate returns the variants of the specified keyword using a Generator
// configured with the specified options.
func Generate(keyword string, options ...Option) []string {
	return NewGenerator(options...).Generate(keyword)
}
