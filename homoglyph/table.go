// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package homoglyph

import (
	"sort"
)

// DefaultMaxCombinations is the default upper limit of combinations returned
// by a single [Table.Combinations] call.
const DefaultMaxCombinations = 4096

// Confusables lists groups of mutually confusable characters between the Latin
// and Cyrillic lower case letters, as well as digits.
var Confusables = [][]rune{
	{'a', 'а'},
	{'b', 'ь'},
	{'c', 'с'},
	{'e', 'е'},
	{'k', 'к'},
	{'m', 'м'},
	{'n', 'п'},
	{'o', 'о', '0'},
	{'p', 'р'},
	{'q', '9'},
	{'r', 'г'},
	{'t', 'т'},
	{'u', 'и'},
	{'x', 'х'},
	{'y', 'у'},
	{'l', '1'},
	{'3', 'з'},
	{'6', 'б'},
}

// DefaultTable is a Table with the [Confusables] groups and the default limit
// on the number of combinations.
var DefaultTable = New(Confusables)

// Table maps characters to their confusable counterparts.
type Table struct {
	confusables     map[rune][]rune
	maxCombinations int
}

// TableOption can be passed to New when creating new [Table] objects.
type TableOption func(*Table)

// New returns a new Table with the specified groups of mutually confusable
// characters. A character appearing in multiple groups is confusable with the
// members of all these groups.
func New(groups [][]rune, options ...TableOption) *Table {
	t := &Table{
		confusables:     map[rune][]rune{},
		maxCombinations: DefaultMaxCombinations,
	}
	for _, opt := range options {
		opt(t)
	}
	for _, group := range groups {
		for _, r := range group {
			for _, other := range group {
				if other == r || contains(t.confusables[r], other) {
					continue
				}
				t.confusables[r] = append(t.confusables[r], other)
			}
		}
	}
	return t
}

// WithMaxCombinations limits the number of combinations returned. A limit of
// zero or less removes the limit.
func WithMaxCombinations(max int) TableOption {
	return func(t *Table) {
		t.maxCombinations = max
	}
}

// Variants returns the characters the specified character can be spelled as
// within the given alphabet, in ascending order. The character itself is always
// included, even if it is not part of the alphabet.
func (t *Table) Variants(r rune, alphabet []rune) []rune {
	variants := []rune{r}
	for _, other := range t.confusables[r] {
		if contains(alphabet, other) {
			variants = append(variants, other)
		}
	}
	sort.Slice(variants, func(a, b int) bool { return variants[a] < variants[b] })
	return variants
}

// Combinations returns all spellings of word where any subset of its
// characters is replaced by confusables from the specified alphabet. The
// combinations are returned in ascending order and include the unchanged word.
// An empty word yields no combinations.
func (t *Table) Combinations(word string, alphabet []rune) []string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	variants := make([][]rune, len(runes))
	for idx, r := range runes {
		variants[idx] = t.Variants(r, alphabet)
	}
	// Walk the cartesian product like an odometer, with the rightmost position
	// spinning fastest; as the variants per position are sorted, this yields
	// the combinations in ascending order.
	odometer := make([]int, len(runes))
	buf := make([]rune, len(runes))
	combs := []string{}
	for {
		for idx, digit := range odometer {
			buf[idx] = variants[idx][digit]
		}
		combs = append(combs, string(buf))
		if t.maxCombinations > 0 && len(combs) >= t.maxCombinations {
			return combs
		}
		pos := len(odometer) - 1
		for ; pos >= 0; pos-- {
			odometer[pos]++
			if odometer[pos] < len(variants[pos]) {
				break
			}
			odometer[pos] = 0
		}
		if pos < 0 {
			return combs
		}
	}
}

func contains(runes []rune, r rune) bool {
	for _, other := range runes {
		if other == r {
			return true
		}
	}
	return false
}
