// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package variant

// DefaultLeetLimit is the default maximum number of substitutable positions
// taking part in digit substitutions.
const DefaultLeetLimit = 16

// leetDigits maps letters to the digits they are commonly spelled as.
var leetDigits = map[rune]rune{
	'a': '4', 'g': '9', 'i': '1', 'l': '1', 'o': '0', 's': '5', 't': '7', 'z': '2',
	'а': '4', 'б': '6', 'в': '8', 'з': '3', 'о': '0', 'т': '7',
}

// Leet returns all spellings of the keyword with any subset of its letters
// substituted by similar looking digits. For k substitutable letters this
// returns 2^k variants, with the unchanged keyword always coming last.
//
// Only the first limit substitutable letters take part, the others are left
// unchanged; a limit of zero or less removes the limit. Without a limit,
// keywords with lots of substitutable letters get expensive quickly.
func Leet(keyword string, limit int) []string {
	runes := []rune(keyword)
	positions := []int{}
	for idx, r := range runes {
		if _, ok := leetDigits[r]; !ok {
			continue
		}
		if limit > 0 && len(positions) >= limit {
			break
		}
		positions = append(positions, idx)
	}
	// Enumerate the subsets of substitutable positions as a bitmask where the
	// leftmost position is the most significant bit and a set bit keeps the
	// original letter. Counting upwards thus starts with all letters
	// substituted and ends with the unchanged keyword.
	k := len(positions)
	variants := make([]string, 0, 1<<k)
	buf := make([]rune, len(runes))
	for mask := 0; mask < 1<<k; mask++ {
		copy(buf, runes)
		for bit, pos := range positions {
			if mask&(1<<(k-1-bit)) == 0 {
				buf[pos] = leetDigits[runes[pos]]
			}
		}
		variants = append(variants, string(buf))
	}
	return variants
}
