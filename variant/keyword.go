// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package variant

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidKeyword is returned by Normalize for empty keywords or keywords
// containing characters other than ASCII letters, digits, hyphens and Cyrillic
// letters.
var ErrInvalidKeyword = errors.New("invalid keyword")

// DefaultAlphabet returns the default alphabet used for appending and
// substituting characters: the digits, the ASCII lower case letters and the
// Cyrillic lower case letters “а” to “я”.
func DefaultAlphabet() []rune {
	alphabet := make([]rune, 0, 10+26+32)
	for r := '0'; r <= '9'; r++ {
		alphabet = append(alphabet, r)
	}
	for r := 'a'; r <= 'z'; r++ {
		alphabet = append(alphabet, r)
	}
	for r := 'а'; r <= 'я'; r++ {
		alphabet = append(alphabet, r)
	}
	return alphabet
}

// Normalize returns the lower case form of the specified keyword with
// surrounding white space removed. It returns an error wrapping
// ErrInvalidKeyword if the keyword is empty or contains characters not allowed
// in keywords.
func Normalize(keyword string) (string, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKeyword)
	}
	for _, r := range kw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		case unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r):
		default:
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidKeyword, keyword, r)
		}
	}
	return kw, nil
}
