/*
Package homoglyph generates look-alike spellings of words by substituting
characters with visually confusable ones, such as the Latin “a” with the
Cyrillic “а”, or the Latin “o” with the digit “0”.

A [Table] knows groups of mutually confusable characters. Given a word and an
alphabet of permitted characters, [Table.Combinations] returns all spellings
obtainable by replacing any subset of the word's characters with confusables
from the alphabet, including the unchanged word itself.

	combs := homoglyph.DefaultTable.Combinations("ok", []rune("0123456789abc...окр"))
	// ["0k", "0к", "ok", "oк", "оk", "ок"]

As the number of combinations grows exponentially with the number of
substitutable characters, a Table caps the number of combinations returned
(see [WithMaxCombinations]).
*/
package homoglyph
