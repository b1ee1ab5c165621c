/*
Package variant generates lexical variants of a seed keyword that might get
registered as look-alike domains by typosquatters.

[Generate] applies five strategies in a fixed order, concatenating their
results:

  - [Suffixes]: appending one character from the alphabet,
  - homoglyphs: substituting characters with look-alikes,
  - [Leet]: substituting letters with similar digits,
  - [Subdomains]: splitting the keyword into a subdomain and its parent,
  - [Deletions]: dropping a single character.

Variants are not deduplicated and not checked to be valid DNS labels. All
strategies work on runes, so Cyrillic keywords are fine.

	variants := variant.Generate("group-ib")
*/
package variant
