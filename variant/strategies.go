// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package variant

// Suffixes returns the keyword with each character of the alphabet appended,
// in alphabet order.
func Suffixes(keyword string, alphabet []rune) []string {
	variants := make([]string, 0, len(alphabet))
	for _, r := range alphabet {
		variants = append(variants, keyword+string(r))
	}
	return variants
}

// Subdomains returns the keyword split into a subdomain and its parent domain
// at every position, except for positions next to a hyphen.
func Subdomains(keyword string) []string {
	runes := []rune(keyword)
	variants := []string{}
	for idx := 1; idx < len(runes); idx++ {
		if runes[idx-1] == '-' || runes[idx] == '-' {
			continue
		}
		variants = append(variants, string(runes[:idx])+"."+string(runes[idx:]))
	}
	return variants
}

// Deletions returns the keyword with a single character removed, for every
// character position.
func Deletions(keyword string) []string {
	runes := []rune(keyword)
	variants := make([]string, 0, len(runes))
	for idx := range runes {
		variants = append(variants, string(runes[:idx])+string(runes[idx+1:]))
	}
	return variants
}
