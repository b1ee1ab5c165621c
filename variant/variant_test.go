// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package variant

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeHomoglyphs records the words and alphabets it gets asked for.
type fakeHomoglyphs struct {
	words     []string
	alphabets [][]rune
}

func (f *fakeHomoglyphs) Combinations(word string, alphabet []rune) []string {
	f.words = append(f.words, word)
	f.alphabets = append(f.alphabets, alphabet)
	return []string{"<" + word + ">"}
}

var _ = Describe("keyword variants", func() {

	Context("keywords", func() {

		It("has the default alphabet", func() {
			alphabet := DefaultAlphabet()
			Expect(alphabet).To(HaveLen(68))
			Expect(alphabet[0]).To(Equal('0'))
			Expect(alphabet[10]).To(Equal('a'))
			Expect(alphabet[36]).To(Equal('а'))
			Expect(alphabet[67]).To(Equal('я'))
		})

		DescribeTable("normalizes keywords",
			func(keyword, expected string) {
				Expect(Normalize(keyword)).To(Equal(expected))
			},
			Entry(nil, "Google", "google"),
			Entry(nil, "  group-IB\t", "group-ib"),
			Entry(nil, "СберБанк", "сбербанк"),
			Entry(nil, "ёлка", "ёлка"),
			Entry(nil, "web2", "web2"),
		)

		DescribeTable("rejects invalid keywords",
			func(keyword string) {
				_, err := Normalize(keyword)
				Expect(err).To(MatchError(ErrInvalidKeyword))
			},
			Entry(nil, ""),
			Entry(nil, "   "),
			Entry(nil, "foo.bar"),
			Entry(nil, "foo_bar"),
			Entry(nil, "straße"),
			Entry(nil, "foo bar"),
		)

	})

	Context("suffixes", func() {

		It("appends each alphabet character", func() {
			alphabet := DefaultAlphabet()
			variants := Suffixes("abc", alphabet)
			Expect(variants).To(HaveLen(len(alphabet)))
			Expect(variants[:2]).To(Equal([]string{"abc0", "abc1"}))
			Expect(variants).To(ContainElements("abca", "abcb", "abcя"))
			for idx, v := range variants {
				Expect(v).To(HavePrefix("abc"))
				Expect([]rune(v)).To(HaveLen(4))
				Expect([]rune(v)[3]).To(Equal(alphabet[idx]))
			}
		})

		It("returns nothing for an empty alphabet", func() {
			Expect(Suffixes("abc", nil)).To(BeEmpty())
		})

	})

	Context("digit substitutions", func() {

		It("substitutes the only substitutable letter", func() {
			Expect(Leet("abc", DefaultLeetLimit)).To(Equal([]string{"4bc", "abc"}))
		})

		It("substitutes in depth-first order", func() {
			Expect(Leet("ais", 0)).To(Equal([]string{
				"415", "41s", "4i5", "4is", "a15", "a1s", "ai5", "ais",
			}))
		})

		DescribeTable("returns 2^k variants including the keyword itself",
			func(keyword string, k int) {
				variants := Leet(keyword, 0)
				Expect(variants).To(HaveLen(1 << k))
				Expect(variants[len(variants)-1]).To(Equal(keyword))
				for _, v := range variants {
					Expect([]rune(v)).To(HaveLen(len([]rune(keyword))))
				}
			},
			Entry(nil, "xyz", 1),
			Entry(nil, "hmm", 0),
			Entry(nil, "google", 5),
			Entry(nil, "group-ib", 3),
			Entry(nil, "тест", 2),
			Entry(nil, "сбербанк", 3),
		)

		It("limits the substitutable letters", func() {
			variants := Leet("aaaa", 2)
			Expect(variants).To(Equal([]string{"44aa", "4aaa", "a4aa", "aaaa"}))
			Expect(Leet(strings.Repeat("a", 20), DefaultLeetLimit)).To(HaveLen(1 << DefaultLeetLimit))
		})

	})

	Context("subdomains", func() {

		It("splits everywhere", func() {
			Expect(Subdomains("abc")).To(Equal([]string{"a.bc", "ab.c"}))
			Expect(Subdomains("мир")).To(Equal([]string{"м.ир", "ми.р"}))
		})

		It("doesn't split next to hyphens", func() {
			variants := Subdomains("group-ib")
			Expect(variants).To(Equal([]string{"g.roup-ib", "gr.oup-ib", "gro.up-ib", "grou.p-ib", "group-i.b"}))
			Expect(Subdomains("a-b-c")).To(BeEmpty())
			for _, v := range append(variants, Subdomains("-ab--cd-")...) {
				Expect(v).NotTo(ContainSubstring("-."))
				Expect(v).NotTo(ContainSubstring(".-"))
			}
		})

		It("doesn't split single characters", func() {
			Expect(Subdomains("a")).To(BeEmpty())
			Expect(Subdomains("")).To(BeEmpty())
		})

	})

	Context("deletions", func() {

		It("deletes each character once", func() {
			Expect(Deletions("abc")).To(Equal([]string{"bc", "ac", "ab"}))
			Expect(Deletions("aab")).To(Equal([]string{"ab", "ab", "aa"}))
			Expect(Deletions("мир")).To(Equal([]string{"ир", "мр", "ми"}))
			Expect(Deletions("")).To(BeEmpty())
		})

	})

	Context("generating", func() {

		It("concatenates the strategies in order", func() {
			alphabet := DefaultAlphabet()
			variants := Generate("abc")
			Expect(variants).To(HaveLen(len(alphabet) + 8 + 2 + 2 + 3))
			Expect(variants[:len(alphabet)]).To(Equal(Suffixes("abc", alphabet)))
			Expect(variants[len(alphabet) : len(alphabet)+8]).To(ContainElements("abc", "аbc", "аьс"))
			Expect(variants[len(alphabet)+8:]).To(Equal([]string{
				"4bc", "abc",
				"a.bc", "ab.c",
				"bc", "ac", "ab",
			}))
		})

		It("yields nothing for an empty keyword", func() {
			Expect(Generate("")).To(BeEmpty())
		})

		It("is idempotent", func() {
			Expect(Generate("group-ib")).To(Equal(Generate("group-ib")))
		})

		It("passes the alphabet to the homoglyphs", func() {
			h := &fakeHomoglyphs{}
			variants := Generate("xy", WithAlphabet([]rune("01")), WithHomoglyphs(h))
			Expect(h.words).To(ConsistOf("xy"))
			Expect(h.alphabets).To(Equal([][]rune{[]rune("01")}))
			Expect(variants).To(Equal([]string{
				"xy0", "xy1",
				"<xy>",
				"xy",
				"x.y",
				"y", "x",
			}))
		})

		It("skips homoglyphs when disabled", func() {
			variants := Generate("abc", WithHomoglyphs(nil), WithLeetLimit(1))
			Expect(variants).To(HaveLen(68 + 2 + 2 + 3))
		})

		It("copies the alphabet", func() {
			alphabet := []rune("ab")
			g := NewGenerator(WithAlphabet(alphabet))
			alphabet[0] = 'z'
			Expect(g.Alphabet()).To(Equal([]rune("ab")))
		})

	})

})
