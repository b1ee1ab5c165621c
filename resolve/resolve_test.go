// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/siemens/typodig/test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

var _ = Describe("resolving names", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	DescribeTable("converts names to ASCII",
		func(name, expected string) {
			Expect(ToASCII(name)).To(Equal(expected))
		},
		Entry(nil, "Example.ORG.", "example.org"),
		Entry(nil, "ab.c.com", "ab.c.com"),
		Entry(nil, "пример.com", "xn--e1afmkfd.com"),
		Entry(nil, "Пример.рф", "xn--e1afmkfd.xn--p1ai"),
	)

	It("rejects empty and invalid names", func() {
		Expect(ToASCII("")).Error().To(HaveOccurred())
		Expect(ToASCII(".")).Error().To(HaveOccurred())
	})

	Context("system resolver", func() {

		It("resolves localhost", NodeTimeout(10*time.Second), func(ctx context.Context) {
			addrs := Successful(NewSystem().Resolve(ctx, "localhost"))
			Expect(addrs).To(ContainElement(BeElementOf("127.0.0.1", "::1")))
		})

		It("fails on non-existing names", NodeTimeout(30*time.Second), func(ctx context.Context) {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			Expect(NewSystem().Resolve(ctx, "xq7vk2m9zr4tn1wy8ph3jd6lc5bf0ga.invalid")).Error().To(HaveOccurred())
		})

	})

	Context("nameserver resolver", func() {

		DescribeTable("completes DNS server addresses",
			func(addr, expected string) {
				Expect(Successful(NewNameserver(addr)).Addr()).To(Equal(expected))
			},
			Entry(nil, "192.0.2.53", "192.0.2.53:53"),
			Entry(nil, "192.0.2.53:5353", "192.0.2.53:5353"),
			Entry(nil, "[2001:db8::53]:53", "[2001:db8::53]:53"),
			Entry(nil, "2001:db8::53", "[2001:db8::53]:53"),
		)

		It("picks up the DNS server from the resolver configuration", func() {
			dir := GinkgoT().TempDir()
			conf := filepath.Join(dir, "resolv.conf")
			Expect(os.WriteFile(conf, []byte("nameserver 192.0.2.1\nnameserver 192.0.2.2\n"), 0o644)).To(Succeed())
			old := ResolvConf
			ResolvConf = conf
			DeferCleanup(func() { ResolvConf = old })

			Expect(Successful(NewNameserver("")).Addr()).To(Equal("192.0.2.1:53"))

			Expect(os.WriteFile(conf, []byte("search example.org\n"), 0o644)).To(Succeed())
			Expect(NewNameserver("")).Error().To(HaveOccurred())

			ResolvConf = filepath.Join(dir, "nonexisting")
			Expect(NewNameserver("")).Error().To(HaveOccurred())
		})

		It("resolves names", NodeTimeout(10*time.Second), func(ctx context.Context) {
			addr := test.DNSServer(map[string][]string{
				"abca.com":         {"192.0.2.1", "2001:db8::1"},
				"xn--e1afmkfd.com": {"192.0.2.2"},
			})
			ns := Successful(NewNameserver(addr))
			Expect(ns.Resolve(ctx, "ABCA.com")).To(ConsistOf("192.0.2.1", "2001:db8::1"))
			Expect(ns.Resolve(ctx, "пример.com")).To(ConsistOf("192.0.2.2"))
		})

		It("reports non-existing names", NodeTimeout(10*time.Second), func(ctx context.Context) {
			addr := test.DNSServer(map[string][]string{
				"empty.com": {},
			})
			ns := Successful(NewNameserver(addr))
			Expect(ns.Resolve(ctx, "nonexisting.com")).Error().To(MatchError(ContainSubstring("NXDOMAIN")))
			Expect(ns.Resolve(ctx, "empty.com")).Error().To(MatchError(ContainSubstring("no answers")))
		})

		It("reports resolution failures", NodeTimeout(30*time.Second), func(ctx context.Context) {
			ns := Successful(NewNameserver("127.0.0.1:1", WithNet("udp")))
			ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			Expect(ns.Resolve(ctx, "tld.rottennet")).Error().To(HaveOccurred())
		})

		It("resolves names from inside a network namespace", NodeTimeout(10*time.Second), func(ctx context.Context) {
			if os.Getuid() != 0 {
				Skip("needs root")
			}
			addr := test.DNSServer(map[string][]string{"abca.com": {"192.0.2.1"}})

			ns := Successful(NewNameserver(addr, InNetworkNamespace("/proc/self/ns/net")))
			Expect(ns.Resolve(ctx, "abca.com")).To(ConsistOf("192.0.2.1"))

			ns = Successful(NewNameserver(addr, InNetworkNamespace("/nonexisting")))
			Expect(ns.Resolve(ctx, "abca.com")).Error().To(HaveOccurred())
		})

		It("honors the context", NodeTimeout(10*time.Second), func(ctx context.Context) {
			addr := test.DNSServer(map[string][]string{"abca.com": {"192.0.2.1"}})
			ns := Successful(NewNameserver(addr))
			ctx, cancel := context.WithCancel(ctx)
			cancel()
			Expect(ns.Resolve(ctx, "abca.com")).Error().To(HaveOccurred())
		})

	})

})
