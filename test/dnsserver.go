// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package test

import (
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"

	gi "github.com/onsi/ginkgo/v2"
	g "github.com/onsi/gomega"
	s "github.com/thediveo/success"
)

// DNSServer starts a local UDP DNS server answering A and AAAA queries from the
// specified records, mapping (case-insensitive) names to IPv4 and IPv6
// addresses. Names not in the records get an NXDOMAIN answer. DNSServer returns
// the server's host:port address; the server automatically gets shut down when
// the current spec ends.
func DNSServer(records map[string][]string) string {
	gi.GinkgoHelper()

	zone := map[string][]string{}
	for name, addrs := range records {
		zone[dns.Fqdn(strings.ToLower(name))] = addrs
	}
	pc := s.Successful(net.ListenPacket("udp", "127.0.0.1:0"))
	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		Handler:           dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) { answer(zone, w, r) }),
		NotifyStartedFunc: func() { close(started) },
	}
	go func() {
		_ = srv.ActivateAndServe()
	}()
	g.Eventually(started).Should(g.BeClosed())
	gi.DeferCleanup(func() {
		_ = srv.Shutdown()
	})
	return pc.LocalAddr().String()
}

// answer a single DNS query message from the specified zone data.
func answer(zone map[string][]string, w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)
	for _, q := range r.Question {
		addrs, ok := zone[strings.ToLower(q.Name)]
		if !ok {
			m.SetRcode(r, dns.RcodeNameError)
			break
		}
		for _, addr := range addrs {
			ip := net.ParseIP(addr)
			if ip == nil {
				continue
			}
			var rr dns.RR
			var err error
			switch {
			case q.Qtype == dns.TypeA && ip.To4() != nil:
				rr, err = dns.NewRR(fmt.Sprintf("%s 60 IN A %s", q.Name, addr))
			case q.Qtype == dns.TypeAAAA && ip.To4() == nil:
				rr, err = dns.NewRR(fmt.Sprintf("%s 60 IN AAAA %s", q.Name, addr))
			default:
				continue
			}
			if err == nil {
				m.Answer = append(m.Answer, rr)
			}
		}
	}
	_ = w.WriteMsg(m)
}
