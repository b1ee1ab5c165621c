// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/thediveo/lxkns/log"
	"github.com/thediveo/lxkns/ops"
	"github.com/thediveo/lxkns/ops/relations"
	"github.com/thediveo/lxkns/species"
)

// ResolvConf is the resolver configuration file consulted by NewNameserver
// when no explicit DNS server address has been specified.
var ResolvConf = "/etc/resolv.conf"

// Nameserver resolves names by directly querying a DNS server for A and AAAA
// resource records.
type Nameserver struct {
	addr   string             // DNS server address in host:port format.
	client *dns.Client        // DNS client to use.
	netns  relations.Relation // network namespace to query from, or nil.
}

var _ Resolver = (*Nameserver)(nil)

// NameserverOption can be passed to NewNameserver when creating new
// [Nameserver] objects.
type NameserverOption func(*Nameserver)

// NewNameserver returns a new Nameserver resolver querying the DNS server at
// the specified address. If the address lacks a port, port 53 is assumed. If
// the address is empty, the first nameserver from [ResolvConf] is used.
//
// To query from a network namespace different to that of the OS-level thread
// of the caller specify the [InNetworkNamespace] option and pass it a
// filesystem path that must reference a network namespace (such as
// "/proc/666/ns/net").
func NewNameserver(addr string, options ...NameserverOption) (*Nameserver, error) {
	if addr == "" {
		conf, err := dns.ClientConfigFromFile(ResolvConf)
		if err != nil {
			return nil, fmt.Errorf("cannot determine DNS server: %w", err)
		}
		if len(conf.Servers) == 0 {
			return nil, fmt.Errorf("cannot determine DNS server: none in %s", ResolvConf)
		}
		addr = net.JoinHostPort(conf.Servers[0], conf.Port)
	} else if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "53")
	}
	ns := &Nameserver{
		addr:   addr,
		client: &dns.Client{Net: "udp"},
	}
	for _, opt := range options {
		opt(ns)
	}
	log.Debugf("using DNS server %s", ns.addr)
	return ns, nil
}

// InNetworkNamespace optionally runs DNS queries from inside the network
// namespace referenced by the specified filesystem path. An empty path leaves
// the queries in the caller's network namespace.
func InNetworkNamespace(netnsref string) NameserverOption {
	return func(n *Nameserver) {
		if netnsref == "" {
			return
		}
		n.netns = ops.NewTypedNamespacePath(netnsref, species.CLONE_NEWNET)
	}
}

// WithNet sets the transport ("udp", "tcp", "tcp-tls") to talk to the DNS
// server with.
func WithNet(network string) NameserverOption {
	return func(n *Nameserver) {
		n.client.Net = network
	}
}

// Addr returns the address of the DNS server queried.
func (n *Nameserver) Addr() string { return n.addr }

// Resolve the specified host name by querying for its A and AAAA resource
// records. If neither A nor AAAA answers are received this is considered to be
// an error.
func (n *Nameserver) Resolve(ctx context.Context, host string) ([]string, error) {
	name, err := ToASCII(host)
	if err != nil {
		return nil, err
	}
	conn, err := n.dial(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	client := n.client
	if deadline, ok := ctx.Deadline(); ok {
		// The DNS client applies its own read/write deadlines per exchange,
		// so bound them by what's left of the context's deadline.
		timeout := time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
		client = &dns.Client{Net: n.client.Net, Timeout: timeout}
	}
	return exchange(ctx, client, conn, name)
}

// exchange queries the A and AAAA records for the specified name one after
// another on the same DNS client connection.
func exchange(ctx context.Context, client *dns.Client, conn *dns.Conn, name string) ([]string, error) {
	var addrs []string
	fqdn := dns.Fqdn(name)
	for _, addrType := range []uint16{dns.TypeA, dns.TypeAAAA} {
		// don't try to resolve the name if the context has been cancelled.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		msg := dns.Msg{
			MsgHdr: dns.MsgHdr{Id: dns.Id()},
		}
		msg.SetQuestion(fqdn, addrType)
		r, _, err := client.ExchangeWithConn(&msg, conn)
		if err != nil {
			return nil, err
		}
		if r.Rcode == dns.RcodeNameError {
			return nil, fmt.Errorf("query for %q: %s", name, dns.RcodeToString[r.Rcode])
		}
		for _, rr := range r.Answer {
			switch addrRR := rr.(type) {
			case *dns.A:
				addrs = append(addrs, addrRR.A.String())
			case *dns.AAAA:
				addrs = append(addrs, addrRR.AAAA.String())
			}
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("query for %q yields no answers", name)
	}
	return addrs, nil
}

// dial a new DNS client connection, inside the configured network namespace if
// necessary. Once dialed, the connection stays in its network namespace.
func (n *Nameserver) dial(ctx context.Context) (*dns.Conn, error) {
	dial := func() interface{} {
		conn, err := n.client.DialContext(ctx, n.addr)
		if err != nil {
			return err
		}
		return conn
	}
	var res interface{}
	if n.netns != nil {
		var err error
		res, err = ops.Execute(dial, n.netns)
		if err != nil {
			return nil, err
		}
	} else {
		res = dial()
	}
	switch res := res.(type) {
	case *dns.Conn:
		return res, nil
	case error:
		return nil, res
	}
	return nil, errors.New("dialing DNS server failed")
}
