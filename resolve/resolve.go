// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"net"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Resolver resolves host names into their IP addresses in textual form.
// Resolve blocks until the addresses are known, the lookup fails, or the
// context gets done.
type Resolver interface {
	Resolve(ctx context.Context, host string) ([]string, error)
}

// ToASCII returns the ASCII-compatible form of the specified host name in lower
// case and without a trailing dot. Non-ASCII labels get converted into their
// punycode “xn--” form.
func ToASCII(host string) (string, error) {
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", fmt.Errorf("empty host name")
	}
	if isASCII(host) {
		return strings.ToLower(host), nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("idna: %w", err)
	}
	return strings.ToLower(ascii), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// System resolves names using the system's name resolution.
type System struct {
	resolver *net.Resolver
}

var _ Resolver = (*System)(nil)

// NewSystem returns a new System resolver.
func NewSystem() *System {
	return &System{resolver: net.DefaultResolver}
}

// Resolve the specified host name into its IPv4 and IPv6 addresses.
func (s *System) Resolve(ctx context.Context, host string) ([]string, error) {
	name, err := ToASCII(host)
	if err != nil {
		return nil, err
	}
	ipaddrs, err := s.resolver.LookupIPAddr(ctx, name)
	if err != nil {
		return nil, err
	}
	addrs := make([]string, 0, len(ipaddrs))
	seen := map[string]struct{}{}
	for _, ipaddr := range ipaddrs {
		addr := ipaddr.IP.String()
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		addrs = append(addrs, addr)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("query for %q yields no addresses", name)
	}
	return addrs, nil
}
