/*
Package resolve implements name resolution for candidate domains. typodig's
resolution workers see only the [Resolver] interface, which is satisfied by
two implementations:

  - [System] uses the system's standard name resolution, as configured for
    the host, including /etc/hosts.
  - [Nameserver] sends A and AAAA queries to a specific DNS server, optionally
    from inside a different network namespace, such as a container's.

Both implementations convert internationalized domain names (such as those
with Cyrillic homoglyphs) into their ASCII-compatible “xn--” form before
querying.

Usage

	res := resolve.NewSystem()
	addrs, err := res.Resolve(ctx, "example.org")

	ns, err := resolve.NewNameserver("127.0.0.11:53",
	    resolve.InNetworkNamespace("/proc/666/ns/net"))
	addrs, err := ns.Resolve(ctx, "foo.example.org")
*/
package resolve
