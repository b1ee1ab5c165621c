// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/siemens/typodig/fqdn"
	"github.com/siemens/typodig/pool"
	"github.com/siemens/typodig/resolve"
	"github.com/siemens/typodig/variant"

	"github.com/thediveo/lxkns/log"
)

// stderr receives the progress line, if enabled and a terminal.
var stderr io.Writer = os.Stderr

// newResolver returns the resolver to use as configured: either the system
// resolver or a specific DNS server, optionally queried from inside a
// different network namespace. Tests replace it with a fake resolver.
var newResolver = func(cfg *config) (resolve.Resolver, error) {
	if cfg.Nameserver == "" {
		return resolve.NewSystem(), nil
	}
	return resolve.NewNameserver(cfg.Nameserver, resolve.InNetworkNamespace(cfg.Netns))
}

// candidates returns the candidate domains for all configured keywords, in
// keyword order.
func candidates(cfg *config) []string {
	gen := variant.NewGenerator(variant.WithLeetLimit(cfg.LeetLimit))
	names := []string{}
	for _, keyword := range cfg.Keywords {
		variants := gen.Generate(keyword)
		log.Debugf("keyword %q yields %d variants", keyword, len(variants))
		names = append(names, fqdn.Assemble(variants, cfg.Zones)...)
	}
	return names
}

// DigAndReport generates the candidate domains for the configured keywords and
// zones, and then digs them up using the specified resolver. Every resolved
// candidate domain gets reported on its own line to the specified io.Writer,
// in the order of resolution. In dry-run mode, DigAndReport only lists the
// candidate domains, without resolving them.
func DigAndReport(ctx context.Context, cfg *config, resolver resolve.Resolver, w io.Writer) error {
	names := candidates(cfg)
	log.Debugf("%d candidate domains in %d zones", len(names), len(cfg.Zones))
	if cfg.DryRun {
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	p, results, err := pool.New(ctx, cfg.Workers, resolver, pool.WithTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("cannot start resolution workers: %w", err)
	}

	// When showing progress on a terminal that also receives the results, the
	// results need to go above the progress line instead of tearing it apart.
	out := w
	var prog *progress
	switch {
	case !cfg.Progress:
	case !isTerminal(stderr):
		log.Debugf("no progress line, as stderr is not a terminal")
	default:
		prog = newProgress(stderr, len(names), p.Stats)
		if isTerminal(w) {
			out = prog.Bypass()
		}
		prog.Start(progressInterval)
	}

	// The single reporter serializes the result lines; it finishes only after
	// all workers have terminated and the pool has closed the results channel.
	styled := isStyled(w)
	reportingDone := make(chan struct{})
	go func() {
		defer close(reportingDone)
		for result := range results {
			fmt.Fprintln(out, renderResult(result, styled))
		}
	}()

	p.Dig(names)
	p.StopWait()
	<-reportingDone
	if prog != nil {
		prog.Stop()
	}

	stats := p.Stats()
	log.Infof("dug %d candidate domains: %d resolved, %d unresolved, %d dropped",
		stats.Enqueued, stats.Resolved, stats.Unresolved, stats.Dropped)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("digging interrupted: %w", err)
	}
	return nil
}
