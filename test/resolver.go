// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package test provides test fixtures for typodig's packages: a local DNS
// server as well as a fake resolver.
package test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by a [Resolver] for names it doesn't know.
var ErrNotFound = errors.New("no such host")

// Resolver is a fake resolver answering from a fixed set of records, counting
// lookups and the maximum number of concurrent lookups seen.
type Resolver struct {
	Records map[string][]string // name -> addresses
	Delay   time.Duration       // optional lookup delay

	mu        sync.Mutex
	lookups   []string
	inflight  int
	maxflight int
}

// NewResolver returns a new fake Resolver with the specified records.
func NewResolver(records map[string][]string) *Resolver {
	return &Resolver{Records: records}
}

// Resolve returns the addresses recorded for the specified host name, or
// ErrNotFound. With a Delay set, Resolve waits for the delay to pass or the
// context to get done, whatever happens first.
func (r *Resolver) Resolve(ctx context.Context, host string) ([]string, error) {
	r.mu.Lock()
	r.lookups = append(r.lookups, host)
	r.inflight++
	if r.inflight > r.maxflight {
		r.maxflight = r.inflight
	}
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.inflight--
		r.mu.Unlock()
	}()

	if r.Delay > 0 {
		timer := time.NewTimer(r.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	addrs, ok := r.Records[strings.ToLower(host)]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), addrs...), nil
}

// Lookups returns the host names looked up so far, in order of lookup.
func (r *Resolver) Lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lookups...)
}

// MaxInflight returns the maximum number of concurrent lookups seen so far.
func (r *Resolver) MaxInflight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxflight
}
