// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/siemens/typodig/queue"
	"github.com/siemens/typodig/resolve"
	"github.com/siemens/typodig/types"

	"github.com/gammazero/workerpool"
	"github.com/thediveo/lxkns/log"
)

// DefaultTimeout is the default time limit of a single lookup.
const DefaultTimeout = 5 * time.Second

// ErrPoolSize is returned by New when asked for a pool without workers.
var ErrPoolSize = errors.New("pool size must be at least 1")

// Pool is a fixed-size pool of resolution workers draining a shared queue of
// candidate domains.
type Pool struct {
	ctx      context.Context
	size     int
	resolver resolve.Resolver
	timeout  time.Duration

	workers *workerpool.WorkerPool
	work    *queue.Queue
	news    chan types.Result
	hook    func(types.Outcome)

	digOnce  sync.Once
	stopOnce sync.Once

	enqueued   atomic.Int64
	resolved   atomic.Int64
	unresolved atomic.Int64
	dropped    atomic.Int64
}

// Option can be passed to New when creating new [Pool] objects.
type Option func(*Pool)

// WithTimeout sets the time limit of each individual lookup; a zero or
// negative timeout leaves lookups limited only by the pool's context and the
// resolver itself.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Pool) {
		p.timeout = timeout
	}
}

// WithOutcomeHook sets a function that gets called with the outcome of each
// lookup, resolved or not. The hook is called concurrently from all workers.
func WithOutcomeHook(fn func(types.Outcome)) Option {
	return func(p *Pool) {
		p.hook = fn
	}
}

// Stats are the pool's lookup counters.
type Stats struct {
	Enqueued   int // candidate domains enqueued so far
	Resolved   int // candidate domains resolved so far
	Unresolved int // candidate domains that failed to resolve so far
	Dropped    int // resolved candidate domains not reported due to cancellation
}

// Done returns the number of lookups done so far.
func (s Stats) Done() int { return s.Resolved + s.Unresolved + s.Dropped }

// New returns a new Pool with the specified number of workers, already
// started, as well as the results channel. The results channel sends a
// [types.Result] for each successfully resolved candidate domain and gets
// closed by [Pool.StopWait] after all workers have terminated.
//
// The workers use the passed context for their lookups; when the context gets
// cancelled, all further lookups fail immediately, so the workers quickly
// drain the queue.
func New(ctx context.Context, size int, resolver resolve.Resolver, options ...Option) (*Pool, <-chan types.Result, error) {
	if size < 1 {
		return nil, nil, fmt.Errorf("%w, got: %d", ErrPoolSize, size)
	}
	p := &Pool{
		ctx:      ctx,
		size:     size,
		resolver: resolver,
		timeout:  DefaultTimeout,
		workers:  workerpool.New(size),
		work:     queue.New(),
		news:     make(chan types.Result, size),
	}
	for _, opt := range options {
		opt(p)
	}
	// Start all workers as long-running tasks, so each of them occupies one of
	// the worker pool's goroutines until it sees its sentinel.
	for id := 0; id < size; id++ {
		id := id
		p.workers.Submit(func() { p.worker(id) })
	}
	log.Debugf("started %d resolution workers", size)
	return p, p.news, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Dig enqueues the specified candidate domains, followed by one sentinel per
// worker. Dig never blocks on the workers. Only the first call to Dig enqueues
// work, later calls are ignored, as the workers are already on their way out.
func (p *Pool) Dig(names []string) {
	dug := false
	p.digOnce.Do(func() {
		dug = true
		p.enqueued.Add(int64(len(names)))
		p.work.Put(names...)
		p.work.PutSentinels(p.size)
		log.Debugf("enqueued %d candidate domains", len(names))
	})
	if !dug {
		log.Warnf("ignoring %d candidate domains enqueued after the pool has been sealed", len(names))
	}
}

// StopWait waits for all enqueued candidate domains to get processed and all
// workers to terminate, and then closes the results channel. If Dig hasn't been
// called before, StopWait only enqueues the sentinels.
//
// Callers must consume the results channel while waiting.
func (p *Pool) StopWait() {
	p.stopOnce.Do(func() {
		p.digOnce.Do(func() {
			p.work.PutSentinels(p.size)
		})
		p.workers.StopWait()
		close(p.news)
	})
}

// Stats returns the current lookup counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Enqueued:   int(p.enqueued.Load()),
		Resolved:   int(p.resolved.Load()),
		Unresolved: int(p.unresolved.Load()),
		Dropped:    int(p.dropped.Load()),
	}
}

// worker dequeues and looks up candidate domains until it dequeues its
// sentinel.
func (p *Pool) worker(id int) {
	for {
		name, ok := p.work.Get()
		if !ok {
			log.Debugf("resolution worker %d done", id)
			return
		}
		p.lookup(name)
	}
}

// lookup the specified candidate domain and report it if it resolves.
func (p *Pool) lookup(name string) {
	ctx := p.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	outcome := types.Outcome{FQDN: name}
	outcome.Addresses, outcome.Err = p.resolver.Resolve(ctx, name)
	if p.hook != nil {
		p.hook(outcome)
	}
	result, ok := outcome.Result()
	if !ok {
		p.unresolved.Add(1)
		log.Debugf("%s unresolved: %s", name, outcome.Reason())
		return
	}
	// Avoid blocking endless in case of the context getting cancelled.
	select {
	case p.news <- result:
		p.resolved.Add(1)
	case <-p.ctx.Done():
		p.dropped.Add(1)
		log.Debugf("%s resolved, but dropped: %s", name, p.ctx.Err())
	}
}
