/*
Package pool implements the resolution pool: a fixed number of workers
draining a shared work queue of candidate domains, looking up each domain and
streaming the successfully resolved domains over the pool's results channel.

	         +------+
	names--->| Pool +-->ch types.Result
	         +------+

All workers are started when creating a new [Pool], before any work gets
enqueued. [Pool.Dig] then enqueues the candidate domains, followed by exactly
one sentinel per worker. A worker dequeuing a sentinel terminates, so after
all workers have seen their sentinels the pool has drained the queue
completely, regardless of how the workers raced for the queued domains.

Lookups that fail in whatever way (no such domain, timeout, network
unreachable, ...) are counted, but not reported, and never stop the pool.

	p, results, err := pool.New(ctx, 50, resolve.NewSystem())
	go func() {
	    for res := range results {
	        fmt.Println(res)
	    }
	}()
	p.Dig(names)
	p.StopWait()

# Acknowledgements

Under its hood, [Pool] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package pool
