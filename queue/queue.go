// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package queue implements the unbounded FIFO work queue shared between a
// single producer and a fixed set of workers. Besides work items, the queue
// transports sentinels, each telling exactly one worker to call it a day.
package queue

import (
	"sync"

	"github.com/gammazero/deque"
)

// item is either a name to work on or a sentinel.
type item struct {
	name     string
	sentinel bool
}

// Queue is an unbounded FIFO of names and sentinels. Put never blocks, Get
// blocks while the queue is empty. Each item gets delivered to exactly one
// Get caller.
type Queue struct {
	mu       sync.Mutex
	nonempty *sync.Cond
	items    deque.Deque[item]
}

// New returns a new and empty Queue.
func New() *Queue {
	q := &Queue{}
	q.nonempty = sync.NewCond(&q.mu)
	return q
}

// Put enqueues the specified names in order.
func (q *Queue) Put(names ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, name := range names {
		q.items.PushBack(item{name: name})
	}
	if len(names) > 1 {
		q.nonempty.Broadcast()
	} else if len(names) == 1 {
		q.nonempty.Signal()
	}
}

// PutSentinels enqueues n sentinels, one per worker that should terminate
// after having drained all items enqueued before.
func (q *Queue) PutSentinels(n int) {
	if n <= 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := 0; i < n; i++ {
		q.items.PushBack(item{sentinel: true})
	}
	q.nonempty.Broadcast()
}

// Get dequeues the next item, waiting for one to become available if
// necessary. It returns the name and true for a work item, or "" and false
// for a sentinel. A caller receiving a sentinel must not call Get anymore.
func (q *Queue) Get() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Len() == 0 {
		q.nonempty.Wait()
	}
	it := q.items.PopFront()
	return it.name, !it.sentinel
}

// Len returns the number of items (including sentinels) currently enqueued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}
