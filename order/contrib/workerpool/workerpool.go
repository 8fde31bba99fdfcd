// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// spreading independent pieces of work over a fixed set of goroutines.
// A Pool is created once and reused across many calls, so batch sorting
// does not pay goroutine spawn cost per batch.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Each(len(batch), func(i int) {
//	    sort.Sort(batch[i])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and live until Close.
type Pool struct {
	workers  int
	tasks    chan task
	done     sync.WaitGroup
	stopOnce sync.Once
	stopped  atomic.Bool
}

// task is one unit handed to a worker. The worker signals barrier when fn
// returns.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers.
// If workers <= 0, uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	p.done.Add(workers)
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	defer p.done.Done()
	for t := range p.tasks {
		t.fn()
		t.barrier.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the pool and waits for every worker goroutine to exit.
// Calling Close multiple times is safe. Each and Chunks keep working after
// Close by running on the caller's goroutine.
func (p *Pool) Close() {
	p.stopOnce.Do(func() {
		p.stopped.Store(true)
		close(p.tasks)
	})
	p.done.Wait()
}

// Each calls fn(i) for every i in [0, n), distributing indices with atomic
// work stealing so uneven item costs balance out. Blocks until all calls
// return.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.workers, n)
	if workers == 1 || p.stopped.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Chunks splits [0, n) into at most Workers() contiguous ranges and calls
// fn(start, end) once per range. Blocks until all calls return.
func (p *Pool) Chunks(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.workers, n)
	if workers == 1 || p.stopped.Load() {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		wg.Add(1)
		p.tasks <- task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}
