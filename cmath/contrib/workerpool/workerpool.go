// Copyright 2025 The go-cmath Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for evaluating
// transcendental functions over large batches of inputs. A Pool is created
// once and reused across many bulk evaluations, so no goroutines are spawned
// per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(in), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = cmath.Sin(in[i])
//	    }
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
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool once pending work completes. Calling Close more
// than once is safe. A closed pool keeps working: every call then runs
// sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until all ranges are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelForBatched hands out batches of batchSize indices by atomic work
// stealing, which balances load when some inputs cost more than others
// (large arguments to Root or Power, for instance). fn receives [start, end).
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	_ = p.ParallelForErr(n, batchSize, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelForErr is ParallelForBatched for functions that can fail. Once a
// batch returns an error no further batches are started, and the first
// error is returned after in-flight batches finish.
func (p *Pool) ParallelForErr(n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		for start := 0; start < n; start += batchSize {
			if err := fn(start, min(start+batchSize, n)); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		nextBatch atomic.Int64
		failed    atomic.Bool
		errOnce   sync.Once
		firstErr  error
		wg        sync.WaitGroup
	)
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !failed.Load() {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					if err := fn(start, min(start+batchSize, n)); err != nil {
						errOnce.Do(func() { firstErr = err })
						failed.Store(true)
						return
					}
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
	return firstErr
}
