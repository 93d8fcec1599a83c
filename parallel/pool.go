package parallel

import (
	"runtime"
	"sync"
)

// Pool fans banded work out over a fixed number of workers. The per-pixel
// stages of the pipeline parallelize over disjoint index ranges only, so the
// output is identical to the serial order for any worker count.
type Pool struct {
	workers int
}

// New creates a pool. numWorkers < 1 selects one worker per CPU.
func New(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: numWorkers}
}

// Workers reports the worker count the pool fans out to.
func (p *Pool) Workers() int { return p.workers }

// Bands splits [0, n) into contiguous ranges, one per worker, runs fn on
// each concurrently and waits for all of them to finish.
func (p *Pool) Bands(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	size := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Go(func() {
			fn(lo, hi)
		})
	}
	wg.Wait()
}
