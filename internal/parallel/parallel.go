// Package parallel provides data-parallel loop execution for tensor
// kernels. It splits an index range across worker goroutines; callers are
// responsible for making f(i) touch disjoint state per index.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how an index range is split across goroutines.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum indexes per goroutine to amortize spawn cost.
}

// DefaultConfig returns a configuration sized to the machine: one worker
// per CPU, parallel only when there is more than one.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// defaultConfig backs ElementWise. Computed once at startup.
var defaultConfig = DefaultConfig()

// ElementWise executes f(i) for i in [0, n) with the default configuration.
// This is the entry point the tensor kernels use.
func ElementWise(n int, f func(i int)) {
	For(n, f, defaultConfig)
}

// For executes f(i) for i in [0, n), split into contiguous chunks across
// cfg.NumWorkers goroutines. Ranges below cfg.MinChunkSize, or any range
// when parallelism is disabled, run sequentially on the calling goroutine.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
