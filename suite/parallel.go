// SPDX-License-Identifier: MIT

// Package suite: population evaluation on a bounded worker pool.
//
// Optimizers evaluate whole populations per generation; fanning the
// points out over goroutines is the one concurrency pattern this
// library ships. Deterministic benchmarks are trivially parallel. The
// noisy form derives one independent random stream per point index, so
// the realized values depend only on the base seed and the point's
// position — never on worker count or scheduling.

package suite

import (
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/cec2005/randx"
)

// poolSize normalizes the workers argument: non-positive means one
// worker per available CPU.
func poolSize(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return workers
}

// EvaluateAll computes f at every point, fanned out over at most
// workers goroutines (workers ≤ 0 uses GOMAXPROCS).
//
// Returns the values in point order. On failure the first error (by
// completion, not by index) is returned and the values are discarded;
// evaluation errors here are structural, so any failure means the batch
// itself is malformed.
//
// Complexity: O(len(points)·dim²) work, bounded parallelism.
func EvaluateAll(f *Function, points [][]float64, workers int) ([]float64, error) {
	out := make([]float64, len(points))

	p := pool.New().WithMaxGoroutines(poolSize(workers))
	var mu sync.Mutex
	var firstErr error

	for i, x := range points {
		i, x := i, x
		p.Go(func() {
			v, err := f.Evaluate(x)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
			out[i] = v // distinct index per goroutine; no lock needed
		})
	}
	p.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

// EvaluateAllNoisy computes f at every point, resolving each point's
// draw against its own derived stream: point i uses the stream
// DeriveSeed(seed, i). Identical seed and points yield bit-identical
// results for any workers value.
//
// Complexity: as EvaluateAll plus one draw resolution per point.
func EvaluateAllNoisy(f *NoisyFunction, points [][]float64, workers int, seed int64) ([]float64, error) {
	out := make([]float64, len(points))

	p := pool.New().WithMaxGoroutines(poolSize(workers))
	var mu sync.Mutex
	var firstErr error

	for i, x := range points {
		i, x := i, x
		p.Go(func() {
			d, err := f.Evaluate(x)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()

				return
			}
			out[i] = d.Resolve(randx.FromSeed(randx.DeriveSeed(seed, uint64(i))))
		})
	}
	p.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
