package ga

import (
	"runtime"
	"sync"
)

// EvaluateConcurrently evaluates candidates with fn across a bounded pool
// of goroutines and returns the fitnesses aligned 1:1 with the input.
// workers <= 0 means one worker per CPU.
//
// It is a building block for BatchEvaluation implementations whose fitness
// function needs no generator access; with a deterministic fn the result
// is independent of scheduling, so engine-level reproducibility is kept.
func EvaluateConcurrently[I any, F Ordered[F]](candidates []I, workers int, fn func(I) F) []F {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]F, len(candidates))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i := range candidates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = fn(candidates[i])
		}(i)
	}
	wg.Wait()

	return results
}
