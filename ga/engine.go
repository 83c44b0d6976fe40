package ga

import "math/rand"

// Engine drives a steady-state elitist genetic algorithm over a fixed-size
// population. It owns the problem instance and the generator; callers must
// not retain aliases to either. All methods must be called from a single
// goroutine.
type Engine[I any, F Ordered[F]] struct {
	problem    Problem[I, F]
	eval       evaluator[I, F]
	pop        []Solution[I, F]
	next       []I
	eliteCount int
	rng        *rand.Rand
}

// New builds an engine from an initial population of individuals,
// evaluating them once and establishing the elite prefix.
//
// It fails with ErrEliteCount when eliteCount is outside [0, len(initial)),
// with ErrNotEvaluatable or ErrAmbiguousProblem when the problem does not
// implement exactly one evaluation profile, and with *ContractError when
// the initial evaluation returns the wrong number of fitnesses.
func New[I any, F Ordered[F]](problem Problem[I, F], initial []I, eliteCount int, rng *rand.Rand) (*Engine[I, F], error) {
	if eliteCount < 0 || eliteCount >= len(initial) {
		return nil, ErrEliteCount
	}

	eval, err := resolveEvaluator[I, F](problem)
	if err != nil {
		return nil, err
	}

	fitnesses, err := eval(initial, nil, 0, rng)
	if err != nil {
		return nil, err
	}

	pop := make([]Solution[I, F], len(initial))
	for i := range initial {
		pop[i] = Solution[I, F]{Individual: initial[i], Fitness: fitnesses[i]}
	}

	e := &Engine[I, F]{
		problem:    problem,
		eval:       eval,
		pop:        pop,
		next:       make([]I, 0, len(initial)-eliteCount),
		eliteCount: eliteCount,
		rng:        rng,
	}
	e.sortPopulation()
	return e, nil
}

// Iterate runs one generation: binary-tournament selection, recombination,
// mutation, evaluation of the pending batch, replacement of the non-elite
// slots, and re-establishment of the elite prefix.
//
// On a *ContractError the population is left exactly as before the call;
// the error is not recoverable by retrying.
func (e *Engine[I, F]) Iterate() error {
	target := len(e.pop) - e.eliteCount
	e.next = e.next[:0]

	for len(e.next) < target {
		parent1 := e.tournament()
		parent2 := e.tournament()

		children := e.problem.Recombine(parent1, parent2, e.rng)
		if len(children) < 2 {
			return &ContractError{Op: "Recombine", Want: 2, Got: len(children)}
		}

		// The last recombination may be only partially consumed.
		for _, child := range children[:2] {
			child := child
			e.problem.Mutate(&child, e.rng)
			e.next = append(e.next, child)
			if len(e.next) == target {
				break
			}
		}
	}

	fitnesses, err := e.eval(e.next, e.pop, e.eliteCount, e.rng)
	if err != nil {
		return err
	}

	for i, x := range e.next {
		e.pop[e.eliteCount+i] = Solution[I, F]{Individual: x, Fitness: fitnesses[i]}
	}

	e.sortPopulation()
	return nil
}

// Population returns the current population. The first EliteCount entries
// are the lowest-fitness solutions in ascending order; the rest are in
// unspecified order. The returned slice is a view into engine state and
// must not be modified.
func (e *Engine[I, F]) Population() []Solution[I, F] { return e.pop }

// Problem returns the owned problem instance.
func (e *Engine[I, F]) Problem() Problem[I, F] { return e.problem }

// RNG returns the owned generator. Drawing from it between iterations
// changes the run's trajectory but is otherwise safe.
func (e *Engine[I, F]) RNG() *rand.Rand { return e.rng }

// EliteCount returns the number of solutions preserved unmodified across a
// generation.
func (e *Engine[I, F]) EliteCount() int { return e.eliteCount }

// SetEliteCount changes the elite count, re-validating it against the
// population size and re-establishing the elite prefix immediately.
func (e *Engine[I, F]) SetEliteCount(k int) error {
	if k < 0 || k >= len(e.pop) {
		return ErrEliteCount
	}
	e.eliteCount = k
	e.sortPopulation()
	return nil
}

// sortPopulation places the eliteCount smallest-fitness solutions in the
// prefix, in ascending order. Partial selection sort: the suffix order is
// whatever the scan leaves behind.
func (e *Engine[I, F]) sortPopulation() {
	for k := 0; k < e.eliteCount; k++ {
		best := k
		for i := k + 1; i < len(e.pop); i++ {
			if e.pop[i].Fitness.Less(e.pop[best].Fitness) {
				best = i
			}
		}
		if best != k {
			e.pop[k], e.pop[best] = e.pop[best], e.pop[k]
		}
	}
}
