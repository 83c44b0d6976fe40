package ga

import "math/rand"

// Problem is the contract every optimization problem must satisfy, in
// addition to exactly one of the two evaluation profiles below. The engine
// never inspects individuals; it only moves them between the population and
// these operators. All randomness must come from the supplied generator so
// that runs are reproducible for a fixed seed.
type Problem[I any, F Ordered[F]] interface {
	// Mutate perturbs x in place.
	Mutate(x *I, rng *rand.Rand)

	// Recombine produces exactly two children from the parents. The
	// children may be unchanged copies of the parents. Returning more
	// than two children is tolerated (the excess is discarded); fewer
	// than two is a contract violation.
	Recombine(a, b I, rng *rand.Rand) []I
}

// SingleEvaluation is the per-individual evaluation profile.
type SingleEvaluation[I any, F Ordered[F]] interface {
	Problem[I, F]

	// Evaluate computes the fitness of a single individual.
	Evaluate(x I, rng *rand.Rand) F
}

// BatchEvaluation is the batched evaluation profile. It receives the
// pre-replacement population and elite count so the problem can score
// candidates relative to the surviving elites.
//
// EvaluateAll may parallelize internally; the engine sees one blocking
// call. Implementations that consume the shared generator from several
// goroutines must serialize access or use independent per-worker streams —
// the engine does not guard the generator.
type BatchEvaluation[I any, F Ordered[F]] interface {
	Problem[I, F]

	// EvaluateAll computes fitnesses for candidates, aligned 1:1 and in
	// order. Returning a slice of any other length is a contract
	// violation.
	EvaluateAll(candidates []I, current []Solution[I, F], eliteCount int, rng *rand.Rand) []F
}

// evaluator normalizes both profiles into one batched call.
type evaluator[I any, F Ordered[F]] func(candidates []I, current []Solution[I, F], eliteCount int, rng *rand.Rand) ([]F, error)

// resolveEvaluator selects the evaluation profile once, at construction.
// Exactly one profile must be implemented; anything else is rejected
// before any evaluation runs.
func resolveEvaluator[I any, F Ordered[F]](p Problem[I, F]) (evaluator[I, F], error) {
	single, hasSingle := p.(SingleEvaluation[I, F])
	batch, hasBatch := p.(BatchEvaluation[I, F])

	switch {
	case hasSingle && hasBatch:
		return nil, ErrAmbiguousProblem
	case hasSingle:
		return func(candidates []I, _ []Solution[I, F], _ int, rng *rand.Rand) ([]F, error) {
			fitnesses := make([]F, len(candidates))
			for i := range candidates {
				fitnesses[i] = single.Evaluate(candidates[i], rng)
			}
			return fitnesses, nil
		}, nil
	case hasBatch:
		return func(candidates []I, current []Solution[I, F], eliteCount int, rng *rand.Rand) ([]F, error) {
			fitnesses := batch.EvaluateAll(candidates, current, eliteCount, rng)
			if len(fitnesses) != len(candidates) {
				return nil, &ContractError{Op: "EvaluateAll", Want: len(candidates), Got: len(fitnesses)}
			}
			return fitnesses, nil
		}, nil
	default:
		return nil, ErrNotEvaluatable
	}
}
