// Package onemax is OneMax with an elite-similarity sharing penalty.
// Candidates are bit strings; the base score is the negated count of set
// bits, and candidates that resemble a surviving elite too closely pay a
// penalty proportional to the best matching-bit fraction. The penalty
// keeps the non-elite slots from collapsing onto the elites.
//
// The problem implements the batch-evaluation profile: it needs the
// pre-replacement population and elite count, and its fitness function is
// generator-free, so scoring fans out across workers.
package onemax

import (
	"math/rand"

	"evoga/ga"
)

// Problem implements the batch-evaluation profile over []bool
// individuals.
type Problem struct {
	// SharingPenalty scales the elite-similarity penalty.
	SharingPenalty float64
	// MutationRate is the per-bit flip probability.
	MutationRate float64
	// Workers bounds the evaluation pool; <= 0 means one per CPU.
	Workers int
}

// New returns a problem with the given bit-flip rate and sharing penalty.
func New(mutationRate, sharingPenalty float64) *Problem {
	return &Problem{SharingPenalty: sharingPenalty, MutationRate: mutationRate}
}

// EvaluateAll scores the candidate batch against the surviving elites of
// the pre-replacement population.
func (p *Problem) EvaluateAll(candidates [][]bool, current []ga.Solution[[]bool, ga.F64], eliteCount int, _ *rand.Rand) []ga.F64 {
	if eliteCount > len(current) {
		eliteCount = len(current)
	}
	elites := current[:eliteCount]

	return ga.EvaluateConcurrently(candidates, p.Workers, func(x []bool) ga.F64 {
		score := -float64(ones(x))
		if p.SharingPenalty > 0 && len(elites) > 0 {
			score += p.SharingPenalty * maxSimilarity(x, elites)
		}
		return ga.F64(score)
	})
}

// Mutate flips each bit independently at the mutation rate.
func (p *Problem) Mutate(x *[]bool, rng *rand.Rand) {
	for i := range *x {
		if ga.Draw(p.MutationRate, rng) {
			(*x)[i] = !(*x)[i]
		}
	}
}

// Recombine performs single-point crossover.
func (p *Problem) Recombine(a, b []bool, rng *rand.Rand) [][]bool {
	point := rng.Intn(len(a))

	child1 := make([]bool, len(a))
	child2 := make([]bool, len(a))
	copy(child1[:point], a[:point])
	copy(child1[point:], b[point:])
	copy(child2[:point], b[:point])
	copy(child2[point:], a[point:])

	return [][]bool{child1, child2}
}

func ones(x []bool) int {
	n := 0
	for _, bit := range x {
		if bit {
			n++
		}
	}
	return n
}

// maxSimilarity returns the best matching-bit fraction between x and any
// elite individual.
func maxSimilarity(x []bool, elites []ga.Solution[[]bool, ga.F64]) float64 {
	best := 0.0
	for _, elite := range elites {
		matches := 0
		for i := range x {
			if x[i] == elite.Individual[i] {
				matches++
			}
		}
		if sim := float64(matches) / float64(len(x)); sim > best {
			best = sim
		}
	}
	return best
}

// RandomPopulation draws size bit strings, each bit set at onRate.
func RandomPopulation(size, bits int, onRate float64, rng *rand.Rand) [][]bool {
	pop := make([][]bool, size)
	for i := range pop {
		x := make([]bool, bits)
		for j := range x {
			x[j] = ga.Draw(onRate, rng)
		}
		pop[i] = x
	}
	return pop
}
