// Package knapsack is a bi-objective 0/1 knapsack problem for the ga
// engine. An individual is a selection mask over the items; the fitness is
// the negated value sum per objective (lower is better), compared
// lexicographically, with both components forced to zero when the selected
// weight exceeds the capacity.
package knapsack

import (
	"errors"
	"math/rand"

	"evoga/ga"
)

// Objectives is the number of value vectors per instance.
const Objectives = 2

// Problem holds one knapsack instance plus the operator rates. It
// implements the single-evaluation profile.
type Problem struct {
	values   [Objectives][]float64
	weights  []float64
	capacity float64

	mutationRate      float64
	recombinationRate float64
}

// New validates that every value vector matches the weight vector in
// length and builds a problem.
func New(values [Objectives][]float64, weights []float64, capacity, mutationRate, recombinationRate float64) (*Problem, error) {
	for _, v := range values {
		if len(v) != len(weights) {
			return nil, errors.New("knapsack: mismatching value and weight sizes")
		}
	}
	return &Problem{
		values:            values,
		weights:           weights,
		capacity:          capacity,
		mutationRate:      mutationRate,
		recombinationRate: recombinationRate,
	}, nil
}

// Items returns the instance size.
func (p *Problem) Items() int { return len(p.weights) }

// Evaluate scores one selection mask.
func (p *Problem) Evaluate(x []bool, _ *rand.Rand) ga.Lex {
	weight := 0.0
	for i, picked := range x {
		if picked {
			weight += p.weights[i]
		}
	}

	fitness := make(ga.Lex, Objectives)
	if weight > p.capacity {
		return fitness
	}
	for k := range p.values {
		sum := 0.0
		for i, picked := range x {
			if picked {
				sum += p.values[k][i]
			}
		}
		fitness[k] = -sum
	}
	return fitness
}

// Mutate flips each item independently at the mutation rate.
func (p *Problem) Mutate(x *[]bool, rng *rand.Rand) {
	for i := range *x {
		if ga.Draw(p.mutationRate, rng) {
			(*x)[i] = !(*x)[i]
		}
	}
}

// Recombine applies uniform mask crossover at the recombination rate and
// otherwise copies the parents through unchanged.
func (p *Problem) Recombine(a, b []bool, rng *rand.Rand) [][]bool {
	if !ga.Draw(p.recombinationRate, rng) {
		return [][]bool{clone(a), clone(b)}
	}

	child1 := make([]bool, len(a))
	child2 := make([]bool, len(a))
	for i := range a {
		if ga.Draw(0.5, rng) {
			child1[i], child2[i] = a[i], b[i]
		} else {
			child1[i], child2[i] = b[i], a[i]
		}
	}
	return [][]bool{child1, child2}
}

func clone(x []bool) []bool {
	c := make([]bool, len(x))
	copy(c, x)
	return c
}

// Random builds an instance with uniform values and weights and a capacity
// of capacityFrac times the item count.
func Random(items int, capacityFrac, mutationRate, recombinationRate float64, rng *rand.Rand) *Problem {
	randomValues := func() []float64 {
		v := make([]float64, items)
		for i := range v {
			v[i] = rng.Float64()
		}
		return v
	}

	p, err := New(
		[Objectives][]float64{randomValues(), randomValues()},
		randomValues(),
		capacityFrac*float64(items),
		mutationRate,
		recombinationRate,
	)
	if err != nil {
		// New only fails on length mismatch, which Random cannot produce.
		panic(err)
	}
	return p
}

// RandomPopulation draws an initial population of selection masks, each
// item picked independently at onRate.
func RandomPopulation(size, items int, onRate float64, rng *rand.Rand) [][]bool {
	pop := make([][]bool, size)
	for i := range pop {
		x := make([]bool, items)
		for j := range x {
			x[j] = ga.Draw(onRate, rng)
		}
		pop[i] = x
	}
	return pop
}
