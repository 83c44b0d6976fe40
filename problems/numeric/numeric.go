// Package numeric is a continuous toy problem over x in [0, 1]: minimize
// f1(x) + f2(x), a two-front test landscape collapsed to a scalar.
package numeric

import (
	"math"
	"math/rand"

	"evoga/ga"
)

// Problem implements the single-evaluation profile over float64
// individuals.
type Problem struct {
	// MutationRate is the probability of resampling x uniformly.
	MutationRate float64
	// SwapRate is the probability of returning the parents swapped
	// instead of copied through.
	SwapRate float64
}

// New returns a problem with the stock rates.
func New() *Problem {
	return &Problem{MutationRate: 0.1, SwapRate: 0.4}
}

func f1(x float64) float64 {
	s := math.Sin(6 * 3.1415 * x)
	return 1 - math.Exp(-4*x)*math.Pow(s, 6)
}

func g(x float64) float64 { return 1 + 9*math.Pow(x, 0.25) }

func f2(x float64) float64 {
	r := f1(x) / g(x)
	return g(x) * (1 - r*r)
}

// Evaluate scores one candidate.
func (p *Problem) Evaluate(x float64, _ *rand.Rand) ga.F64 {
	return ga.F64(f1(x) + f2(x))
}

// Mutate resamples x uniformly over [0, 1) at the mutation rate.
func (p *Problem) Mutate(x *float64, rng *rand.Rand) {
	if ga.Draw(p.MutationRate, rng) {
		*x = rng.Float64()
	}
}

// Recombine swaps the parents at the swap rate, otherwise copies them
// through.
func (p *Problem) Recombine(a, b float64, rng *rand.Rand) []float64 {
	if ga.Draw(p.SwapRate, rng) {
		return []float64{b, a}
	}
	return []float64{a, b}
}

// RandomPopulation draws size candidates uniformly over [0, 1).
func RandomPopulation(size int, rng *rand.Rand) []float64 {
	pop := make([]float64, size)
	for i := range pop {
		pop[i] = rng.Float64()
	}
	return pop
}
