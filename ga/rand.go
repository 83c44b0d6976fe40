package ga

import "math/rand"

// Draw reports a Bernoulli trial with the given success rate. Problems use
// it for mutation and recombination rates.
func Draw(rate float64, rng *rand.Rand) bool {
	return rng.Float64() < rate
}
