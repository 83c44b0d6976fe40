package ga

// tournament selects one parent by binary tournament with replacement: two
// indices drawn independently and uniformly over the population (the same
// index may come up twice), first candidate wins only with strictly lesser
// fitness. Ties go to the second draw; callers depend on this for
// reproducibility, so it must not be rebalanced.
func (e *Engine[I, F]) tournament() I {
	i := e.rng.Intn(len(e.pop))
	j := e.rng.Intn(len(e.pop))
	if e.pop[i].Fitness.Less(e.pop[j].Fitness) {
		return e.pop[i].Individual
	}
	return e.pop[j].Individual
}
