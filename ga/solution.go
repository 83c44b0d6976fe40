// Package ga implements a steady-state elitist genetic algorithm engine.
//
// The engine is generic over the individual representation and the fitness
// type; callers plug in a problem (mutation, recombination, evaluation) and
// drive the generational loop through Engine.Iterate. Lower fitness is
// better throughout: maximized objectives must be negated by the problem.
package ga

// Ordered is the constraint on fitness types. Less must implement a strict
// weak ordering; lower values are better.
type Ordered[F any] interface {
	Less(F) bool
}

// Solution pairs a candidate individual with its computed fitness.
type Solution[I any, F Ordered[F]] struct {
	Individual I
	Fitness    F
}

// F64 is a scalar fitness.
type F64 float64

// Less reports whether f orders before other.
func (f F64) Less(other F64) bool { return f < other }

// Lex is a multi-objective fitness compared lexicographically. Problems
// with several objectives supply a total order this way; the engine has no
// Pareto machinery.
type Lex []float64

// Less reports whether l orders before other, comparing component-wise and
// breaking exhaustion by length.
func (l Lex) Less(other Lex) bool {
	n := min(len(l), len(other))
	for i := 0; i < n; i++ {
		if l[i] < other[i] {
			return true
		}
		if other[i] < l[i] {
			return false
		}
	}
	return len(l) < len(other)
}
