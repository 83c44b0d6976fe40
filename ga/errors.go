package ga

import (
	"errors"
	"fmt"
)

var (
	// ErrEliteCount reports an elite count outside [0, N).
	ErrEliteCount = errors.New("ga: elite count must satisfy 0 <= k < population size")

	// ErrNotEvaluatable reports a problem that implements neither
	// evaluation profile.
	ErrNotEvaluatable = errors.New("ga: problem implements neither evaluation profile")

	// ErrAmbiguousProblem reports a problem that implements both
	// evaluation profiles.
	ErrAmbiguousProblem = errors.New("ga: problem implements both evaluation profiles")
)

// ContractError reports a problem implementation returning output of the
// wrong cardinality. It is a programming error in the problem, not an
// expected runtime condition; the engine never retries and leaves the
// population in its pre-call state.
type ContractError struct {
	Op   string // "Evaluate", "EvaluateAll" or "Recombine"
	Want int
	Got  int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("ga: %s returned %d results, want %d", e.Op, e.Got, e.Want)
}
