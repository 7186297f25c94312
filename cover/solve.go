// Package cover - unified dispatcher for the covering engines.
package cover

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Problem bundles the inputs of one covering instance.
type Problem[T comparable] struct {
	// Universe lists the elements to cover, without duplicates.
	Universe []T

	// Sets lists the candidate sets; their indices are positions in this slice.
	Sets [][]T

	// Costs holds one cost per set; nil means every set costs 1.
	// Ignored by ExactCoverAlgo.
	Costs []float64

	// Budget caps total cost for BudgetMaxCover. The zero value admits only
	// zero-cost sets; see Unbounded. Ignored by the other engines.
	Budget float64
}

// Unbounded returns a Problem whose Budget is +Inf.
func Unbounded[T comparable](universe []T, sets [][]T, costs []float64) Problem[T] {
	return Problem[T]{Universe: universe, Sets: sets, Costs: costs, Budget: math.Inf(1)}
}

// Solve routes p to the engine selected by algo.
//
// Errors: those of ExactCover, SetCover and MaxCover, plus
// ErrUnsupportedAlgorithm for an unknown algo.
func Solve[T comparable](p Problem[T], algo Algorithm, opts ...Option) (Result, error) {
	switch algo {
	case ExactCoverAlgo:
		return ExactCover(p.Universe, p.Sets, opts...)
	case GreedySetCover:
		return SetCover(p.Universe, p.Sets, p.Costs, opts...)
	case BudgetMaxCover:
		return MaxCover(p.Universe, p.Sets, p.Budget, p.Costs, opts...)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// finish reports a completed solve to the logger and the observer.
func finish(o Options, res Result, began time.Time) {
	d := time.Since(began)
	o.Logger.WithFields(logrus.Fields{
		"algorithm": res.Algorithm.String(),
		"status":    res.Status.String(),
		"elements":  res.Elements,
		"selected":  len(res.Sets),
		"steps":     res.Steps,
		"elapsed":   d,
	}).Debug("cover: solve finished")
	if o.Observer != nil {
		o.Observer.ObserveSolve(res.Algorithm, res.Status, res.Steps, d)
	}
}
