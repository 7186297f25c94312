package cover

import (
	"errors"

	"github.com/katalvlaran/lvcover/membership"
)

// Input sentinels. Every input failure is returned as *membership.InputError,
// which matches ErrInvalidInput and its specific sentinel via errors.Is.
var (
	// ErrInvalidInput is the umbrella sentinel for malformed input.
	ErrInvalidInput = membership.ErrInvalidInput

	// ErrDuplicateElement indicates a repeated universe element.
	ErrDuplicateElement = membership.ErrDuplicateElement

	// ErrUnknownElement indicates a set element outside the universe.
	ErrUnknownElement = membership.ErrUnknownElement

	// ErrCostLength indicates len(costs) != len(sets) for a non-nil costs slice.
	ErrCostLength = errors.New("cover: costs length does not match sets")

	// ErrNegativeCost indicates a cost below zero.
	ErrNegativeCost = errors.New("cover: negative cost")

	// ErrInvalidCost indicates a NaN or infinite cost.
	ErrInvalidCost = errors.New("cover: cost is NaN or infinite")

	// ErrInvalidBudget indicates a negative or NaN budget.
	ErrInvalidBudget = errors.New("cover: invalid budget")
)

// Outcome and configuration sentinels.
var (
	// ErrInfeasible reports that no cover satisfying the algorithm's contract
	// exists. It is an expected outcome, distinct from an empty success (which
	// only happens on an empty universe).
	ErrInfeasible = errors.New("cover: infeasible")

	// ErrSearchInconclusive reports that a step budget, time limit or context
	// ended the search before a definitive answer. Context errors are wrapped
	// alongside it, so errors.Is(err, context.Canceled) also holds when relevant.
	ErrSearchInconclusive = errors.New("cover: search inconclusive")

	// ErrInvalidOption indicates an out-of-range option value.
	ErrInvalidOption = errors.New("cover: invalid option")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")
)

// Algorithm selects a covering engine.
type Algorithm int

const (
	// ExactCoverAlgo: disjoint partition by backtracking search.
	ExactCoverAlgo Algorithm = iota
	// GreedySetCover: weighted set cover by greedy cost/coverage ratio.
	GreedySetCover
	// BudgetMaxCover: greedy maximum coverage under a cost budget.
	BudgetMaxCover
)

// String returns the metric/log label of a.
func (a Algorithm) String() string {
	switch a {
	case ExactCoverAlgo:
		return "exact"
	case GreedySetCover:
		return "set_cover"
	case BudgetMaxCover:
		return "max_cover"
	default:
		return "unknown"
	}
}

// Status classifies a Result.
type Status int

const (
	// StatusSolved: the universe is fully covered under the algorithm's contract.
	StatusSolved Status = iota
	// StatusPartial: max coverage stopped before covering the whole universe.
	StatusPartial
	// StatusInfeasible: no cover exists (returned with ErrInfeasible).
	StatusInfeasible
	// StatusInconclusive: a budget ran out (returned with ErrSearchInconclusive).
	StatusInconclusive
)

// String returns the metric/log label of s.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusPartial:
		return "partial"
	case StatusInfeasible:
		return "infeasible"
	case StatusInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one solve call.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Status of the outcome. It agrees with the returned error.
	Status Status

	// Sets lists selected set indices in selection order. It is empty
	// (non-nil) for a successful solve of an empty universe and nil when the
	// solve failed.
	Sets []int

	// Cost is the total cost of Sets.
	Cost float64

	// Covered is the number of universe elements covered by Sets.
	Covered int

	// Elements is the universe size N.
	Elements int

	// Steps counts search nodes (exact cover) or greedy iterations.
	// It never exceeds a MaxSteps budget.
	Steps int
}

// Coverage returns Covered/Elements, or 1 for an empty universe.
func (r Result) Coverage() float64 {
	if r.Elements == 0 {
		return 1
	}

	return float64(r.Covered) / float64(r.Elements)
}

// Complete reports whether every universe element is covered.
func (r Result) Complete() bool { return r.Covered == r.Elements && r.Sets != nil }
