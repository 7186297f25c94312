// Package cover - greedy weighted set cover and budgeted maximum coverage.
//
// Both engines repeat one step over the row view of the Membership Matrix:
// among sets that still cover an uncovered element, pick the one with the
// lowest cost / marginal-coverage ratio (lowest index on ties), then clear its
// elements from the uncovered vector. They differ only in the stopping rule.
//
// Guarantee (SetCover): total cost ≤ H(k)·OPT, k = largest set size,
// H(k) = 1 + 1/2 + … + 1/k. The result is an approximation, not an optimum.
package cover

import (
	"fmt"
	"time"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcover/membership"
)

// greedyState is the per-call scratch of the greedy engines.
type greedyState struct {
	x         *membership.Matrix
	costs     []float64
	uncovered bitfield.Bitlist // length N, set bit = still uncovered
	remaining int
	excluded  []bool // sets that may not be picked (SkipOverBudget)
	picked    []int
	spent     float64
}

// newGreedyState marks every universe element uncovered.
func newGreedyState(x *membership.Matrix, costs []float64) *greedyState {
	g := &greedyState{
		x:         x,
		costs:     costs,
		uncovered: bitfield.NewBitlist(uint64(x.Elements())),
		remaining: x.Elements(),
		excluded:  make([]bool, x.Sets()),
		picked:    []int{},
	}
	for j := 0; j < x.Elements(); j++ {
		g.uncovered.SetBitAt(uint64(j), true)
	}

	return g
}

// marginal returns how many still-uncovered elements set i would cover.
//
// Complexity: O(|set i|).
func (g *greedyState) marginal(i int) int {
	var (
		c, j int
	)
	for _, j = range g.x.RowMembers(i) {
		if g.uncovered.BitAt(uint64(j)) {
			c++
		}
	}

	return c
}

// pickBest returns the set with the lowest cost/marginal ratio among
// non-excluded sets with positive marginal coverage, and that coverage.
// It returns (-1, 0) when no set adds coverage.
//
// Complexity: O(P) over all membership pairs.
func (g *greedyState) pickBest() (best int, gain int) {
	var (
		i, c      int
		score     float64
		bestScore float64
	)
	best = -1
	for i = 0; i < g.x.Sets(); i++ {
		if g.excluded[i] {
			continue
		}
		if c = g.marginal(i); c == 0 {
			continue
		}
		score = g.costs[i] / float64(c)
		// Strict < keeps the lowest index on equal scores.
		if best < 0 || score < bestScore {
			best, gain, bestScore = i, c, score
		}
	}

	return best, gain
}

// take adds set i to the selection and clears its elements.
func (g *greedyState) take(i int, gain int) {
	var j int
	for _, j = range g.x.RowMembers(i) {
		g.uncovered.SetBitAt(uint64(j), false)
	}
	g.remaining -= gain
	g.picked = append(g.picked, i)
	g.spent += g.costs[i]
}

// result packages the greedy selection.
func (g *greedyState) result(algo Algorithm, steps int) Result {
	return Result{
		Algorithm: algo,
		Sets:      g.picked,
		Cost:      lo.SumBy(g.picked, func(i int) float64 { return g.costs[i] }),
		Covered:   g.x.Elements() - g.remaining,
		Elements:  g.x.Elements(),
		Steps:     steps,
	}
}

// SetCover selects sets whose union is universe while greedily minimizing
// total cost. costs may be nil (every set costs 1); otherwise it has one
// non-negative finite entry per set.
//
// Each iteration picks the set with the lowest cost divided by the number of
// still-uncovered elements it contains, lowest index first on ties. A picked
// set never scores again, since it has no uncovered elements left.
//
// Errors:
//   - *membership.InputError (ErrInvalidInput) for bad universe, sets or costs.
//   - ErrInfeasible when the union of all sets misses part of universe.
//   - ErrSearchInconclusive wrapping Ctx.Err() when Ctx is done between iterations.
//
// Complexity: O(P) per iteration, at most min(N, M) iterations.
func SetCover[T comparable](universe []T, sets [][]T, costs []float64, opts ...Option) (Result, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	x, err := membership.Build(universe, sets)
	if err != nil {
		return Result{}, err
	}
	unit, err := resolveCosts(costs, x.Sets())
	if err != nil {
		return Result{}, err
	}

	var (
		began = time.Now()
		g     = newGreedyState(x, unit)
		steps int
		best  int
		gain  int
	)
	for g.remaining > 0 {
		if err = o.Ctx.Err(); err != nil {
			res := Result{Algorithm: GreedySetCover, Status: StatusInconclusive, Elements: x.Elements(), Steps: steps}
			finish(o, res, began)

			return res, fmt.Errorf("%w: %w", ErrSearchInconclusive, err)
		}
		steps++
		if best, gain = g.pickBest(); best < 0 {
			res := Result{Algorithm: GreedySetCover, Status: StatusInfeasible, Elements: x.Elements(), Steps: steps}
			finish(o, res, began)

			return res, ErrInfeasible
		}
		g.take(best, gain)
		o.Logger.WithFields(logrus.Fields{
			"set":       best,
			"gain":      gain,
			"remaining": g.remaining,
		}).Debug("cover: greedy pick")
	}

	res := g.result(GreedySetCover, steps)
	res.Status = StatusSolved
	finish(o, res, began)

	return res, nil
}

// MaxCover greedily covers as much of universe as possible with total cost
// at most budget. It never reports ErrInfeasible: an empty or partial
// selection is a valid outcome, reported as StatusPartial.
//
// Before each pick is added, spent+cost is compared with budget. Under
// StopAtBudget (default) an unaffordable pick ends the selection; under
// SkipOverBudget it is excluded and the next best set is considered. Sets are
// atomic: they are never partially included. The loop also ends when the
// universe is covered or no set adds coverage.
//
// The comparison is exact, with no tolerance: spent is the float64 sum of the
// picked costs in pick order, so costs that only add up to budget in decimal
// (three picks of 0.1 against 0.3) stop one pick short.
//
// Errors:
//   - *membership.InputError (ErrInvalidInput) for bad universe, sets, costs
//     or a negative/NaN budget. budget = +Inf is allowed.
//   - ErrSearchInconclusive wrapping Ctx.Err(); the selection made so far is
//     still returned in the Result.
//
// Complexity: O(P) per iteration, at most M iterations.
func MaxCover[T comparable](universe []T, sets [][]T, budget float64, costs []float64, opts ...Option) (Result, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = validateBudget(budget); err != nil {
		return Result{}, err
	}
	x, err := membership.Build(universe, sets)
	if err != nil {
		return Result{}, err
	}
	unit, err := resolveCosts(costs, x.Sets())
	if err != nil {
		return Result{}, err
	}

	var (
		began = time.Now()
		g     = newGreedyState(x, unit)
		steps int
		best  int
		gain  int
	)
	for g.remaining > 0 {
		if err = o.Ctx.Err(); err != nil {
			res := g.result(BudgetMaxCover, steps)
			res.Status = StatusInconclusive
			finish(o, res, began)

			return res, fmt.Errorf("%w: %w", ErrSearchInconclusive, err)
		}
		steps++
		if best, gain = g.pickBest(); best < 0 {
			break // nothing adds coverage
		}
		if g.spent+unit[best] > budget {
			if o.BudgetPolicy == StopAtBudget {
				break
			}
			g.excluded[best] = true

			continue
		}
		g.take(best, gain)
	}

	res := g.result(BudgetMaxCover, steps)
	res.Status = StatusSolved
	if g.remaining > 0 {
		res.Status = StatusPartial
	}
	o.Logger.WithFields(logrus.Fields{
		"sets":   len(res.Sets),
		"spent":  res.Cost,
		"budget": budget,
	}).Debug("cover: max cover done")
	finish(o, res, began)

	return res, nil
}
