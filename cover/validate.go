// Package cover - validation shared by all engines.
//
// All checks run before any search:
//  1. Options ranges (steps, time limit, parallelism, policy).
//  2. Costs: length, sign, finiteness; nil expands to unit costs.
//  3. Budget: non-negative, not NaN (+Inf means unlimited).
//
// Universe and set membership are validated by membership.Build.
package cover

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvcover/membership"
)

// validateOptions rejects negative budgets and unknown policies.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: MaxSteps %d < 0", ErrInvalidOption, o.MaxSteps)
	}
	if o.TimeLimit < 0 {
		return fmt.Errorf("%w: TimeLimit %v < 0", ErrInvalidOption, o.TimeLimit)
	}
	if o.Parallelism < 0 {
		return fmt.Errorf("%w: Parallelism %d < 0", ErrInvalidOption, o.Parallelism)
	}
	switch o.BudgetPolicy {
	case StopAtBudget, SkipOverBudget:
		// ok
	default:
		return fmt.Errorf("%w: BudgetPolicy %d", ErrInvalidOption, o.BudgetPolicy)
	}

	return nil
}

// resolveCosts validates costs against m sets. A nil slice yields unit costs.
// The returned slice is never the caller's, so engines may index it freely.
//
// Complexity: O(M).
func resolveCosts(costs []float64, m int) ([]float64, error) {
	if costs == nil {
		return lo.Times(m, func(int) float64 { return 1 }), nil
	}
	if len(costs) != m {
		return nil, &membership.InputError{
			Field:  "costs",
			Index:  -1,
			Detail: fmt.Sprintf("got %d costs for %d sets", len(costs), m),
			Err:    ErrCostLength,
		}
	}

	var (
		i int
		c float64
	)
	for i, c = range costs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, &membership.InputError{Field: "costs", Index: i, Detail: fmt.Sprint(c), Err: ErrInvalidCost}
		}
		if c < 0 {
			return nil, &membership.InputError{Field: "costs", Index: i, Detail: fmt.Sprint(c), Err: ErrNegativeCost}
		}
	}

	return append([]float64(nil), costs...), nil
}

// validateBudget accepts any budget ≥ 0, including +Inf.
func validateBudget(budget float64) error {
	if math.IsNaN(budget) || budget < 0 {
		return &membership.InputError{Field: "budget", Index: -1, Detail: fmt.Sprint(budget), Err: ErrInvalidBudget}
	}

	return nil
}
