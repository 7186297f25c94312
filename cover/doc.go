// Package cover solves three covering problems over a Universe of elements
// and a collection of Candidate Sets.
//
// What:
//
//   - ExactCover: a disjoint partition of the universe, found by depth-first
//     backtracking over bitsets (Algorithm X in spirit, without dancing links).
//   - Complexity: exponential worst case; MRV branching keeps it practical.
//   - Budgets: WithMaxSteps, WithTimeLimit, WithContext → ErrSearchInconclusive.
//   - WithParallelism explores root branches concurrently, same answer.
//   - ExactCoverAll: the same search, enumerating up to a limit of covers.
//   - SetCover: greedy weighted set cover, overlaps allowed.
//   - Complexity: O(P) per iteration, at most min(N, M) iterations.
//   - Cost ≤ H(k)·OPT with k the largest set size.
//   - MaxCover: greedy coverage under a cost budget; partial results are
//     successful outcomes and ErrInfeasible is never returned.
//   - Solve: dispatch a Problem to one of the engines by Algorithm.
//
// All engines are generic over comparable element types, keep no state
// between calls, and are safe to call concurrently. Ties are broken by the
// lowest index, so identical inputs always give identical selections.
//
// Errors:
//
//   - ErrInvalidInput          umbrella for every *membership.InputError:
//     ErrDuplicateElement, ErrUnknownElement, ErrCostLength,
//     ErrNegativeCost, ErrInvalidCost, ErrInvalidBudget
//   - ErrInfeasible            no cover exists (exact and set cover)
//   - ErrSearchInconclusive    a budget or the context ended the search
//   - ErrInvalidOption         out-of-range option value
//   - ErrUnsupportedAlgorithm  unknown Algorithm passed to Solve
//
// Example:
//
//	res, err := cover.SetCover(
//		[]int{1, 2, 3, 4, 5},
//		[][]int{{1, 2, 3}, {2, 4}, {3, 4, 5}, {5}},
//		nil,
//	)
//	// res.Sets == []int{0, 2}
//
// Debug traces go to a logrus logger (WithLogger); per-solve metrics go to an
// Observer (WithObserver), see lvcover/metrics.
package cover
