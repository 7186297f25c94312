// Package cover - exact cover by depth-first backtracking over bitsets.
//
// The search keeps an explicit stack with one frame per depth. A frame owns
// its Active State, the candidate rows of its chosen column, and a cursor to
// the next untried candidate:
//
//  1. No active column left → the path is an exact cover.
//  2. Some active column has no active row → dead end, no frame pushed.
//  3. Otherwise the active column with the fewest active rows is chosen
//     (lowest index on ties) and its rows become the frame's candidates.
//  4. Candidates are tried in ascending order on a fresh State from
//     State.Select; exhausting them pops the frame.
//
// Budgets: every expanded node is one step. MaxSteps is checked on every step;
// the deadline and the context on the first step and every 1024 steps after.
package cover

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvcover/membership"
)

// checkEvery is the step mask for deadline and context checks.
// Checks fire when local&checkEvery == 1, so the first step always checks.
const checkEvery = 1023

// searchOutcome is the terminal state of one search run.
type searchOutcome int

const (
	outcomeExhausted    searchOutcome = iota // whole subtree explored
	outcomeStopped                           // emit asked to stop
	outcomeInconclusive                      // budget or context ended the run
)

// frame is one level of the explicit search stack.
type frame struct {
	state membership.State
	cands []int
	next  int
}

// exactEngine holds the search configuration and the shared step budget.
// Each run owns its own stack; only the step counter is shared between forks.
type exactEngine struct {
	x *membership.Matrix

	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	maxSteps    int64
	steps       *atomic.Int64 // shared across forks
	local       int           // nodes expanded by this engine, drives sparse checks

	log logrus.FieldLogger

	// cause records why a run became inconclusive.
	cause error
}

// newExactEngine prepares an engine over x using o's budgets.
func newExactEngine(x *membership.Matrix, o Options) *exactEngine {
	e := &exactEngine{
		x:        x,
		ctx:      o.Ctx,
		maxSteps: int64(o.MaxSteps),
		steps:    new(atomic.Int64),
		log:      o.Logger,
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// fork returns an engine sharing x, deadline and step counter, bound to ctx.
func (e *exactEngine) fork(ctx context.Context) *exactEngine {
	return &exactEngine{
		x:           e.x,
		ctx:         ctx,
		useDeadline: e.useDeadline,
		deadline:    e.deadline,
		maxSteps:    e.maxSteps,
		steps:       e.steps,
		log:         e.log,
	}
}

// step accounts one expanded node and reports whether the run must end.
func (e *exactEngine) step() bool {
	n := e.steps.Add(1)
	if e.maxSteps > 0 && n > e.maxSteps {
		e.cause = fmt.Errorf("%w: step budget %d exhausted", ErrSearchInconclusive, e.maxSteps)

		return true
	}
	e.local++
	if e.local&checkEvery != 1 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.cause = fmt.Errorf("%w: %w", ErrSearchInconclusive, err)

		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.cause = fmt.Errorf("%w: time limit exceeded", ErrSearchInconclusive)

		return true
	}

	return false
}

// chooseColumn applies the minimum-remaining-values rule to s.
// It returns col == -1 when s is solved, and count == 0 on a dead end.
//
// Complexity: O(Σ_{active j} |column j|).
func (e *exactEngine) chooseColumn(s membership.State) (col int, count int) {
	var (
		j, c int
		best = -1
	)
	col = -1
	for _, j = range s.ActiveColumns() {
		c = s.CoverCount(e.x, j)
		if c == 0 {
			return j, 0
		}
		if best < 0 || c < best {
			best, col = c, j
		}
	}

	return col, best
}

// run searches the subtree rooted at s. prefix holds rows already chosen
// above s; every discovered cover is passed to emit as prefix+path (a fresh
// slice). emit returns false to stop the run.
func (e *exactEngine) run(s membership.State, prefix []int, emit func([]int) bool) searchOutcome {
	var (
		stack []frame
		path  = append([]int(nil), prefix...)
		base  = len(prefix)
	)

	// expand turns a reached State into a frame, a cover, or nothing.
	// It returns false when the run must end.
	expand := func(st membership.State, depth int) (cont bool, stopped bool) {
		if e.step() {
			return false, false
		}
		if st.Solved() {
			found := make([]int, base+depth)
			copy(found, path)
			if !emit(found) {
				return false, true
			}

			return true, false
		}
		col, count := e.chooseColumn(st)
		if count == 0 {
			return true, false // dead end
		}
		stack = append(stack, frame{state: st, cands: st.Candidates(e.x, col)})

		return true, false
	}

	if cont, stopped := expand(s, 0); !cont {
		if stopped {
			return outcomeStopped
		}

		return outcomeInconclusive
	}

	var (
		top   *frame
		depth int
		r     int
	)
	for len(stack) > 0 {
		depth = len(stack) - 1
		top = &stack[depth]
		if top.next == len(top.cands) {
			stack = stack[:depth] // backtrack
			continue
		}
		r = top.cands[top.next]
		top.next++

		path = append(path[:base+depth], r)
		child := top.state.Select(e.x, r)
		if cont, stopped := expand(child, depth+1); !cont {
			if stopped {
				return outcomeStopped
			}

			return outcomeInconclusive
		}
	}

	return outcomeExhausted
}

// ExactCover returns set indices forming a partition of universe: pairwise
// disjoint sets whose union is universe.
//
// The returned Result lists the first cover found in search order (root
// choice first). It is not guaranteed to use the fewest sets. Sets carry unit
// cost here, so Result.Cost is the number of selected sets.
//
// Errors:
//   - *membership.InputError (ErrInvalidInput) for a duplicate universe
//     element or a set referencing an unknown element.
//   - ErrInfeasible when no exact cover exists.
//   - ErrSearchInconclusive when MaxSteps, TimeLimit or Ctx ended the search.
//   - ErrInvalidOption for out-of-range options.
//
// Complexity: exponential in the worst case; the MRV rule keeps the branching
// factor at the minimum number of candidates per level. Each node costs
// O(N/8 + M/8) for the state copy plus the column scan.
func ExactCover[T comparable](universe []T, sets [][]T, opts ...Option) (Result, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	x, err := membership.Build(universe, sets)
	if err != nil {
		return Result{}, err
	}

	began := time.Now()
	e := newExactEngine(x, o)

	var sol []int
	var outcome searchOutcome
	if o.Parallelism > 1 {
		sol, outcome = e.firstParallel(o.Parallelism)
	} else {
		outcome = e.run(membership.NewState(x), nil, func(c []int) bool {
			sol = c

			return false
		})
	}

	res := Result{Algorithm: ExactCoverAlgo, Elements: x.Elements(), Steps: e.reportedSteps()}
	switch {
	case sol != nil:
		res.Status = StatusSolved
		res.Sets = sol
		res.Covered = x.Elements()
		res.Cost = float64(len(sol))
		err = nil
	case outcome == outcomeInconclusive:
		res.Status = StatusInconclusive
		err = e.inconclusiveCause()
	default:
		res.Status = StatusInfeasible
		err = ErrInfeasible
	}
	finish(o, res, began)

	return res, err
}

// ExactCoverAll enumerates up to limit exact covers (limit ≤ 0: all of them)
// in search order. Parallelism is ignored: enumeration is sequential.
//
// When a budget ends the search after some covers were found, those covers
// are returned together with ErrSearchInconclusive.
//
// Errors: as ExactCover.
func ExactCoverAll[T comparable](universe []T, sets [][]T, limit int, opts ...Option) ([][]int, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	x, err := membership.Build(universe, sets)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	e := newExactEngine(x, o)

	var all [][]int
	outcome := e.run(membership.NewState(x), nil, func(c []int) bool {
		all = append(all, c)

		return limit <= 0 || len(all) < limit
	})

	res := Result{Algorithm: ExactCoverAlgo, Elements: x.Elements(), Steps: e.reportedSteps()}
	switch {
	case outcome == outcomeInconclusive:
		res.Status = StatusInconclusive
		err = e.inconclusiveCause()
	case len(all) == 0:
		res.Status = StatusInfeasible
		err = ErrInfeasible
	default:
		res.Status = StatusSolved
		res.Covered = x.Elements()
		err = nil
	}
	if len(all) > 0 {
		res.Sets = all[0]
		res.Cost = float64(len(all[0]))
	}
	finish(o, res, began)

	return all, err
}

// reportedSteps returns the nodes expanded, capped at MaxSteps. Forks may
// count a few nodes past the budget before they observe it.
func (e *exactEngine) reportedSteps() int {
	n := e.steps.Load()
	if e.maxSteps > 0 && n > e.maxSteps {
		n = e.maxSteps
	}

	return int(n)
}

// inconclusiveCause returns the recorded cause, falling back to the bare sentinel.
func (e *exactEngine) inconclusiveCause() error {
	if e.cause != nil && errors.Is(e.cause, ErrSearchInconclusive) {
		return e.cause
	}

	return ErrSearchInconclusive
}
