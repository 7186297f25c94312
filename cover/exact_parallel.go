package cover

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcover/membership"
)

// branchResult is the outcome of one root branch explored by firstParallel.
type branchResult struct {
	sol     []int
	outcome searchOutcome
	cause   error
}

// firstParallel explores the root column's candidate rows concurrently, at
// most p at a time, with first-success-wins cancellation.
//
// The answer matches the sequential search whenever no budget intervenes:
// branches are ranked by candidate order and the lowest-ranked success is
// returned. Finding a success at rank i cancels only the branches ranked
// above i. A branch ranked below the winner that ran out of budget makes the
// whole search inconclusive. The step budget is shared by all branches.
func (e *exactEngine) firstParallel(p int) ([]int, searchOutcome) {
	root := membership.NewState(e.x)
	if e.step() {
		return nil, outcomeInconclusive
	}
	if root.Solved() {
		return []int{}, outcomeStopped
	}
	col, count := e.chooseColumn(root)
	if count == 0 {
		return nil, outcomeExhausted
	}

	var (
		cands   = root.Candidates(e.x, col)
		results = make([]branchResult, len(cands))
		ctxs    = make([]context.Context, len(cands))
		cancels = make([]context.CancelFunc, len(cands))
		mu      sync.Mutex
		winner  = len(cands)
		g       errgroup.Group
		i       int
	)
	for i = range cands {
		ctxs[i], cancels[i] = context.WithCancel(e.ctx)
	}
	defer func() {
		for _, cancel := range cancels {
			cancel()
		}
	}()

	g.SetLimit(p)
	for i = range cands {
		rank, r := i, cands[i]
		g.Go(func() error {
			mu.Lock()
			skip := rank > winner
			mu.Unlock()
			if skip {
				results[rank] = branchResult{outcome: outcomeInconclusive}

				return nil
			}

			sub := e.fork(ctxs[rank])
			var sol []int
			outcome := sub.run(root.Select(e.x, r), []int{r}, func(c []int) bool {
				sol = c

				return false
			})
			results[rank] = branchResult{sol: sol, outcome: outcome, cause: sub.cause}
			if sol == nil {
				return nil
			}

			mu.Lock()
			if rank < winner {
				winner = rank
				for j := rank + 1; j < len(cands); j++ {
					cancels[j]()
				}
			}
			mu.Unlock()
			e.log.WithField("branch", rank).Debug("cover: parallel branch found a cover")

			return nil
		})
	}
	_ = g.Wait() // branches report through results, never through errors

	for i = range results {
		switch {
		case results[i].sol != nil:
			return results[i].sol, outcomeStopped
		case results[i].outcome == outcomeInconclusive:
			e.cause = results[i].cause

			return nil, outcomeInconclusive
		}
	}

	return nil, outcomeExhausted
}
