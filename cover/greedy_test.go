package cover_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/cover"
)

func TestSetCover_GreedyOrder(t *testing.T) {
	universe := []int{1, 2, 3, 4, 5}
	sets := [][]int{{1, 2, 3}, {2, 4}, {3, 4, 5}, {5}}

	res, err := cover.SetCover(universe, sets, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res.Sets)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, 5, res.Covered)
	assert.Equal(t, cover.StatusSolved, res.Status)
	assert.Equal(t, 2, res.Steps)
}

func TestSetCover_CostsChangeChoice(t *testing.T) {
	// The big set is too expensive per element: 10/3 > 1/1.
	universe := []int{1, 2, 3}
	sets := [][]int{{1, 2, 3}, {1}, {2}, {3}}

	res, err := cover.SetCover(universe, sets, []float64{10, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Sets)
	assert.Equal(t, 3.0, res.Cost)
}

func TestSetCover_RatioTieBreaksToLowestIndex(t *testing.T) {
	// 2/2 == 1/1 == 3/3: every candidate scores 1.
	universe := []int{1, 2, 3, 4, 5, 6}
	sets := [][]int{{4, 5, 6}, {1, 2}, {3}}

	res, err := cover.SetCover(universe, sets, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Sets)
}

func TestSetCover_ZeroCostSetsFirst(t *testing.T) {
	universe := []int{1, 2, 3}
	sets := [][]int{{1, 2, 3}, {1}, {2, 3}}

	res, err := cover.SetCover(universe, sets, []float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Sets)
	assert.Equal(t, 0.0, res.Cost)
}

func TestSetCover_Infeasible(t *testing.T) {
	res, err := cover.SetCover([]int{1, 2, 3}, [][]int{{1}, {2}}, nil)
	assert.ErrorIs(t, err, cover.ErrInfeasible)
	assert.Equal(t, cover.StatusInfeasible, res.Status)
	assert.Nil(t, res.Sets)

	_, err = cover.SetCover([]int{1}, nil, nil)
	assert.ErrorIs(t, err, cover.ErrInfeasible)
}

func TestSetCover_EmptyUniverse(t *testing.T) {
	res, err := cover.SetCover([]int{}, [][]int{{}}, nil)
	require.NoError(t, err)
	assert.NotNil(t, res.Sets)
	assert.Empty(t, res.Sets)
	assert.Equal(t, 0, res.Steps)
}

func TestSetCover_OverlapsAllowed(t *testing.T) {
	universe := []int{1, 2, 3}
	sets := [][]int{{1, 2}, {2, 3}}

	res, err := cover.SetCover(universe, sets, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Sets)
}

func TestSetCover_CostErrors(t *testing.T) {
	universe := []int{1, 2}
	sets := [][]int{{1}, {2}}

	cases := []struct {
		name  string
		costs []float64
		want  error
	}{
		{"short", []float64{1}, cover.ErrCostLength},
		{"negative", []float64{1, -0.5}, cover.ErrNegativeCost},
		{"nan", []float64{math.NaN(), 1}, cover.ErrInvalidCost},
		{"inf", []float64{1, math.Inf(1)}, cover.ErrInvalidCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cover.SetCover(universe, sets, tc.costs)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, cover.ErrInvalidInput)
		})
	}
}

func TestSetCover_DoesNotMutateCosts(t *testing.T) {
	costs := []float64{2, 1}
	_, err := cover.SetCover([]int{1}, [][]int{{1}, {1}}, costs)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, costs)
}

func TestSetCover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := cover.SetCover([]int{1}, [][]int{{1}}, nil, cover.WithContext(ctx))
	assert.ErrorIs(t, err, cover.ErrSearchInconclusive)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, cover.StatusInconclusive, res.Status)
}

func TestSetCover_ApproximationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 3))
	for trial := 0; trial < 150; trial++ {
		universe, sets, costs := randomInstance(rng, 8, 4+rng.Intn(bruteMaxSets-3), 0.4)
		x := mustMatrix(t, universe, sets)
		opt := bruteForceOptimum(t, universe, sets, costs)

		res, err := cover.SetCover(universe, sets, costs)
		if math.IsInf(opt, 1) {
			assert.ErrorIs(t, err, cover.ErrInfeasible, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, len(universe), unionSize(t, x, res.Sets), "trial %d", trial)
		assert.InDelta(t, totalCost(res.Sets, costs), res.Cost, 1e-9)
		assert.LessOrEqual(t, res.Cost, harmonic(x.MaxRowSize())*opt+1e-9,
			"trial %d: greedy %v, opt %v, k %d", trial, res.Cost, opt, x.MaxRowSize())
	}
}

func TestSetCover_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 4))
	universe, sets, costs := randomInstance(rng, 40, 60, 0.15)
	first, err := cover.SetCover(universe, sets, costs)
	if err != nil {
		require.ErrorIs(t, err, cover.ErrInfeasible)
	}
	for i := 0; i < 5; i++ {
		again, err2 := cover.SetCover(universe, sets, costs)
		assert.Equal(t, err, err2)
		assert.Equal(t, first.Sets, again.Sets)
	}
}
