// Package cover_test - shared helpers: deterministic instance generators,
// brute-force oracles, and result checks.
package cover_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/membership"
)

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(20240601)

	// bruteMaxSets bounds the instance size handed to brute-force oracles.
	bruteMaxSets = 12
)

// iota0 returns the universe 0..n-1.
func iota0(n int) []int { return lo.Range(n) }

// randomInstance draws m sets over 0..n-1, each element kept with probability p,
// and costs in [1, 5]. Some sets may be empty.
func randomInstance(rng *rand.Rand, n, m int, p float64) ([]int, [][]int, []float64) {
	var (
		universe = iota0(n)
		sets     = make([][]int, m)
		costs    = make([]float64, m)
		i, j     int
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if rng.Float64() < p {
				sets[i] = append(sets[i], j)
			}
		}
		costs[i] = float64(1 + rng.Intn(5))
	}

	return universe, sets, costs
}

// plantedPartition splits 0..n-1 into random disjoint blocks, then appends
// noise random sets, and shuffles the collection. An exact cover always exists.
func plantedPartition(rng *rand.Rand, n, noise int) ([]int, [][]int) {
	var (
		universe = iota0(n)
		perm     = rng.Perm(n)
		sets     [][]int
		block    []int
		k        int
	)
	for _, k = range perm {
		block = append(block, k)
		if rng.Intn(3) == 0 {
			sets = append(sets, block)
			block = nil
		}
	}
	if len(block) > 0 {
		sets = append(sets, block)
	}
	_, extra, _ := randomInstance(rng, n, noise, 0.3)
	sets = append(sets, extra...)
	rng.Shuffle(len(sets), func(a, b int) { sets[a], sets[b] = sets[b], sets[a] })

	return universe, sets
}

// bruteForceOptimum returns the minimum total cost of any set cover, or +Inf.
// len(sets) must not exceed bruteMaxSets.
func bruteForceOptimum(t *testing.T, universe []int, sets [][]int, costs []float64) float64 {
	t.Helper()
	require.LessOrEqual(t, len(sets), bruteMaxSets)
	x, err := membership.Build(universe, sets)
	require.NoError(t, err)

	best := math.Inf(1)
	for mask := 0; mask < 1<<len(sets); mask++ {
		var (
			picked []int
			cost   float64
		)
		for i := range sets {
			if mask&(1<<i) != 0 {
				picked = append(picked, i)
				cost += costs[i]
			}
		}
		if cost >= best {
			continue
		}
		u, err := x.Union(picked)
		require.NoError(t, err)
		if int(u.Count()) == len(universe) {
			best = cost
		}
	}

	return best
}

// bruteForceHasExact reports whether some subcollection partitions universe.
func bruteForceHasExact(t *testing.T, universe []int, sets [][]int) bool {
	t.Helper()
	require.LessOrEqual(t, len(sets), bruteMaxSets)
	x, err := membership.Build(universe, sets)
	require.NoError(t, err)

	for mask := 0; mask < 1<<len(sets); mask++ {
		var picked []int
		for i := range sets {
			if mask&(1<<i) != 0 {
				picked = append(picked, i)
			}
		}
		if isPartition(t, x, picked) {
			return true
		}
	}

	return false
}

// isPartition reports whether picked sets are disjoint and cover the universe.
func isPartition(t *testing.T, x *membership.Matrix, picked []int) bool {
	t.Helper()
	ok, err := x.Disjoint(picked)
	require.NoError(t, err)
	if !ok {
		return false
	}

	return unionSize(t, x, picked) == x.Elements()
}

// unionSize returns |∪ picked|.
func unionSize(t *testing.T, x *membership.Matrix, picked []int) int {
	t.Helper()
	u, err := x.Union(picked)
	require.NoError(t, err)

	return int(u.Count())
}

// mustMatrix builds the matrix or fails the test.
func mustMatrix(t *testing.T, universe []int, sets [][]int) *membership.Matrix {
	t.Helper()
	x, err := membership.Build(universe, sets)
	require.NoError(t, err)

	return x
}

// harmonic returns H(k) = 1 + 1/2 + … + 1/k.
func harmonic(k int) float64 {
	return lo.SumBy(lo.RangeFrom(1, k), func(i int) float64 { return 1 / float64(i) })
}

// totalCost sums costs over picked.
func totalCost(picked []int, costs []float64) float64 {
	return lo.SumBy(picked, func(i int) float64 { return costs[i] })
}
