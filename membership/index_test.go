package membership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcover/membership"
)

type point struct{ X, Y int }

func TestIndex_Positions(t *testing.T) {
	universe := []point{{0, 0}, {1, 0}, {0, 1}}
	idx, err := membership.NewIndex(universe)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())

	for want, p := range universe {
		got, ok := idx.Position(p)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, p, idx.Element(got))
	}
	_, ok := idx.Position(point{5, 5})
	assert.False(t, ok)
}

func TestIndex_Duplicate(t *testing.T) {
	_, err := membership.NewIndex([]string{"x", "y", "y"})
	assert.ErrorIs(t, err, membership.ErrDuplicateElement)
	assert.Contains(t, err.Error(), "universe[2]")
	assert.Contains(t, err.Error(), "already at position 1")
}
