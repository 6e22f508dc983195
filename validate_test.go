package aabbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassesOnEmptyTree(t *testing.T) {
	tr, _ := New[float64](2, 0.1, 16, true)
	require.NoError(t, tr.Validate())
}

func TestValidateCatchesBoxMismatch(t *testing.T) {
	tr, _ := New[float64](2, 0.1, 16, true)
	require.NoError(t, tr.Insert(1, []float64{0, 0}, []float64{1, 1}))
	require.NoError(t, tr.Insert(2, []float64{5, 5}, []float64{6, 6}))

	// Corrupt the root's cached box directly to simulate a refit bug.
	root := tr.arena.get(tr.root)
	root.box.Upper[0] += 100

	err := tr.Validate()
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestValidateCatchesHeightMismatch(t *testing.T) {
	tr, _ := New[float64](2, 0.1, 16, true)
	require.NoError(t, tr.Insert(1, []float64{0, 0}, []float64{1, 1}))
	require.NoError(t, tr.Insert(2, []float64{5, 5}, []float64{6, 6}))

	tr.arena.get(tr.root).height = 99

	err := tr.Validate()
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestComputeHeightMatchesStoredHeight(t *testing.T) {
	tr, _ := New[float64](2, 0.01, 16, true)
	rng := newDeterministicRNG(42)
	for i := uint64(1); i <= 50; i++ {
		x := rng.next() * 30
		y := rng.next() * 30
		require.NoError(t, tr.Insert(i, []float64{x, y}, []float64{x + 1, y + 1}))
	}

	assert.Equal(t, tr.GetHeight(), tr.computeHeight(tr.root))
	require.NoError(t, tr.Validate())
}

func TestComputeSurfaceAreaRatioIsZeroForEmptyTree(t *testing.T) {
	tr, _ := New[float64](2, 0.1, 16, true)
	assert.Equal(t, float64(0), tr.ComputeSurfaceAreaRatio())
}

func TestComputeSurfaceAreaRatioIsAtLeastOneForNonEmptyTree(t *testing.T) {
	tr, _ := New[float64](2, 0.1, 16, true)
	require.NoError(t, tr.Insert(1, []float64{0, 0}, []float64{1, 1}))
	require.NoError(t, tr.Insert(2, []float64{5, 5}, []float64{6, 6}))
	require.NoError(t, tr.Insert(3, []float64{10, 10}, []float64{11, 11}))

	assert.GreaterOrEqual(t, tr.ComputeSurfaceAreaRatio(), float64(1))
}
