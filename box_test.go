package aabbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoxRejectsMismatchedLengths(t *testing.T) {
	_, err := NewBox([]float64{0, 0}, []float64{1, 1, 1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewBoxRejectsOneDimension(t *testing.T) {
	_, err := NewBox([]float64{0}, []float64{1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewBoxRejectsInvertedBounds(t *testing.T) {
	_, err := NewBox([]float64{0, 2}, []float64{1, 1})
	require.ErrorIs(t, err, ErrInvertedBounds)
}

func TestNewBoxChecksArgumentsNotReceiver(t *testing.T) {
	// Regression: the source this tree is descended from checked the
	// length of the freshly constructed (still empty) receiver rather
	// than the arguments, making the dimension check vacuous. A
	// mismatched pair must still be rejected.
	_, err := NewBox([]float64{0, 0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestBoxSurfaceArea2D(t *testing.T) {
	b, err := NewBox([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2*(3.0+4.0), b.SurfaceArea())
}

func TestBoxSurfaceArea3D(t *testing.T) {
	b, err := NewBox([]float64{0, 0, 0}, []float64{2, 3, 4})
	require.NoError(t, err)
	// 2*(2*3 + 2*4 + 3*4)
	assert.Equal(t, 2*(2.0*3.0+2.0*4.0+3.0*4.0), b.SurfaceArea())
}

func TestBoxCentre(t *testing.T) {
	b, err := NewBox([]float64{0, 0}, []float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, b.Centre())
}

func TestBoxZeroExtentIsLegal(t *testing.T) {
	b, err := NewBox([]float64{1, 1}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, float64(0), b.SurfaceArea())
}

func TestMergeIsComponentwiseMinMax(t *testing.T) {
	a, err := NewBox([]float64{0, 5}, []float64{2, 6})
	require.NoError(t, err)
	b, err := NewBox([]float64{-1, 4}, []float64{1, 10})
	require.NoError(t, err)

	m := merge(a, b)
	assert.Equal(t, []float64{-1, 4}, m.Lower)
	assert.Equal(t, []float64{2, 10}, m.Upper)
}

func TestMergeIsBitIdenticalAcrossRepeatedCalls(t *testing.T) {
	a, _ := NewBox([]float64{0, 0}, []float64{1, 1})
	b, _ := NewBox([]float64{0.1, 0.2}, []float64{1.3, 1.4})

	m1 := merge(a, b)
	m2 := merge(a, b)
	assert.True(t, equalBits(m1, m2))
}

func TestBoxContains(t *testing.T) {
	outer, _ := NewBox([]float64{0, 0}, []float64{10, 10})
	inner, _ := NewBox([]float64{1, 1}, []float64{2, 2})
	notInner, _ := NewBox([]float64{-1, 1}, []float64{2, 2})

	assert.True(t, outer.Contains(inner))
	assert.False(t, outer.Contains(notInner))
}

func TestBoxOverlapsTouchPolicy(t *testing.T) {
	a, _ := NewBox([]float64{0, 0}, []float64{1, 1})
	touching, _ := NewBox([]float64{1, 0}, []float64{2, 1})

	assert.True(t, a.Overlaps(touching, true))
	assert.False(t, a.Overlaps(touching, false))
}

func TestBoxFatten(t *testing.T) {
	b, _ := NewBox([]float64{0, 0}, []float64{1, 2})
	fat := b.fatten(0.1)

	assert.InDelta(t, -0.1, fat.Lower[0], 1e-9)
	assert.InDelta(t, 1.1, fat.Upper[0], 1e-9)
	assert.InDelta(t, -0.2, fat.Lower[1], 1e-9)
	assert.InDelta(t, 2.2, fat.Upper[1], 1e-9)
}
