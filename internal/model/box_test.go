package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBox_Validation(t *testing.T) {
	b, err := NewBox(1, 2, 5, 6, 3.5)
	require.NoError(t, err)
	assert.Equal(t, Box{X1: 1, Y1: 2, X2: 5, Y2: 6, P: 3.5}, b)

	_, err = NewBox(5, 0, 1, 4, 0)
	assert.ErrorIs(t, err, ErrInvalidBox)

	_, err = NewBox(0, 5, 4, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidBox)

	// Degenerate boxes are legal sentinel values.
	z, err := NewBox(2, 2, 2, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.Area())
}

func TestBox_Area(t *testing.T) {
	b := Box{X1: 1, Y1: 1, X2: 4, Y2: 3}
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 2.0, b.Height())
	assert.Equal(t, 6.0, b.Area())
}

func TestBox_Contains(t *testing.T) {
	outer := Box{X1: 0, Y1: 0, X2: 10, Y2: 10}

	assert.True(t, outer.Contains(Box{X1: 2, Y1: 2, X2: 8, Y2: 8}))
	assert.True(t, outer.Contains(outer), "containment is reflexive")
	assert.True(t, outer.Contains(Box{X1: 0, Y1: 0, X2: 0, Y2: 0}), "degenerate box on the boundary")
	assert.False(t, outer.Contains(Box{X1: 2, Y1: 2, X2: 11, Y2: 8}))
	assert.False(t, (Box{X1: 2, Y1: 2, X2: 8, Y2: 8}).Contains(outer))
}

func TestBox_Overlaps(t *testing.T) {
	a := Box{X1: 0, Y1: 0, X2: 4, Y2: 4}

	assert.True(t, a.Overlaps(Box{X1: 2, Y1: 2, X2: 6, Y2: 6}))
	assert.True(t, a.Overlaps(a))
	assert.False(t, a.Overlaps(Box{X1: 4, Y1: 0, X2: 8, Y2: 4}), "shared edge is not an overlap")
	assert.False(t, a.Overlaps(Box{X1: 4, Y1: 4, X2: 8, Y2: 8}), "shared corner is not an overlap")
	assert.False(t, a.Overlaps(Box{X1: 5, Y1: 5, X2: 8, Y2: 8}))
	assert.False(t, a.Overlaps(Box{X1: 2, Y1: 2, X2: 2, Y2: 2}), "degenerate box never overlaps")
}

func TestBox_OverlapsDegenerateInsideOther(t *testing.T) {
	// The intersection with a zero-width or zero-height box has zero area
	// even when the degenerate box lies strictly inside the other's
	// extent, so it is never an overlap, in either direction.
	a := Box{X1: 0, Y1: 0, X2: 4, Y2: 4}
	zeroWidth := Box{X1: 2, Y1: 1, X2: 2, Y2: 3}
	zeroHeight := Box{X1: 1, Y1: 2, X2: 3, Y2: 2}

	assert.False(t, a.Overlaps(zeroWidth))
	assert.False(t, zeroWidth.Overlaps(a))
	assert.False(t, a.Overlaps(zeroHeight))
	assert.False(t, zeroHeight.Overlaps(a))
	assert.False(t, zeroWidth.Overlaps(zeroHeight))
}

func TestBox_Within(t *testing.T) {
	assert.True(t, Box{X1: 0, Y1: 0, X2: 10, Y2: 10}.Within(10, 10))
	assert.False(t, Box{X1: -1, Y1: 0, X2: 5, Y2: 5}.Within(10, 10))
	assert.False(t, Box{X1: 0, Y1: 0, X2: 5, Y2: 11}.Within(10, 10))
}

func TestBox_Less(t *testing.T) {
	a := Box{X1: 0, Y1: 0, X2: 4, Y2: 4}
	b := Box{X1: 0, Y1: 0, X2: 4, Y2: 5}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}
