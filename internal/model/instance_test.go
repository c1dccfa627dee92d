package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_Validate(t *testing.T) {
	valid := NewInstance(10, 10, 0.5, []Box{
		{X1: 0, Y1: 0, X2: 5, Y2: 5, P: 1},
		{X1: 5, Y1: 5, X2: 10, Y2: 10, P: 2},
	})
	assert.NoError(t, valid.Validate())

	unordered := NewInstance(10, 10, 0.5, []Box{{X1: 5, Y1: 0, X2: 1, Y2: 5}})
	assert.ErrorIs(t, unordered.Validate(), ErrInvalidBox)

	escaping := NewInstance(10, 10, 0.5, []Box{{X1: 8, Y1: 0, X2: 12, Y2: 5}})
	assert.ErrorIs(t, escaping.Validate(), ErrInvalidBox)

	negativeBounds := NewInstance(-1, 10, 0.5, nil)
	assert.ErrorIs(t, negativeBounds.Validate(), ErrInvalidBox)
}

func TestInstance_IDsAreAssigned(t *testing.T) {
	a := NewInstance(10, 10, 0.5, nil)
	b := NewInstance(10, 10, 0.5, nil)

	assert.Len(t, a.ID, 8)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestInstance_CloneIsIndependent(t *testing.T) {
	orig := NewInstance(10, 10, 0.5, []Box{{X1: 0, Y1: 0, X2: 5, Y2: 5, P: 1}})
	cp := orig.Clone()

	require.Equal(t, orig.Boxes, cp.Boxes)
	cp.Boxes[0].X2 = 9
	assert.Equal(t, 5.0, orig.Boxes[0].X2, "mutating the clone must not touch the original")
	assert.Equal(t, orig.ID, cp.ID)
}

func TestInstance_NBoxes(t *testing.T) {
	inst := NewInstance(10, 10, 0.5, []Box{{}, {}, {}})
	assert.Equal(t, 3, inst.NBoxes())
}
