package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectiveFor(t *testing.T) {
	assert.Equal(t, MinArea, ObjectiveFor(0.5))
	assert.Equal(t, MinArea, ObjectiveFor(0))
	assert.Equal(t, MinArea, ObjectiveFor(-3))
	assert.Equal(t, MinArea, ObjectiveFor(0.9999999))

	// Boundary: exactly 1 resolves to MinError.
	assert.Equal(t, MinError, ObjectiveFor(1))
	assert.Equal(t, MinError, ObjectiveFor(2.0))
}

func TestObjective_String(t *testing.T) {
	assert.Equal(t, "min-area", MinArea.String())
	assert.Equal(t, "min-error", MinError.String())
	assert.Equal(t, "unknown", Objective(42).String())
}

func TestInstance_ObjectiveWithoutRunningStrategies(t *testing.T) {
	// The selector is consulted directly from the instance; no enumerator
	// involvement.
	inst := NewInstance(10, 10, 2.0, nil)
	assert.Equal(t, MinError, inst.Objective())
}
