package bench

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxkit/boxfinder/internal/model"
)

func testInstance() *model.Instance {
	return model.NewInstance(10, 10, 0.5, []model.Box{
		{X1: 0, Y1: 0, X2: 4, Y2: 4, P: 16},
		{X1: 5, Y1: 5, X2: 9, Y2: 9, P: 16},
		{X1: 0, Y1: 5, X2: 3, Y2: 8, P: 9},
	})
}

func TestRun_Sequential(t *testing.T) {
	report, err := Run(testInstance(), Options{})
	require.NoError(t, err)

	require.Len(t, report.Timings, 3)
	assert.Equal(t, "cubic", report.Timings[0].Strategy)
	assert.Equal(t, "slicing", report.Timings[1].Strategy)
	assert.Equal(t, "complete", report.Timings[2].Strategy)

	for _, tm := range report.Timings {
		assert.Greater(t, tm.Boxes, 0, "%s produced no boxes", tm.Strategy)
		assert.GreaterOrEqual(t, tm.Elapsed.Seconds(), 0.0)
	}
	assert.Len(t, report.RunID, 8)
}

func TestRun_Parallel(t *testing.T) {
	inst := testInstance()
	report, err := Run(inst, Options{Parallel: true})
	require.NoError(t, err)

	require.Len(t, report.Timings, 3)
	// The shared instance must not have been touched by the concurrent runs.
	assert.Equal(t, 3, inst.NBoxes())
	assert.Equal(t, 4.0, inst.Boxes[0].X2)

	// Sequential and parallel runs find the same result sizes.
	seq, err := Run(inst, Options{})
	require.NoError(t, err)
	for i := range seq.Timings {
		assert.Equal(t, seq.Timings[i].Boxes, report.Timings[i].Boxes)
	}
}

func TestRun_EmptyProblem(t *testing.T) {
	inst := model.NewInstance(10, 10, 0.5, nil)

	_, err := Run(inst, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrEmptyProblem)

	_, err = Run(inst, Options{Parallel: true})
	assert.ErrorIs(t, err, model.ErrEmptyProblem)
}

func TestReport_FormatLine(t *testing.T) {
	report, err := Run(testInstance(), Options{})
	require.NoError(t, err)

	line := report.FormatLine()
	fields := strings.Fields(line)
	require.Len(t, fields, 3)

	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		// High decimal precision, matching the harness output contract.
		assert.Contains(t, f, ".")
		assert.Len(t, strings.SplitN(f, ".", 2)[1], 20)
	}
}
