// Package engine implements the rectangle enumeration problem: given
// weighted input boxes inside a bounding rectangle, produce the set of
// admissible output rectangles under the active objective.
//
// The input boxes induce a grid from their edge coordinates plus the
// bounding rectangle edges. A candidate is any grid-aligned rectangle that
// fully contains at least one input box and partially overlaps none.
// Candidates are grouped by the exact set of boxes they contain and one
// representative per group is emitted, chosen by the objective. Three
// strategies with different asymptotic behavior produce the same set.
package engine

import (
	"fmt"
	"sort"

	"github.com/boxkit/boxfinder/internal/model"
)

// Enumerator is the shared contract of the three strategies. AllRectangles
// appends the result set to out, which stays owned by the caller; the
// in/out shape avoids reallocation while a run is being timed.
type Enumerator interface {
	Name() string
	AllRectangles(inst *model.Instance, obj model.Objective, out *[]model.Box) error
}

// Strategies returns the three strategies in benchmark order.
func Strategies() []Enumerator {
	return []Enumerator{Cubic{}, Slicing{}, Complete{}}
}

// checkInstance enforces the shared failure semantics: every strategy
// fails fast on an empty problem or an invalid box, never producing a
// partial result.
func checkInstance(inst *model.Instance) error {
	if inst.NBoxes() == 0 {
		return fmt.Errorf("%w: instance %s", model.ErrEmptyProblem, inst.ID)
	}
	return inst.Validate()
}

// grid holds the sorted unique edge coordinates the candidates are drawn
// from.
type grid struct {
	xs, ys []float64
}

func buildGrid(inst *model.Instance) grid {
	xs := make([]float64, 0, 2*len(inst.Boxes)+2)
	ys := make([]float64, 0, 2*len(inst.Boxes)+2)
	xs = append(xs, 0, inst.W)
	ys = append(ys, 0, inst.H)
	for _, b := range inst.Boxes {
		xs = append(xs, b.X1, b.X2)
		ys = append(ys, b.Y1, b.Y2)
	}
	return grid{xs: dedupSorted(xs), ys: dedupSorted(ys)}
}

func dedupSorted(vs []float64) []float64 {
	sort.Float64s(vs)
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
