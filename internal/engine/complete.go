package engine

import "github.com/boxkit/boxfinder/internal/model"

// Complete is the exhaustive strategy: every grid-aligned candidate is
// tested against every input box, with no pruning and no early exit. It is
// combinatorially expensive but exact by construction, and serves as the
// reference the other strategies are checked against.
type Complete struct{}

func (Complete) Name() string { return "complete" }

func (Complete) AllRectangles(inst *model.Instance, obj model.Objective, out *[]model.Box) error {
	if err := checkInstance(inst); err != nil {
		return err
	}

	g := buildGrid(inst)
	col := newCollector(obj)

	all := make([]int, len(inst.Boxes))
	for i := range all {
		all[i] = i
	}

	for i := 0; i < len(g.xs); i++ {
		for j := i + 1; j < len(g.xs); j++ {
			for k := 0; k < len(g.ys); k++ {
				for l := k + 1; l < len(g.ys); l++ {
					r := model.Box{X1: g.xs[i], Y1: g.ys[k], X2: g.xs[j], Y2: g.ys[l]}
					if key, weight, ok := classify(inst.Boxes, all, r); ok {
						col.add(r.X1, r.Y1, r.X2, r.Y2, key, weight)
					}
				}
			}
		}
	}

	col.emit(out)
	return nil
}
