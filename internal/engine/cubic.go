package engine

import (
	"math"

	"github.com/boxkit/boxfinder/internal/model"
)

// Cubic is the pruned polynomial strategy. For each horizontal span it
// classifies the input boxes once: boxes fully inside the span in x are the
// only ones a candidate can contain, and boxes that straddle a span edge
// cap how far the candidate may extend in y before a partial overlap
// becomes unavoidable. Spans that x-contain no box are skipped outright.
// On typical floorplan inputs the surviving y range is short, keeping the
// cost near cubic in the number of boxes.
type Cubic struct{}

func (Cubic) Name() string { return "cubic" }

func (Cubic) AllRectangles(inst *model.Instance, obj model.Objective, out *[]model.Box) error {
	if err := checkInstance(inst); err != nil {
		return err
	}

	g := buildGrid(inst)
	col := newCollector(obj)
	boxes := inst.Boxes

	// xc holds the x-contained box indices for the current span (the only
	// ones a candidate can contain); px holds boxes straddling a span edge,
	// which must be dodged in y.
	var xc []int
	var px []model.Box

	for i := 0; i < len(g.xs); i++ {
		for j := i + 1; j < len(g.xs); j++ {
			x1, x2 := g.xs[i], g.xs[j]

			xc = xc[:0]
			px = px[:0]
			for idx, b := range boxes {
				switch {
				case b.X1 >= x1 && b.X2 <= x2:
					xc = append(xc, idx)
				case b.X1 < x2 && x1 < b.X2:
					px = append(px, b)
				}
			}
			// No candidate with this span can contain a box.
			if len(xc) == 0 {
				continue
			}

			for k := 0; k < len(g.ys); k++ {
				y1 := g.ys[k]

				// A straddling box b with y1 below its top forces the
				// candidate top edge to stay at or below b.Y1; growing
				// further keeps the overlap positive, so anything past the
				// cap is inadmissible.
				yCap := math.Inf(1)
				for _, b := range px {
					// Zero-height boxes never overlap with positive area,
					// so they impose no cap.
					if b.Y1 < b.Y2 && b.Y2 > y1 && b.Y1 < yCap {
						yCap = b.Y1
					}
				}

				for l := k + 1; l < len(g.ys) && g.ys[l] <= yCap; l++ {
					r := model.Box{X1: x1, Y1: y1, X2: x2, Y2: g.ys[l]}
					if key, weight, ok := classify(boxes, xc, r); ok {
						col.add(r.X1, r.Y1, r.X2, r.Y2, key, weight)
					}
				}
			}
		}
	}

	col.emit(out)
	return nil
}
