package engine

import "github.com/boxkit/boxfinder/internal/model"

// Slicing is the divide-and-conquer strategy. It splits the x coordinate
// grid at the median, recursively enumerates spans that lie entirely in
// one half, then handles the spans crossing the cut directly. Every x span
// is produced exactly once, and all candidates merge into one shared
// collector, so the result set matches the other strategies.
type Slicing struct{}

func (Slicing) Name() string { return "slicing" }

func (Slicing) AllRectangles(inst *model.Instance, obj model.Objective, out *[]model.Box) error {
	if err := checkInstance(inst); err != nil {
		return err
	}

	s := &slicer{
		boxes: inst.Boxes,
		g:     buildGrid(inst),
		col:   newCollector(obj),
	}
	s.solve(0, len(s.g.xs)-1)
	s.col.emit(out)
	return nil
}

type slicer struct {
	boxes []model.Box
	g     grid
	col   *collector
	xc    []int // scratch: x-contained box indices for the current span
	px    []model.Box
}

// solve enumerates all spans (i, j) with lo <= i < j <= hi.
func (s *slicer) solve(lo, hi int) {
	if hi-lo < 1 {
		return
	}
	if hi-lo == 1 {
		s.span(lo, hi)
		return
	}
	mid := (lo + hi) / 2
	s.solve(lo, mid)
	s.solve(mid, hi)
	// Spans crossing the cut: left end strictly below mid, right end
	// strictly above. Spans ending exactly at mid belong to the halves.
	for i := lo; i < mid; i++ {
		for j := mid + 1; j <= hi; j++ {
			s.span(i, j)
		}
	}
}

// span enumerates every candidate with the given x span.
func (s *slicer) span(i, j int) {
	x1, x2 := s.g.xs[i], s.g.xs[j]

	s.xc = s.xc[:0]
	s.px = s.px[:0]
	for idx, b := range s.boxes {
		switch {
		case b.X1 >= x1 && b.X2 <= x2:
			s.xc = append(s.xc, idx)
		case b.X1 < x2 && x1 < b.X2:
			s.px = append(s.px, b)
		}
	}
	if len(s.xc) == 0 {
		return
	}

	for k := 0; k < len(s.g.ys); k++ {
		for l := k + 1; l < len(s.g.ys); l++ {
			r := model.Box{X1: x1, Y1: s.g.ys[k], X2: x2, Y2: s.g.ys[l]}
			if s.conflicts(r) {
				continue
			}
			if key, weight, ok := classify(s.boxes, s.xc, r); ok {
				s.col.add(r.X1, r.Y1, r.X2, r.Y2, key, weight)
			}
		}
	}
}

// conflicts reports whether r has a positive-area intersection with a box
// straddling the span edge; such a box can never be contained, so the
// candidate is inadmissible.
func (s *slicer) conflicts(r model.Box) bool {
	for _, b := range s.px {
		if r.Overlaps(b) {
			return true
		}
	}
	return false
}
