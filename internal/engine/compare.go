package engine

import (
	"time"

	"github.com/dhconnelly/rtreego"

	"github.com/boxkit/boxfinder/internal/model"
)

// DefaultTolerance is the coordinate tolerance for cross-strategy result
// comparison. Differences attributable to floating-point summation order
// are acceptable; structural differences are not.
const DefaultTolerance = 1e-9

// StrategyReport holds the outcome of one strategy run during a
// verification pass.
type StrategyReport struct {
	Name            string
	Elapsed         time.Duration
	Boxes           int
	MatchesComplete bool
}

// CompareStrategies runs every strategy on the instance under its selected
// objective and reports per-strategy timings, result counts, and whether
// each result set is set-equal to the complete strategy's. This backs the
// harness's verification mode.
func CompareStrategies(inst *model.Instance, tol float64) ([]StrategyReport, error) {
	obj := inst.Objective()
	strategies := Strategies()

	reports := make([]StrategyReport, 0, len(strategies))
	results := make([][]model.Box, 0, len(strategies))

	for _, s := range strategies {
		out := make([]model.Box, 0)
		start := time.Now()
		if err := s.AllRectangles(inst, obj, &out); err != nil {
			return nil, err
		}
		reports = append(reports, StrategyReport{
			Name:    s.Name(),
			Elapsed: time.Since(start),
			Boxes:   len(out),
		})
		results = append(results, out)
	}

	reference := results[len(results)-1] // complete runs last
	for i := range reports {
		reports[i].MatchesComplete = EquivalentSets(results[i], reference, tol)
	}
	return reports, nil
}

// boxEntry adapts a result box to the R-tree's Spatial interface. The
// bounds are inflated by the tolerance so near-coincident boxes intersect.
type boxEntry struct {
	box     model.Box
	bounds  rtreego.Rect
	matched bool
}

var _ rtreego.Spatial = (*boxEntry)(nil)

func (e *boxEntry) Bounds() rtreego.Rect {
	return e.bounds
}

func toleranceRect(b model.Box, tol float64) rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{b.X1 - tol, b.Y1 - tol},
		[]float64{b.Width() + 2*tol, b.Height() + 2*tol},
	)
	if err != nil {
		rect = rtreego.Point{b.X1, b.Y1}.ToRect(tol)
	}
	return rect
}

// EquivalentSets reports whether a and b are set-equal under the
// coordinate tolerance: same size, and every box in b matches a distinct
// box in a with all four corners and the weight within tol. Matching goes
// through an R-tree so only spatially close candidates are examined.
func EquivalentSets(a, b []model.Box, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	tree := rtreego.NewTree(2, 25, 50)
	entries := make([]*boxEntry, len(a))
	for i, box := range a {
		entries[i] = &boxEntry{box: box, bounds: toleranceRect(box, tol)}
		tree.Insert(entries[i])
	}

	for _, box := range b {
		found := false
		for _, sp := range tree.SearchIntersect(toleranceRect(box, tol)) {
			e := sp.(*boxEntry)
			if !e.matched && sameBox(e.box, box, tol) {
				e.matched = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameBox(a, b model.Box, tol float64) bool {
	return within(a.X1, b.X1, tol) && within(a.Y1, b.Y1, tol) &&
		within(a.X2, b.X2, tol) && within(a.Y2, b.Y2, tol) &&
		within(a.P, b.P, tol)
}

func within(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
