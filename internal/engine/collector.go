package engine

import (
	"sort"
	"strconv"

	"github.com/boxkit/boxfinder/internal/model"
)

// collector groups admissible candidates by the set of input boxes they
// contain and keeps the best representative per group under the active
// objective. All strategies feed the same collector logic, so the emitted
// result set is a pure function of (instance, objective) no matter how the
// candidates were enumerated.
type collector struct {
	obj    model.Objective
	groups map[string]model.Box
}

func newCollector(obj model.Objective) *collector {
	return &collector{obj: obj, groups: make(map[string]model.Box)}
}

// add offers a candidate rectangle for the group identified by key. The
// weight is the summed area demand of the contained boxes and becomes the
// output rectangle's P.
func (c *collector) add(x1, y1, x2, y2 float64, key string, weight float64) {
	cand := model.Box{X1: x1, Y1: y1, X2: x2, Y2: y2, P: weight}
	cur, ok := c.groups[key]
	if !ok || c.better(cand, cur) {
		c.groups[key] = cand
	}
}

// better reports whether cand beats cur under the objective. The order is
// total: area (or area error) first, then smaller area, then lexicographic
// corners, so every strategy picks the same representative.
func (c *collector) better(cand, cur model.Box) bool {
	if c.obj == model.MinError {
		ce := absErr(cand)
		pe := absErr(cur)
		if ce != pe {
			return ce < pe
		}
	}
	ca, pa := cand.Area(), cur.Area()
	if ca != pa {
		return ca < pa
	}
	return cand.Less(cur)
}

func absErr(b model.Box) float64 {
	e := b.Area() - b.P
	if e < 0 {
		return -e
	}
	return e
}

// emit appends the representatives to out, sorted by corner order so runs
// are reproducible.
func (c *collector) emit(out *[]model.Box) {
	start := len(*out)
	for _, b := range c.groups {
		*out = append(*out, b)
	}
	res := (*out)[start:]
	sort.Slice(res, func(i, j int) bool { return res[i].Less(res[j]) })
}

// classify tests candidate r against the boxes at the given indices and
// returns the group key (comma-joined ascending indices) plus the summed
// weight of the contained boxes. ok is false when r partially overlaps a
// box or contains none. Indices must be ascending so keys are canonical.
func classify(boxes []model.Box, indices []int, r model.Box) (string, float64, bool) {
	var key []byte
	weight := 0.0
	contained := 0
	for _, i := range indices {
		b := boxes[i]
		if r.Contains(b) {
			if contained > 0 {
				key = append(key, ',')
			}
			key = strconv.AppendInt(key, int64(i), 10)
			weight += b.P
			contained++
		} else if r.Overlaps(b) {
			return "", 0, false
		}
	}
	if contained == 0 {
		return "", 0, false
	}
	return string(key), weight, true
}
