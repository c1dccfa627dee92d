package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Instance is one rectangle-enumeration problem: a bounding rectangle, the
// objective-selection threshold, and the input boxes. Instances are built
// once by a loader and treated as immutable afterwards.
type Instance struct {
	ID         string  `json:"id"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	Proportion float64 `json:"proportion"`
	Boxes      []Box   `json:"boxes"`
}

// NewInstance assigns a short ID, the way loaded entities get IDs elsewhere
// in this codebase. Validation is separate so callers can build and inspect
// invalid instances in tests.
func NewInstance(w, h, proportion float64, boxes []Box) *Instance {
	return &Instance{
		ID:         uuid.New().String()[:8],
		W:          w,
		H:          h,
		Proportion: proportion,
		Boxes:      boxes,
	}
}

// NBoxes returns the number of input boxes.
func (in *Instance) NBoxes() int {
	return len(in.Boxes)
}

// Objective returns the optimization criterion selected by the instance's
// proportion threshold.
func (in *Instance) Objective() Objective {
	return ObjectiveFor(in.Proportion)
}

// Validate checks the instance invariants: every box has ordered corners
// and lies within [0,W]x[0,H].
func (in *Instance) Validate() error {
	if in.W < 0 || in.H < 0 {
		return fmt.Errorf("%w: bounding rectangle %gx%g", ErrInvalidBox, in.W, in.H)
	}
	for i, b := range in.Boxes {
		if b.X1 > b.X2 || b.Y1 > b.Y2 {
			return fmt.Errorf("%w: box %d has unordered corners (%g,%g)-(%g,%g)",
				ErrInvalidBox, i, b.X1, b.Y1, b.X2, b.Y2)
		}
		if !b.Within(in.W, in.H) {
			return fmt.Errorf("%w: box %d escapes the %gx%g bounding rectangle",
				ErrInvalidBox, i, in.W, in.H)
		}
	}
	return nil
}

// Clone returns an independent copy. Strategies never mutate their input,
// but concurrent benchmark runs get their own copy anyway so no view is
// shared across goroutines.
func (in *Instance) Clone() *Instance {
	cp := *in
	cp.Boxes = make([]Box, len(in.Boxes))
	copy(cp.Boxes, in.Boxes)
	return &cp
}
