package model

import (
	"errors"
	"fmt"
)

// ErrInvalidBox reports a box whose corners are not ordered or that escapes
// the bounding rectangle of its instance.
var ErrInvalidBox = errors.New("invalid box")

// ErrEmptyProblem reports an instance with no input boxes. Strategies fail
// fast with this error instead of returning an empty result set.
var ErrEmptyProblem = errors.New("empty problem")

// Box is an axis-aligned rectangle with an associated weight. (X1, Y1) is
// the lower-left corner and (X2, Y2) the upper-right one. For input boxes
// the weight P is an area demand; for output boxes it is the summed weight
// of the input boxes the rectangle contains.
type Box struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
	P  float64 `json:"p"`
}

// NewBox builds a Box and validates the corner ordering. Degenerate boxes
// with zero width or height are legal sentinel values.
func NewBox(x1, y1, x2, y2, p float64) (Box, error) {
	if x1 > x2 || y1 > y2 {
		return Box{}, fmt.Errorf("%w: corners (%g,%g)-(%g,%g) are not ordered", ErrInvalidBox, x1, y1, x2, y2)
	}
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2, P: p}, nil
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Y2 - b.Y1
}

// Area returns the box area.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// Contains reports whether other lies entirely within b's extent.
// A degenerate box on b's boundary counts as contained.
func (b Box) Contains(other Box) bool {
	return b.X1 <= other.X1 && other.X2 <= b.X2 &&
		b.Y1 <= other.Y1 && other.Y2 <= b.Y2
}

// Overlaps reports whether the two extents intersect with positive area.
// Boxes that merely share an edge or a corner do not overlap, and a
// degenerate box can never overlap anything, not even when it lies
// strictly inside the other box.
func (b Box) Overlaps(other Box) bool {
	return max(b.X1, other.X1) < min(b.X2, other.X2) &&
		max(b.Y1, other.Y1) < min(b.Y2, other.Y2)
}

// Within reports whether b lies inside the bounding rectangle [0,w]x[0,h].
func (b Box) Within(w, h float64) bool {
	return b.X1 >= 0 && b.Y1 >= 0 && b.X2 <= w && b.Y2 <= h
}

// Less orders boxes lexicographically by (X1, Y1, X2, Y2). This is the tie
// break that keeps representative selection deterministic across strategies.
func (b Box) Less(other Box) bool {
	if b.X1 != other.X1 {
		return b.X1 < other.X1
	}
	if b.Y1 != other.Y1 {
		return b.Y1 < other.Y1
	}
	if b.X2 != other.X2 {
		return b.X2 < other.X2
	}
	return b.Y2 < other.Y2
}
