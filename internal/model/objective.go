package model

// Objective is the optimization criterion guiding which output rectangle
// represents each group of admissible candidates.
type Objective int

const (
	// MinArea prefers the smallest rectangle covering a group of input boxes.
	MinArea Objective = iota
	// MinError prefers the rectangle whose area best matches the summed
	// weight (area demand) of the input boxes it contains.
	MinError
)

func (o Objective) String() string {
	switch o {
	case MinArea:
		return "min-area"
	case MinError:
		return "min-error"
	default:
		return "unknown"
	}
}

// ObjectiveFor selects the objective from an instance's proportion
// threshold: MinArea below 1, MinError at or above it. Pure and total.
//
// The reference harness compared METHOD against MIN_AREA where an
// assignment was intended, so its objective never actually changed. The
// comparison was evidently meant to be a selection, which is what this
// function does, as a returned value rather than a process-wide flag.
func ObjectiveFor(proportion float64) Objective {
	if proportion < 1 {
		return MinArea
	}
	return MinError
}
