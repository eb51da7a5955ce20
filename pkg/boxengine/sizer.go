package boxengine

import "math"

// Sizer holds the distribution inputs and the assigned result for a single
// box in a layout sequence.
type Sizer struct {
	// SizeHint is the preferred size of the box. The box is given this
	// size whenever possible, within the limits of MinSize and MaxSize.
	SizeHint float64

	// MinSize is the smallest size the box may be assigned.
	MinSize float64

	// MaxSize is the largest size the box may be assigned.
	MaxSize float64

	// Stretch controls how surplus and deficit space is apportioned among
	// boxes relative to their siblings. A box with stretch zero keeps its
	// hint as long as space allows.
	Stretch float64

	// Size is the size assigned by the most recent call to Calc.
	Size float64

	// done marks the sizer as saturated during a distribution pass.
	done bool
}

// NewSizer returns a sizer with no lower bound and an unbounded upper bound.
func NewSizer() *Sizer {
	return &Sizer{MaxSize: math.Inf(1)}
}
