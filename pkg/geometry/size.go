package geometry

import "math"

// Unbounded is the sentinel for "no upper size limit".
var Unbounded = math.Inf(1)

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// SizeConstraints holds the min/max size bounds of a box along both axes.
// A zero MinWidth/MinHeight means "no lower limit"; Unbounded for
// MaxWidth/MaxHeight means "no upper limit".
type SizeConstraints struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// DefaultSizeConstraints returns constraints that allow any size.
func DefaultSizeConstraints() SizeConstraints {
	return SizeConstraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// ClampWidth restricts w to [MinWidth, MaxWidth]. If the bounds conflict,
// the minimum wins (matches CSS behavior).
func (c SizeConstraints) ClampWidth(w float64) float64 {
	return clamp(w, c.MinWidth, c.MaxWidth)
}

// ClampHeight restricts h to [MinHeight, MaxHeight]. If the bounds conflict,
// the minimum wins (matches CSS behavior).
func (c SizeConstraints) ClampHeight(h float64) float64 {
	return clamp(h, c.MinHeight, c.MaxHeight)
}

// clamp restricts v to the range [minVal, maxVal]. If minVal > maxVal,
// minVal wins.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
