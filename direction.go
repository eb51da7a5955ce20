package phosphor

import "fmt"

// Direction specifies the axis and ordering used to arrange children.
type Direction uint8

const (
	// LeftToRight arranges children horizontally from the leading edge.
	LeftToRight Direction = iota
	// RightToLeft arranges children horizontally from the trailing edge.
	RightToLeft
	// TopToBottom arranges children vertically from the leading edge.
	TopToBottom
	// BottomToTop arranges children vertically from the trailing edge.
	BottomToTop
)

// IsHorizontal returns true for the horizontal directions.
func (d Direction) IsHorizontal() bool {
	return d == LeftToRight || d == RightToLeft
}

// IsReversed returns true for the directions that accumulate from the
// trailing edge.
func (d Direction) IsReversed() bool {
	return d == RightToLeft || d == BottomToTop
}

// String returns the kebab-case name of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	case TopToBottom:
		return "top-to-bottom"
	case BottomToTop:
		return "bottom-to-top"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a kebab-case direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left-to-right":
		return LeftToRight, nil
	case "right-to-left":
		return RightToLeft, nil
	case "top-to-bottom":
		return TopToBottom, nil
	case "bottom-to-top":
		return BottomToTop, nil
	}
	return 0, fmt.Errorf("phosphor: unknown direction %q", s)
}

// directionClass returns the mutually exclusive visual state tag for d.
func directionClass(d Direction) string {
	return "phosphor-mod-" + d.String()
}

// retagDirection asserts exactly one of the four direction tags on w,
// clearing the other three.
func retagDirection(w *Widget, d Direction) {
	for _, dir := range []Direction{LeftToRight, RightToLeft, TopToBottom, BottomToTop} {
		if dir != d {
			w.RemoveClass(directionClass(dir))
		}
	}
	w.AddClass(directionClass(d))
}
