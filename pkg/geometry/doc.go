// Package geometry provides the primitive spatial types used by the layout
// engine: rectangles, sizes, edge insets, and size-bound constraints.
//
// All coordinates are float64. Layout math stays in floating point so that
// distributed sizes sum exactly to the available extent; hosts that render
// to an integer grid round once, at paint time.
package geometry
