// Package boxengine implements the space-distribution algorithm used by
// box layouts: given an ordered sequence of sizers, each carrying size
// bounds, a preferred size hint, and a stretch weight, it assigns a
// concrete size to every sizer for a given amount of available space.
//
// The algorithm is deterministic: identical inputs always produce identical
// assignments. Layouts inject Calc as their default distributor but accept
// any function with the same signature, which keeps the bookkeeping in the
// layout testable independently of the numerics here.
package boxengine
