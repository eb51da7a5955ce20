// Package phosphor is a single-axis box-layout engine for widget trees.
//
// A BoxLayout arranges the children of a container widget along one of four
// directions (forward/reverse horizontal or vertical), giving each child a
// size between its minimum and maximum bounds, weighted by a per-child
// stretch factor, with a fixed spacing gap between visible children.
//
// Layout runs in two passes. The fit pass aggregates the children's size
// bounds into the container's own constraints and propagates a fit request
// to the container's ancestor; the update pass distributes the container's
// current extent over the children and writes their geometry. A dirty flag
// guards against running the update twice when an ancestor's resize already
// resolved it. All passes are driven by the cooperative message loop in
// pkg/messaging; hosts deliver resize events and flush the loop.
//
// The space-distribution numerics live in pkg/boxengine and are injected
// into BoxLayout as a plain function, so they can be replaced wholesale.
package phosphor
