package phosphor

import (
	"math"
	"slices"

	"github.com/marekleszczynski/phosphor/pkg/boxengine"
	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

// Distributor assigns a size to every sizer for the given amount of space
// and returns the leftover. boxengine.Calc is the default; tests and hosts
// may inject their own.
type Distributor func(sizers []*boxengine.Sizer, space float64) float64

// BoxLayout arranges its children in a single row or column, in forward or
// reverse order, with a fixed spacing gap between visible children.
//
// The layout keeps one sizer per child, index-aligned with the child
// sequence at all times. The fit pass refreshes every sizer from the
// child's bounds and attached properties and aggregates them into the
// container's own size constraints; the update pass runs the distributor
// over the sizers and writes child geometry.
type BoxLayout struct {
	PanelLayout

	direction Direction
	spacing   int
	engine    Distributor

	sizers []*boxengine.Sizer
	fixed  float64
	dirty  bool
}

var _ Layout = (*BoxLayout)(nil)

// BoxLayoutOption configures a BoxLayout.
type BoxLayoutOption func(*BoxLayout)

// WithDirection sets the layout direction. The default is TopToBottom.
func WithDirection(d Direction) BoxLayoutOption {
	return func(b *BoxLayout) { b.direction = d }
}

// WithSpacing sets the gap between visible children, coerced to a
// non-negative integer. The default is 4.
func WithSpacing(spacing float64) BoxLayoutOption {
	return func(b *BoxLayout) { b.spacing = coerceNonNegative(spacing) }
}

// WithDistributor replaces the space-distribution function.
func WithDistributor(fn Distributor) BoxLayoutOption {
	return func(b *BoxLayout) { b.engine = fn }
}

// NewBoxLayout creates a box layout with direction TopToBottom, spacing 4,
// and the boxengine distributor.
func NewBoxLayout(opts ...BoxLayoutOption) *BoxLayout {
	b := &BoxLayout{
		direction: TopToBottom,
		spacing:   4,
		engine:    boxengine.Calc,
	}
	b.onAttachChild = b.attachChildSizer
	b.onMoveChild = b.moveChildSizer
	b.onDetachChild = b.detachChildSizer
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Direction returns the layout direction.
func (b *BoxLayout) Direction() Direction {
	return b.direction
}

// SetDirection changes the layout direction. The container's visual state
// is re-tagged so exactly one direction marker is asserted, and a fit is
// requested. Setting the current direction is a no-op.
func (b *BoxLayout) SetDirection(d Direction) {
	b.ensureAlive()
	if b.direction == d {
		return
	}
	b.direction = d
	if p := b.Parent(); p != nil {
		retagDirection(p, d)
		p.Fit()
	}
}

// Spacing returns the gap between visible children.
func (b *BoxLayout) Spacing() int {
	return b.spacing
}

// SetSpacing changes the gap between visible children, coerced to a
// non-negative integer. A change requests an update; the aggregate bounds
// pick up the new fixed extent on the next natural fit.
func (b *BoxLayout) SetSpacing(spacing float64) {
	b.ensureAlive()
	n := coerceNonNegative(spacing)
	if n == b.spacing {
		return
	}
	b.spacing = n
	if p := b.Parent(); p != nil {
		p.Update()
	}
}

// SetParent installs the layout and tags the container with the direction
// marker.
func (b *BoxLayout) SetParent(parent *Widget) {
	b.PanelLayout.SetParent(parent)
	retagDirection(parent, b.direction)
}

// OnResize lays the children out against the new extent.
func (b *BoxLayout) OnResize(m ResizeMessage) {
	if p := b.Parent(); p != nil && p.IsVisible() {
		b.update(m.Width, m.Height)
	}
}

// OnUpdateRequest lays the children out against the measured extent.
func (b *BoxLayout) OnUpdateRequest() {
	if p := b.Parent(); p != nil && p.IsVisible() {
		b.update(-1, -1)
	}
}

// OnFitRequest recomputes the container's bounds from the children.
func (b *BoxLayout) OnFitRequest() {
	if p := b.Parent(); p != nil && p.IsAttached() {
		b.fit()
	}
}

// OnChildShown re-fits around the grown visible set.
func (b *BoxLayout) OnChildShown(*Widget) {
	if p := b.Parent(); p != nil {
		p.Fit()
	}
}

// OnChildHidden re-fits around the shrunk visible set.
func (b *BoxLayout) OnChildHidden(*Widget) {
	if p := b.Parent(); p != nil {
		p.Fit()
	}
}

// Dispose clears the sizer registry and cached bounds, then disposes the
// children through the embedded panel layout.
func (b *BoxLayout) Dispose() {
	b.sizers = nil
	b.fixed = 0
	b.dirty = false
	b.PanelLayout.Dispose()
}

// attachChildSizer inserts a fresh sizer for a new child and signals that
// the container's bounds are stale. The sizer keeps default fields until
// the next fit populates it.
func (b *BoxLayout) attachChildSizer(index int, _ *Widget) {
	b.sizers = slices.Insert(b.sizers, index, boxengine.NewSizer())
	if p := b.Parent(); p != nil {
		p.Fit()
	}
}

// moveChildSizer moves the sizer entry in lockstep with the child, without
// resetting its fields. Reordering leaves the aggregate bounds intact, so
// only a re-position is needed.
func (b *BoxLayout) moveChildSizer(from, to int, _ *Widget) {
	moveItem(b.sizers, from, to)
	if p := b.Parent(); p != nil {
		p.Update()
	}
}

// detachChildSizer drops the removed child's sizer and signals that the
// container's bounds are stale.
func (b *BoxLayout) detachChildSizer(index int, _ *Widget) {
	b.sizers = slices.Delete(b.sizers, index, index+1)
	if p := b.Parent(); p != nil {
		p.Fit()
	}
}

// fit recomputes the container's size constraints from the children and
// refreshes every sizer's distribution inputs.
//
// The pass ends with the re-entrancy dance that keeps a resize cascade to
// a single update: the fit request propagated to the ancestor may resize
// this container inline, whose resize handler runs update and clears the
// dirty flag; only if the flag survives is a local update request sent.
func (b *BoxLayout) fit() {
	parent := b.Parent()
	widgets := b.Widgets()

	nVisible := 0
	for _, w := range widgets {
		if !w.IsHidden() {
			nVisible++
		}
	}

	// Space consumed by gaps, never handed to children.
	b.fixed = float64(b.spacing * max(0, nVisible-1))

	horizontal := b.direction.IsHorizontal()
	var minW, minH, maxW, maxH float64
	if horizontal {
		minW = b.fixed
		maxW = geometry.Unbounded
		if nVisible > 0 {
			maxW = b.fixed
		}
		maxH = geometry.Unbounded
	} else {
		minH = b.fixed
		maxH = geometry.Unbounded
		if nVisible > 0 {
			maxH = b.fixed
		}
		maxW = geometry.Unbounded
	}

	for i, w := range widgets {
		sizer := b.sizers[i]

		// A hidden child contributes nothing, but its sizer must be
		// pinned so the distributor assigns it no space.
		if w.IsHidden() {
			sizer.MinSize = 0
			sizer.MaxSize = 0
			continue
		}

		limits := w.SizeConstraints()
		sizer.SizeHint = float64(SizeBasis(w))
		sizer.Stretch = float64(Stretch(w))

		if horizontal {
			sizer.MinSize = limits.MinWidth
			sizer.MaxSize = limits.MaxWidth
			minW += limits.MinWidth
			maxW += limits.MaxWidth
			minH = math.Max(minH, limits.MinHeight)
			maxH = math.Min(maxH, limits.MaxHeight)
		} else {
			sizer.MinSize = limits.MinHeight
			sizer.MaxSize = limits.MaxHeight
			minH += limits.MinHeight
			maxH += limits.MaxHeight
			minW = math.Max(minW, limits.MinWidth)
			maxW = math.Min(maxW, limits.MaxWidth)
		}
	}

	box := parent.BoxSizing()
	minW += box.Horizontal()
	minH += box.Vertical()
	maxW += box.Horizontal()
	maxH += box.Vertical()

	parent.SetSizeConstraints(geometry.SizeConstraints{
		MinWidth:  minW,
		MinHeight: minH,
		MaxWidth:  maxW,
		MaxHeight: maxH,
	})

	b.dirty = true

	if ancestor := parent.Parent(); ancestor != nil {
		messaging.Send(ancestor, MsgFitRequest)
	}

	if b.dirty {
		messaging.Send(parent, MsgUpdateRequest)
	}
}

// update distributes the container's extent over the sizers and positions
// the visible children along the axis. Negative extents are resolved by
// measuring the container's current geometry.
func (b *BoxLayout) update(offsetWidth, offsetHeight float64) {
	parent := b.Parent()
	widgets := b.Widgets()

	b.dirty = false

	if len(widgets) == 0 {
		return
	}

	if offsetWidth < 0 {
		offsetWidth = parent.Geometry().Width
	}
	if offsetHeight < 0 {
		offsetHeight = parent.Geometry().Height
	}

	box := parent.BoxSizing()
	top := box.Top
	left := box.Left
	width := offsetWidth - box.Horizontal()
	height := offsetHeight - box.Vertical()

	if b.direction.IsHorizontal() {
		b.engine(b.sizers, math.Max(0, width-b.fixed))
	} else {
		b.engine(b.sizers, math.Max(0, height-b.fixed))
	}

	// Reverse directions accumulate from the trailing edge of the usable
	// area.
	switch b.direction {
	case RightToLeft:
		left += width
	case BottomToTop:
		top += height
	}

	spacing := float64(b.spacing)
	for i, w := range widgets {
		if w.IsHidden() {
			continue
		}
		size := b.sizers[i].Size
		switch b.direction {
		case LeftToRight:
			w.SetGeometry(geometry.Rect{X: left, Y: top, Width: size, Height: height})
			left += size + spacing
		case RightToLeft:
			left -= size
			w.SetGeometry(geometry.Rect{X: left, Y: top, Width: size, Height: height})
			left -= spacing
		case TopToBottom:
			w.SetGeometry(geometry.Rect{X: left, Y: top, Width: width, Height: size})
			top += size + spacing
		case BottomToTop:
			top -= size
			w.SetGeometry(geometry.Rect{X: left, Y: top, Width: width, Height: size})
			top -= spacing
		}
	}
}

// Sizers exposes the index-aligned sizer sequence for inspection. The
// slice and its entries are owned by the layout and must not be mutated.
func (b *BoxLayout) Sizers() []*boxengine.Sizer {
	return b.sizers
}

// coerceNonNegative floors a value to an integer and clamps it at zero.
func coerceNonNegative(v float64) int {
	n := int(math.Floor(v))
	return max(0, n)
}
