package phosphor

import (
	"slices"

	"github.com/google/uuid"

	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

// widgetFlag is a bit in the widget lifecycle state.
type widgetFlag uint8

const (
	flagDisposed widgetFlag = 1 << iota
	flagAttached
	flagHidden
)

// Widget is a node in a layout hierarchy. A widget owns at most one Layout,
// which manages its children; a widget without a layout is a leaf.
//
// Widgets are not safe for concurrent use. All mutation must happen on the
// goroutine that flushes the message loop.
type Widget struct {
	id      string
	flags   widgetFlag
	parent  *Widget
	layout  Layout
	classes []string

	geometry geometry.Rect
	limits   geometry.SizeConstraints
	box      geometry.Edges
}

// Compile-time check that Widget implements messaging.Handler.
var _ messaging.Handler = (*Widget)(nil)

// NewWidget creates a leaf widget with unbounded size constraints.
func NewWidget() *Widget {
	return &Widget{limits: geometry.DefaultSizeConstraints()}
}

// ID returns the widget's identity, generating it on first access.
func (w *Widget) ID() string {
	if w.id == "" {
		w.id = uuid.NewString()
	}
	return w.id
}

// Parent returns the parent widget, or nil for a root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Layout returns the installed layout, or nil for a leaf.
func (w *Widget) Layout() Layout {
	return w.layout
}

// SetLayout installs a layout on the widget. A layout can be installed only
// once per widget and cannot be shared between widgets; violating either
// rule is a programmer error and panics.
func (w *Widget) SetLayout(l Layout) {
	w.ensureAlive()
	if l == nil {
		panic("phosphor: cannot install a nil layout")
	}
	if w.layout == l {
		return
	}
	if w.layout != nil {
		panic("phosphor: cannot change widget layout")
	}
	if l.Parent() != nil {
		panic("phosphor: layout is already installed on another widget")
	}
	w.layout = l
	l.SetParent(w)
	w.Fit()
}

// Children returns the widgets managed by the installed layout, or nil.
func (w *Widget) Children() []*Widget {
	if w.layout == nil {
		return nil
	}
	return w.layout.Widgets()
}

// IsDisposed reports whether Dispose has run.
func (w *Widget) IsDisposed() bool { return w.flags&flagDisposed != 0 }

// IsAttached reports whether the widget is part of a rendered hierarchy.
func (w *Widget) IsAttached() bool { return w.flags&flagAttached != 0 }

// IsHidden reports whether the widget is explicitly hidden.
func (w *Widget) IsHidden() bool { return w.flags&flagHidden != 0 }

// IsVisible reports whether the widget is attached, not hidden, and has no
// hidden ancestor.
func (w *Widget) IsVisible() bool {
	if !w.IsAttached() || w.IsHidden() {
		return false
	}
	if w.parent == nil {
		return true
	}
	return w.parent.IsVisible()
}

// Show makes the widget eligible for layout and painting.
func (w *Widget) Show() { w.SetHidden(false) }

// Hide removes the widget from layout without detaching it.
func (w *Widget) Hide() { w.SetHidden(true) }

// SetHidden sets the hidden state. A change notifies the parent so its
// layout can re-fit around the new visible set; setting the current state
// is a no-op.
func (w *Widget) SetHidden(hidden bool) {
	w.ensureAlive()
	if hidden == w.IsHidden() {
		return
	}
	if hidden {
		w.flags |= flagHidden
	} else {
		w.flags &^= flagHidden
	}
	if w.parent != nil {
		if hidden {
			messaging.Send(w.parent, NewChildHidden(w))
		} else {
			messaging.Send(w.parent, NewChildShown(w))
		}
	}
}

// Geometry returns the widget's current position and extent.
func (w *Widget) Geometry() geometry.Rect {
	return w.geometry
}

// SetGeometry stores the widget's position and extent. A size change is
// delivered synchronously as a resize message, so a container's layout runs
// inline with the cascade that resized it.
func (w *Widget) SetGeometry(r geometry.Rect) {
	w.ensureAlive()
	resized := r.Width != w.geometry.Width || r.Height != w.geometry.Height
	w.geometry = r
	if resized {
		messaging.Send(w, ResizeMessage{Width: r.Width, Height: r.Height})
	}
}

// SizeConstraints returns the widget's min/max size bounds. For a container
// these are recomputed by its layout's fit pass; for a leaf they are
// whatever the owner set.
func (w *Widget) SizeConstraints() geometry.SizeConstraints {
	return w.limits
}

// SetSizeConstraints stores the widget's min/max size bounds. The parent's
// layout reads them on its next fit pass.
func (w *Widget) SetSizeConstraints(c geometry.SizeConstraints) {
	w.ensureAlive()
	w.limits = c
}

// BoxSizing returns the widget's border+padding contribution.
func (w *Widget) BoxSizing() geometry.Edges {
	return w.box
}

// SetBoxSizing stores the border+padding contribution and requests a fit,
// since the container's aggregate bounds include it.
func (w *Widget) SetBoxSizing(e geometry.Edges) {
	w.ensureAlive()
	if e == w.box {
		return
	}
	w.box = e
	w.Fit()
}

// Update posts a coalesced update request for this widget.
func (w *Widget) Update() {
	w.ensureAlive()
	messaging.Post(w, MsgUpdateRequest)
}

// Fit posts a coalesced fit request for this widget.
func (w *Widget) Fit() {
	w.ensureAlive()
	messaging.Post(w, MsgFitRequest)
}

// AddClass adds a visual state tag if not already present.
func (w *Widget) AddClass(class string) {
	if !slices.Contains(w.classes, class) {
		w.classes = append(w.classes, class)
	}
}

// RemoveClass removes a visual state tag if present.
func (w *Widget) RemoveClass(class string) {
	if i := slices.Index(w.classes, class); i != -1 {
		w.classes = slices.Delete(w.classes, i, i+1)
	}
}

// HasClass reports whether a visual state tag is present.
func (w *Widget) HasClass(class string) bool {
	return slices.Contains(w.classes, class)
}

// Classes returns the widget's visual state tags.
func (w *Widget) Classes() []string {
	return slices.Clone(w.classes)
}

// Dispose releases the widget: pending messages are cancelled, the widget
// is removed from its parent, the layout (and with it the children) is
// disposed, and the attached properties are dropped. Dispose is idempotent;
// any other operation after disposal panics.
func (w *Widget) Dispose() {
	if w.IsDisposed() {
		return
	}
	// Leave the tree first: removal delivers detach notifications, which
	// must still find the widget alive.
	if w.parent != nil {
		w.parent.layout.RemoveWidget(w)
	}
	w.flags |= flagDisposed
	messaging.ClearPending(w)
	if w.layout != nil {
		w.layout.Dispose()
		w.layout = nil
	}
	clearBoxProperties(w)
	w.flags &^= flagAttached
}

// ProcessMessage dispatches a message to the widget's layout and state.
// It implements messaging.Handler.
func (w *Widget) ProcessMessage(msg messaging.Message) {
	w.ensureAlive()
	switch m := msg.(type) {
	case ResizeMessage:
		if w.layout != nil {
			w.layout.OnResize(m)
		}
	case ChildMessage:
		if w.layout == nil {
			return
		}
		if m.Kind() == KindChildShown {
			w.layout.OnChildShown(m.Child)
		} else {
			w.layout.OnChildHidden(m.Child)
		}
	default:
		switch msg.Kind() {
		case KindUpdateRequest:
			if w.layout != nil {
				w.layout.OnUpdateRequest()
			}
		case KindFitRequest:
			if w.layout != nil {
				w.layout.OnFitRequest()
			}
		case KindBeforeAttach:
			w.forwardToChildren(msg)
		case KindAfterAttach:
			w.flags |= flagAttached
			w.forwardToChildren(msg)
		case KindBeforeDetach:
			w.forwardToChildren(msg)
		case KindAfterDetach:
			w.flags &^= flagAttached
			w.forwardToChildren(msg)
			messaging.ClearPending(w)
		}
	}
}

// forwardToChildren relays a lifecycle message to every child.
func (w *Widget) forwardToChildren(msg messaging.Message) {
	if w.layout == nil {
		return
	}
	for _, child := range w.layout.Widgets() {
		messaging.Send(child, msg)
	}
}

// ensureAlive panics if the widget has been disposed.
func (w *Widget) ensureAlive() {
	if w.IsDisposed() {
		panic("phosphor: use of disposed widget")
	}
}

// Attach marks a root widget as part of a rendered hierarchy, delivering
// the attach lifecycle through the tree. Attaching a child or an already
// attached widget is a programmer error.
func Attach(w *Widget) {
	w.ensureAlive()
	if w.parent != nil {
		panic("phosphor: cannot attach a child widget")
	}
	if w.IsAttached() {
		panic("phosphor: widget is already attached")
	}
	messaging.Send(w, MsgBeforeAttach)
	messaging.Send(w, MsgAfterAttach)
	w.Fit()
}

// Detach removes a root widget from the rendered hierarchy and cancels its
// pending layout requests.
func Detach(w *Widget) {
	w.ensureAlive()
	if w.parent != nil {
		panic("phosphor: cannot detach a child widget")
	}
	if !w.IsAttached() {
		panic("phosphor: widget is not attached")
	}
	messaging.Send(w, MsgBeforeDetach)
	messaging.Send(w, MsgAfterDetach)
}
