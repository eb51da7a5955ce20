package phosphor

import (
	"slices"

	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

// PanelLayout maintains an ordered sequence of child widgets without
// assigning geometry. It handles reparenting, move detection, and the
// attach/detach lifecycle; layouts that position children embed it and
// register the mutation hooks.
type PanelLayout struct {
	parent   *Widget
	widgets  []*Widget
	disposed bool

	// Mutation hooks for embedding layouts. Each runs after the widget
	// sequence has been adjusted; when nil, only the lifecycle forwarding
	// in this type applies.
	onAttachChild func(index int, w *Widget)
	onMoveChild   func(from, to int, w *Widget)
	onDetachChild func(index int, w *Widget)
}

var _ Layout = (*PanelLayout)(nil)

// NewPanelLayout creates an empty panel layout.
func NewPanelLayout() *PanelLayout {
	return &PanelLayout{}
}

// Parent returns the widget the layout is installed on, or nil.
func (l *PanelLayout) Parent() *Widget {
	return l.parent
}

// SetParent installs the layout on a widget and adopts any widgets that
// were added before installation.
func (l *PanelLayout) SetParent(parent *Widget) {
	l.ensureAlive()
	if l.parent == parent {
		return
	}
	if l.parent != nil {
		panic("phosphor: layout is already installed on another widget")
	}
	l.parent = parent
	// Adopt widgets added before installation. The mutation hooks already
	// ran at insert time; only the lifecycle forwarding is owed here.
	for _, w := range l.widgets {
		w.parent = parent
		l.forwardAttach(w)
	}
}

// Widgets returns the ordered child sequence.
func (l *PanelLayout) Widgets() []*Widget {
	return l.widgets
}

// Len returns the number of children.
func (l *PanelLayout) Len() int {
	return len(l.widgets)
}

// Index returns the position of w in the sequence, or -1.
func (l *PanelLayout) Index(w *Widget) int {
	return slices.Index(l.widgets, w)
}

// AddWidget appends a widget to the sequence.
func (l *PanelLayout) AddWidget(w *Widget) {
	l.InsertWidget(len(l.widgets), w)
}

// InsertWidget inserts a widget at the given position, clamped to the
// valid range. Inserting a widget that is already in the sequence moves it;
// inserting a widget owned by another container reparents it here.
func (l *PanelLayout) InsertWidget(index int, w *Widget) {
	l.ensureAlive()
	if w == nil {
		panic("phosphor: cannot insert a nil widget")
	}
	if l.parent != nil && w == l.parent {
		panic("phosphor: cannot add a widget to its own layout")
	}
	index = max(0, min(index, len(l.widgets)))

	// Already ours: this is a move.
	if from := slices.Index(l.widgets, w); from != -1 {
		to := min(index, len(l.widgets)-1)
		if from == to {
			return
		}
		moveItem(l.widgets, from, to)
		if l.onMoveChild != nil {
			l.onMoveChild(from, to, w)
		}
		return
	}

	// Owned elsewhere: leave the old container first.
	if p := w.Parent(); p != nil {
		p.layout.RemoveWidget(w)
	}

	w.parent = l.parent
	l.widgets = slices.Insert(l.widgets, index, w)
	l.attachChild(index, w)
}

// RemoveWidget removes a widget from the sequence; unknown widgets are
// ignored.
func (l *PanelLayout) RemoveWidget(w *Widget) {
	l.ensureAlive()
	if i := slices.Index(l.widgets, w); i != -1 {
		l.RemoveWidgetAt(i)
	}
}

// RemoveWidgetAt removes and returns the widget at the given position.
func (l *PanelLayout) RemoveWidgetAt(index int) *Widget {
	l.ensureAlive()
	w := l.widgets[index]
	l.widgets = slices.Delete(l.widgets, index, index+1)
	w.parent = nil
	l.detachChild(index, w)
	return w
}

// OnResize does nothing; PanelLayout assigns no geometry.
func (l *PanelLayout) OnResize(ResizeMessage) {}

// OnUpdateRequest does nothing; PanelLayout assigns no geometry.
func (l *PanelLayout) OnUpdateRequest() {}

// OnFitRequest does nothing; PanelLayout imposes no bounds.
func (l *PanelLayout) OnFitRequest() {}

// OnChildShown does nothing; PanelLayout has no visible-set bookkeeping.
func (l *PanelLayout) OnChildShown(*Widget) {}

// OnChildHidden does nothing; PanelLayout has no visible-set bookkeeping.
func (l *PanelLayout) OnChildHidden(*Widget) {}

// Dispose detaches and disposes all children, then retires the layout.
// Idempotent; every other operation panics afterwards.
func (l *PanelLayout) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	widgets := l.widgets
	l.widgets = nil
	l.parent = nil
	for _, w := range widgets {
		w.parent = nil
		w.Dispose()
	}
}

// IsDisposed reports whether Dispose has run.
func (l *PanelLayout) IsDisposed() bool {
	return l.disposed
}

// attachChild forwards the attach lifecycle to a newly inserted child and
// runs the embedding layout's hook.
func (l *PanelLayout) attachChild(index int, w *Widget) {
	l.forwardAttach(w)
	if l.onAttachChild != nil {
		l.onAttachChild(index, w)
	}
}

// detachChild forwards the detach lifecycle to a removed child and runs
// the embedding layout's hook.
func (l *PanelLayout) detachChild(index int, w *Widget) {
	l.forwardDetach(w)
	if l.onDetachChild != nil {
		l.onDetachChild(index, w)
	}
}

// forwardAttach delivers before/after-attach to w when the container is
// part of a rendered hierarchy.
func (l *PanelLayout) forwardAttach(w *Widget) {
	if l.parent != nil && l.parent.IsAttached() {
		messaging.Send(w, MsgBeforeAttach)
		messaging.Send(w, MsgAfterAttach)
	}
}

// forwardDetach delivers before/after-detach to w when the container is
// part of a rendered hierarchy.
func (l *PanelLayout) forwardDetach(w *Widget) {
	if w.IsAttached() {
		messaging.Send(w, MsgBeforeDetach)
		messaging.Send(w, MsgAfterDetach)
	}
}

// ensureAlive panics if the layout has been disposed.
func (l *PanelLayout) ensureAlive() {
	if l.disposed {
		panic("phosphor: use of disposed layout")
	}
}

// moveItem shifts s[from] to position to, preserving the order of the
// other elements.
func moveItem[T any](s []T, from, to int) {
	item := s[from]
	if from < to {
		copy(s[from:], s[from+1:to+1])
	} else {
		copy(s[to+1:], s[to:from])
	}
	s[to] = item
}
