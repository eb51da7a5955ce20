package phosphor

// Layout manages the children of a container widget: it owns the ordered
// child sequence, reacts to the container's resize and layout requests, and
// writes child geometry.
//
// A layout is installed with Widget.SetLayout and belongs to exactly one
// widget for its whole life.
type Layout interface {
	// Parent returns the widget the layout is installed on, or nil.
	Parent() *Widget

	// SetParent installs the layout on a widget. It is called once, by
	// Widget.SetLayout; calling it directly is a programmer error.
	SetParent(*Widget)

	// Widgets returns the ordered child sequence.
	Widgets() []*Widget

	// RemoveWidget removes a child from the layout, or does nothing if
	// the widget is not a child.
	RemoveWidget(*Widget)

	// OnResize handles a new extent for the parent widget.
	OnResize(ResizeMessage)

	// OnUpdateRequest handles a request to re-distribute space.
	OnUpdateRequest()

	// OnFitRequest handles a request to recompute the parent's bounds.
	OnFitRequest()

	// OnChildShown handles a child becoming visible.
	OnChildShown(*Widget)

	// OnChildHidden handles a child becoming hidden.
	OnChildHidden(*Widget)

	// Dispose releases the layout and disposes the children. Idempotent;
	// all other operations panic afterwards.
	Dispose()
}
