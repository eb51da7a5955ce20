package phosphor

// Panel is a convenience container: a widget with a PanelLayout installed
// and the layout's child operations promoted to the widget level.
type Panel struct {
	*Widget
	layout *PanelLayout
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	w := NewWidget()
	l := NewPanelLayout()
	w.SetLayout(l)
	return &Panel{Widget: w, layout: l}
}

// AddWidget appends a child to the panel.
func (p *Panel) AddWidget(w *Widget) {
	p.layout.AddWidget(w)
}

// InsertWidget inserts a child at the given position.
func (p *Panel) InsertWidget(index int, w *Widget) {
	p.layout.InsertWidget(index, w)
}

// Widgets returns the panel's ordered children.
func (p *Panel) Widgets() []*Widget {
	return p.layout.Widgets()
}
