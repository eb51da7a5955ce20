package phosphor

// boxPanelChildClass tags every child of a BoxPanel for hosts that style
// by visual state.
const boxPanelChildClass = "phosphor-BoxPanel-child"

// BoxPanel is the convenience wrapper around BoxLayout: a widget with a
// box layout installed, direction and spacing surfaced as panel-level
// accessors, and a visual state tag on every child.
type BoxPanel struct {
	*Widget
	layout *BoxLayout
}

// BoxPanelOption configures a BoxPanel.
type BoxPanelOption func(*boxPanelConfig)

type boxPanelConfig struct {
	direction Direction
	spacing   float64
	layout    *BoxLayout
}

// WithPanelDirection sets the panel's layout direction. Ignored when
// WithPanelLayout is given.
func WithPanelDirection(d Direction) BoxPanelOption {
	return func(c *boxPanelConfig) { c.direction = d }
}

// WithPanelSpacing sets the panel's spacing. Ignored when WithPanelLayout
// is given.
func WithPanelSpacing(spacing float64) BoxPanelOption {
	return func(c *boxPanelConfig) { c.spacing = spacing }
}

// WithPanelLayout substitutes a fully pre-configured box layout. The other
// options are ignored.
func WithPanelLayout(l *BoxLayout) BoxPanelOption {
	return func(c *boxPanelConfig) { c.layout = l }
}

// NewBoxPanel creates a panel with a box layout. Defaults match
// NewBoxLayout: direction TopToBottom, spacing 4.
func NewBoxPanel(opts ...BoxPanelOption) *BoxPanel {
	cfg := boxPanelConfig{direction: TopToBottom, spacing: 4}
	for _, opt := range opts {
		opt(&cfg)
	}
	l := cfg.layout
	if l == nil {
		l = NewBoxLayout(WithDirection(cfg.direction), WithSpacing(cfg.spacing))
	}
	w := NewWidget()
	w.AddClass("phosphor-BoxPanel")
	w.SetLayout(l)
	return &BoxPanel{Widget: w, layout: l}
}

// BoxLayout returns the panel's layout.
func (p *BoxPanel) BoxLayout() *BoxLayout {
	return p.layout
}

// Direction returns the layout direction.
func (p *BoxPanel) Direction() Direction {
	return p.layout.Direction()
}

// SetDirection changes the layout direction.
func (p *BoxPanel) SetDirection(d Direction) {
	p.layout.SetDirection(d)
}

// Spacing returns the gap between visible children.
func (p *BoxPanel) Spacing() int {
	return p.layout.Spacing()
}

// SetSpacing changes the gap between visible children.
func (p *BoxPanel) SetSpacing(spacing float64) {
	p.layout.SetSpacing(spacing)
}

// AddWidget appends a child to the panel.
func (p *BoxPanel) AddWidget(w *Widget) {
	w.AddClass(boxPanelChildClass)
	p.layout.AddWidget(w)
}

// InsertWidget inserts a child at the given position.
func (p *BoxPanel) InsertWidget(index int, w *Widget) {
	w.AddClass(boxPanelChildClass)
	p.layout.InsertWidget(index, w)
}

// RemoveWidget removes a child and drops its panel tag.
func (p *BoxPanel) RemoveWidget(w *Widget) {
	p.layout.RemoveWidget(w)
	w.RemoveClass(boxPanelChildClass)
}

// Widgets returns the panel's ordered children.
func (p *BoxPanel) Widgets() []*Widget {
	return p.layout.Widgets()
}
