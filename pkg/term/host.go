package term

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/marekleszczynski/phosphor"
	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

// Model drives a widget hierarchy as a bubbletea program. Terminal resizes
// become root geometry, every event is followed by a message loop flush,
// and the view paints the laid-out tree.
type Model struct {
	root   *phosphor.Widget
	logger *log.Logger

	width  int
	height int
}

var _ tea.Model = Model{}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger enables debug logging of host events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a host model for the given root widget.
func NewModel(root *phosphor.Widget, opts ...ModelOption) Model {
	m := Model{root: root}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Root returns the hosted root widget.
func (m Model) Root() *phosphor.Widget {
	return m.root
}

// Init attaches the root widget and settles the initial layout.
func (m Model) Init() tea.Cmd {
	if !m.root.IsAttached() {
		phosphor.Attach(m.root)
	}
	messaging.Flush()
	return nil
}

// Update handles terminal events. The message loop is flushed before the
// next view so posted layout requests land inside the same frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.logger != nil {
			m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		}
		m.root.SetGeometry(geometry.NewRect(0, 0, float64(msg.Width), float64(msg.Height)))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			messaging.Flush()
			return m, tea.Quit
		}
	}
	messaging.Flush()
	return m, nil
}

// View paints the widget tree onto a cell canvas.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	canvas := NewCanvas(m.width, m.height)
	paint(canvas, m.root, 0, 0)
	return canvas.Render()
}

// paint draws a widget and its children. Child geometry is relative to the
// parent, so the absolute origin accumulates down the tree.
func paint(c *Canvas, w *phosphor.Widget, originX, originY float64) {
	if w.IsHidden() {
		return
	}
	rect := w.Geometry().Translate(originX, originY)

	if content, ok := ContentOf(w); ok {
		c.FillRect(rect, content.Style)
		if content.HasBorder {
			c.DrawBorder(rect, content.Border, content.Style)
		}
		if content.Label != "" {
			x0, y0, x1, y1 := cellBounds(rect)
			label := []rune(content.Label)
			if width := x1 - x0; len(label) > width {
				label = label[:max(0, width)]
			}
			x := x0 + (x1-x0-len(label))/2
			y := y0 + (y1-y0-1)/2
			c.DrawText(x, y, string(label), content.Style)
		}
	}

	for _, child := range w.Children() {
		paint(c, child, rect.X, rect.Y)
	}
}

// Run hosts the widget tree in the terminal until the user quits.
func Run(root *phosphor.Widget, opts ...ModelOption) error {
	program := tea.NewProgram(NewModel(root, opts...), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
