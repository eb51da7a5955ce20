package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marekleszczynski/phosphor"
)

// Content is what the host paints inside a widget's rectangle.
type Content struct {
	// Label is drawn centered in the widget's content area.
	Label string

	// Style colors the widget's cells.
	Style lipgloss.Style

	// Border, when set, is drawn just inside the widget's rectangle.
	Border lipgloss.Border

	// HasBorder enables Border. A zero lipgloss.Border is a valid (blank)
	// border, so presence needs its own flag.
	HasBorder bool
}

// contents maps widgets to what they look like. Like the layout engine's
// attached properties, it is a side table keyed by identity; widgets carry
// no paint state of their own.
var contents = make(map[*phosphor.Widget]Content)

// SetContent records how a widget should be painted.
func SetContent(w *phosphor.Widget, c Content) {
	contents[w] = c
}

// ContentOf returns a widget's paint content and whether one was set.
func ContentOf(w *phosphor.Widget) (Content, bool) {
	c, ok := contents[w]
	return c, ok
}

// ClearContent drops a widget's paint content.
func ClearContent(w *phosphor.Widget) {
	delete(contents, w)
}
