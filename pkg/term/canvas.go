package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marekleszczynski/phosphor/pkg/geometry"
)

// cell is one terminal character with its style.
type cell struct {
	r     rune
	style lipgloss.Style
}

// Canvas is a grid of styled cells that widget rectangles are painted onto.
type Canvas struct {
	width, height int
	cells         [][]cell
}

// NewCanvas creates a blank canvas of the given terminal size.
func NewCanvas(width, height int) *Canvas {
	cells := make([][]cell, max(0, height))
	for y := range cells {
		row := make([]cell, max(0, width))
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &Canvas{width: max(0, width), height: max(0, height), cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// SetCell paints one cell. Out-of-bounds writes are clipped.
func (c *Canvas) SetCell(x, y int, r rune, style lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = cell{r: r, style: style}
}

// FillRect paints a rectangle of blank styled cells.
func (c *Canvas) FillRect(r geometry.Rect, style lipgloss.Style) {
	x0, y0, x1, y1 := cellBounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.SetCell(x, y, ' ', style)
		}
	}
}

// DrawBorder draws a border just inside the rectangle. Rectangles thinner
// than two cells on either axis get no border.
func (c *Canvas) DrawBorder(r geometry.Rect, border lipgloss.Border, style lipgloss.Style) {
	x0, y0, x1, y1 := cellBounds(r)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	for x := x0 + 1; x < x1-1; x++ {
		c.SetCell(x, y0, firstRune(border.Top), style)
		c.SetCell(x, y1-1, firstRune(border.Bottom), style)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.SetCell(x0, y, firstRune(border.Left), style)
		c.SetCell(x1-1, y, firstRune(border.Right), style)
	}
	c.SetCell(x0, y0, firstRune(border.TopLeft), style)
	c.SetCell(x1-1, y0, firstRune(border.TopRight), style)
	c.SetCell(x0, y1-1, firstRune(border.BottomLeft), style)
	c.SetCell(x1-1, y1-1, firstRune(border.BottomRight), style)
}

// DrawText paints a string starting at (x, y), clipped to the canvas.
func (c *Canvas) DrawText(x, y int, s string, style lipgloss.Style) {
	for i, r := range []rune(s) {
		c.SetCell(x+i, y, r, style)
	}
}

// Render flattens the canvas to a styled string, one line per row.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		// Adjacent cells with the same style render as one run, keeping
		// escape sequences off every single cell.
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x].style, row[start].style) {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			b.WriteString(row[start].style.Render(run.String()))
			start = x
		}
	}
	return b.String()
}

// cellBounds rounds a float rectangle to cell coordinates. Both edges round
// the same way, so rectangles that share an edge in float space share it in
// cell space too.
func cellBounds(r geometry.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X))
	y0 = int(math.Round(r.Y))
	x1 = int(math.Round(r.X + r.Width))
	y1 = int(math.Round(r.Y + r.Height))
	return x0, y0, x1, y1
}

// firstRune returns the first rune of a border fragment, or a space.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// sameStyle compares two styles by their rendered form.
func sameStyle(a, b lipgloss.Style) bool {
	return a.String() == b.String()
}
