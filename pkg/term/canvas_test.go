package term

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/marekleszczynski/phosphor/pkg/geometry"
)

func TestCanvas_DrawText(t *testing.T) {
	c := NewCanvas(5, 2)
	c.DrawText(1, 0, "hi", lipgloss.NewStyle())

	lines := strings.Split(c.Render(), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, " hi  ", lines[0])
	require.Equal(t, "     ", lines[1])
}

func TestCanvas_DrawTextClips(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawText(2, 0, "long", lipgloss.NewStyle())
	c.DrawText(-1, 5, "off", lipgloss.NewStyle())
	require.Equal(t, "  lo", c.Render())
}

func TestCanvas_DrawBorder(t *testing.T) {
	c := NewCanvas(4, 3)
	c.DrawBorder(geometry.NewRect(0, 0, 4, 3), lipgloss.NormalBorder(), lipgloss.NewStyle())

	want := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	require.Equal(t, want, c.Render())
}

func TestCanvas_BorderSkipsThinRects(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawBorder(geometry.NewRect(0, 0, 1, 4), lipgloss.NormalBorder(), lipgloss.NewStyle())
	c.DrawBorder(geometry.NewRect(0, 0, 4, 1), lipgloss.NormalBorder(), lipgloss.NewStyle())
	require.Equal(t, strings.TrimRight(c.Render(), " \n"), "")
}

func TestCellBounds_SharedEdgesAgree(t *testing.T) {
	// Two rectangles meeting at a fractional edge must round to the same
	// cell column, leaving no gap and no overlap.
	a := geometry.NewRect(0, 0, 146.5, 10)
	b := geometry.NewRect(146.5, 0, 146.5, 10)

	_, _, ax1, _ := cellBounds(a)
	bx0, _, _, _ := cellBounds(b)
	require.Equal(t, ax1, bx0)
}

func TestCanvas_ZeroSize(t *testing.T) {
	c := NewCanvas(0, 0)
	c.SetCell(0, 0, 'x', lipgloss.NewStyle())
	require.Equal(t, "", c.Render())
}
