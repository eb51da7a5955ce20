package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/marekleszczynski/phosphor"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

// newHostedRow builds a left-to-right panel with two stretch children and
// a model hosting it.
func newHostedRow(t *testing.T) (Model, *phosphor.BoxPanel, []*phosphor.Widget) {
	t.Helper()
	panel := phosphor.NewBoxPanel(
		phosphor.WithPanelDirection(phosphor.LeftToRight),
		phosphor.WithPanelSpacing(0),
	)
	children := make([]*phosphor.Widget, 2)
	for i := range children {
		w := phosphor.NewWidget()
		phosphor.SetStretch(w, 1)
		panel.AddWidget(w)
		children[i] = w
	}
	m := NewModel(panel.Widget)
	m.Init()
	return m, panel, children
}

func TestModel_WindowSizeDrivesLayout(t *testing.T) {
	m, panel, children := newHostedRow(t)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Nil(t, cmd)
	m = next.(Model)

	require.Equal(t, 80.0, panel.Geometry().Width)
	require.Equal(t, 40.0, children[0].Geometry().Width)
	require.Equal(t, 40.0, children[1].Geometry().Width)
	require.Equal(t, 40.0, children[1].Geometry().X)
}

func TestModel_ViewPaintsLabels(t *testing.T) {
	m, _, children := newHostedRow(t)
	SetContent(children[0], Content{Label: "alpha", Style: lipgloss.NewStyle()})
	SetContent(children[1], Content{Label: "beta", Style: lipgloss.NewStyle()})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	m = next.(Model)

	view := m.View()
	require.Contains(t, view, "alpha")
	require.Contains(t, view, "beta")
	require.Len(t, strings.Split(view, "\n"), 5)
}

func TestModel_HiddenChildNotPainted(t *testing.T) {
	m, _, children := newHostedRow(t)
	SetContent(children[0], Content{Label: "alpha", Style: lipgloss.NewStyle()})
	SetContent(children[1], Content{Label: "beta", Style: lipgloss.NewStyle()})
	children[1].Hide()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	m = next.(Model)

	view := m.View()
	require.Contains(t, view, "alpha")
	require.NotContains(t, view, "beta")
}

func TestModel_ViewBeforeFirstResizeIsEmpty(t *testing.T) {
	m, _, _ := newHostedRow(t)
	require.Equal(t, "", m.View())
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m, _, _ := newHostedRow(t)
			var msg tea.KeyMsg
			if key == "q" {
				msg = keyMsg("q")
			} else {
				msg = tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC})
			}
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			require.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestContentTable(t *testing.T) {
	w := phosphor.NewWidget()
	_, ok := ContentOf(w)
	require.False(t, ok)

	SetContent(w, Content{Label: "x"})
	c, ok := ContentOf(w)
	require.True(t, ok)
	require.Equal(t, "x", c.Label)

	ClearContent(w)
	_, ok = ContentOf(w)
	require.False(t, ok)
}
