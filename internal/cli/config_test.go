package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marekleszczynski/phosphor"
	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/messaging"
)

func TestParseScene_DefaultScene(t *testing.T) {
	cfg, err := ParseScene(defaultScene)
	require.NoError(t, err)
	require.Equal(t, "left-to-right", cfg.Direction)
	require.Len(t, cfg.Boxes, 2)
	require.Equal(t, "sidebar", cfg.Boxes[0].Label)
	require.Len(t, cfg.Boxes[1].Boxes, 2)
	require.Equal(t, 4, countBoxes(cfg.Boxes))
}

func TestParseScene_Errors(t *testing.T) {
	tests := map[string]string{
		"malformed toml":    `direction = `,
		"unknown direction": "direction = \"sideways\"\n[[box]]\nlabel = \"a\"",
		"no boxes":          `direction = "left-to-right"`,
		"bad nested direction": `
[[box]]
direction = "diagonal"
[[box.box]]
label = "a"
`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScene(text)
			require.Error(t, err)
		})
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultScene), 0o644))

	cfg, err := LoadScene(path)
	require.NoError(t, err)
	require.Len(t, cfg.Boxes, 2)

	_, err = LoadScene(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestBuild_DefaultScene(t *testing.T) {
	cfg, err := ParseScene(defaultScene)
	require.NoError(t, err)

	panel, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, phosphor.LeftToRight, panel.Direction())
	require.Equal(t, 1, panel.Spacing())

	children := panel.Widgets()
	require.Len(t, children, 2)
	require.Equal(t, 1, phosphor.Stretch(children[0]))
	require.Equal(t, 3, phosphor.Stretch(children[1]))

	column, ok := children[1].Layout().(*phosphor.BoxLayout)
	require.True(t, ok, "nested box should carry a box layout")
	require.Equal(t, phosphor.TopToBottom, column.Direction())
	require.Equal(t, 0, column.Spacing())

	status := column.Widgets()[1]
	require.Equal(t, 3, phosphor.SizeBasis(status))
	require.Equal(t, 3.0, status.SizeConstraints().MaxHeight)
	messaging.Flush()
}

func TestBuild_LayoutMatchesScene(t *testing.T) {
	cfg, err := ParseScene(defaultScene)
	require.NoError(t, err)
	panel, err := cfg.Build()
	require.NoError(t, err)

	phosphor.Attach(panel.Widget)
	messaging.Flush()
	panel.SetGeometry(geometry.NewRect(0, 0, 80, 24))
	messaging.Flush()

	sidebar := panel.Widgets()[0]
	column := panel.Widgets()[1]
	require.GreaterOrEqual(t, sidebar.Geometry().Width, 12.0)
	require.InDelta(t, 79, sidebar.Geometry().Width+column.Geometry().Width, 1e-6)

	status := column.Children()[1]
	require.InDelta(t, 3, status.Geometry().Height, 1e-6)
	require.InDelta(t, 21, status.Geometry().Y, 1e-6)
}

func TestBuild_HiddenBox(t *testing.T) {
	cfg, err := ParseScene(`
[[box]]
label = "a"
[[box]]
label = "b"
hidden = true
`)
	require.NoError(t, err)
	panel, err := cfg.Build()
	require.NoError(t, err)
	require.True(t, panel.Widgets()[1].IsHidden())
	require.False(t, panel.Widgets()[0].IsHidden())
	messaging.Flush()
}

func TestDumpGeometry(t *testing.T) {
	cfg, err := ParseScene(defaultScene)
	require.NoError(t, err)
	panel, err := cfg.Build()
	require.NoError(t, err)

	phosphor.Attach(panel.Widget)
	messaging.Flush()
	panel.SetGeometry(geometry.NewRect(0, 0, 80, 24))
	messaging.Flush()

	var b strings.Builder
	dumpGeometry(&b, panel.Widget, 0)
	out := b.String()

	require.Contains(t, out, "sidebar")
	require.Contains(t, out, "status")
	require.Contains(t, out, "w=80.0 h=24.0")
	require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 5)
}
