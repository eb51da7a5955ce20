package cli

import (
	"github.com/spf13/cobra"

	"github.com/marekleszczynski/phosphor/pkg/term"
)

// defaultScene is hosted when no scene file is given: a sidebar next to a
// main column with a fixed-height status bar.
const defaultScene = `
direction = "left-to-right"
spacing = 1

[[box]]
label = "sidebar"
stretch = 1
min-width = 12
border = true

[[box]]
direction = "top-to-bottom"
spacing = 0
stretch = 3

  [[box.box]]
  label = "main"
  stretch = 1
  border = true

  [[box.box]]
  label = "status"
  size-basis = 3
  max-height = 3
  border = true
`

// newDemoCmd creates the demo command, which hosts a scene interactively.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [scene.toml]",
		Short: "Host a scene interactively in the terminal",
		Long:  "Demo loads a scene description and hosts it in the terminal. The layout follows the terminal size; press q to quit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadSceneArg(args)
			if err != nil {
				return err
			}
			panel, err := cfg.Build()
			if err != nil {
				return err
			}

			logger.Debug("hosting scene", "boxes", countBoxes(cfg.Boxes))
			return term.Run(panel.Widget, term.WithLogger(logger))
		},
	}
}

// loadSceneArg loads the scene named by args, or the built-in default.
func loadSceneArg(args []string) (*SceneConfig, error) {
	if len(args) == 1 {
		return LoadScene(args[0])
	}
	return ParseScene(defaultScene)
}

// countBoxes counts the boxes in a scene, nested ones included.
func countBoxes(boxes []BoxConfig) int {
	n := len(boxes)
	for _, b := range boxes {
		n += countBoxes(b.Boxes)
	}
	return n
}
