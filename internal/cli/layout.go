package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marekleszczynski/phosphor"
	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/messaging"
	"github.com/marekleszczynski/phosphor/pkg/term"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	width  float64 // viewport width in cells
	height float64 // viewport height in cells
}

// newLayoutCmd creates the layout command, which computes a one-shot layout
// at a fixed size and prints the resulting geometry tree.
func newLayoutCmd() *cobra.Command {
	opts := layoutOpts{width: 80, height: 24}

	cmd := &cobra.Command{
		Use:   "layout [scene.toml]",
		Short: "Compute a layout and print the geometry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSceneArg(args)
			if err != nil {
				return err
			}
			return runLayout(cmd, cfg, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "viewport width in cells")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "viewport height in cells")

	return cmd
}

// runLayout builds the scene, lays it out once, and dumps the geometry.
func runLayout(cmd *cobra.Command, cfg *SceneConfig, opts layoutOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	panel, err := cfg.Build()
	if err != nil {
		return err
	}

	phosphor.Attach(panel.Widget)
	messaging.Flush()
	panel.SetGeometry(geometry.NewRect(0, 0, opts.width, opts.height))
	messaging.Flush()

	prog.done(fmt.Sprintf("Laid out %d boxes at %gx%g", countBoxes(cfg.Boxes), opts.width, opts.height))

	dumpGeometry(cmd.OutOrStdout(), panel.Widget, 0)
	return nil
}

// dumpGeometry prints one line per widget, indented by depth.
func dumpGeometry(w io.Writer, widget *phosphor.Widget, depth int) {
	g := widget.Geometry()
	name := "box"
	if c, ok := term.ContentOf(widget); ok && c.Label != "" {
		name = c.Label
	} else if widget.Layout() != nil {
		name = "panel"
	}

	suffix := ""
	if widget.IsHidden() {
		suffix = " (hidden)"
	}
	fmt.Fprintf(w, "%s%s x=%.1f y=%.1f w=%.1f h=%.1f%s\n",
		strings.Repeat("  ", depth), name, g.X, g.Y, g.Width, g.Height, suffix)

	for _, child := range widget.Children() {
		dumpGeometry(w, child, depth+1)
	}
}
