package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/marekleszczynski/phosphor"
	"github.com/marekleszczynski/phosphor/pkg/geometry"
	"github.com/marekleszczynski/phosphor/pkg/term"
)

// SceneConfig describes a widget hierarchy in TOML form.
//
//	direction = "left-to-right"
//	spacing = 1
//
//	[[box]]
//	label = "sidebar"
//	stretch = 1
//	min-width = 12
//
//	[[box]]
//	label = "main"
//	stretch = 3
//	border = true
type SceneConfig struct {
	Direction string      `toml:"direction"`
	Spacing   *float64    `toml:"spacing"`
	Boxes     []BoxConfig `toml:"box"`
}

// BoxConfig describes one widget. A box with nested boxes becomes a
// BoxPanel; a box without them becomes a leaf.
type BoxConfig struct {
	Label     string   `toml:"label"`
	Stretch   float64  `toml:"stretch"`
	SizeBasis float64  `toml:"size-basis"`
	Hidden    bool     `toml:"hidden"`
	Border    bool     `toml:"border"`
	Color     string   `toml:"color"`
	MinWidth  float64  `toml:"min-width"`
	MinHeight float64  `toml:"min-height"`
	MaxWidth  *float64 `toml:"max-width"`
	MaxHeight *float64 `toml:"max-height"`

	// Container fields, used when nested boxes are present.
	Direction string      `toml:"direction"`
	Spacing   *float64    `toml:"spacing"`
	Boxes     []BoxConfig `toml:"box"`
}

// LoadScene reads and validates a scene description from a TOML file.
func LoadScene(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(string(data))
}

// ParseScene parses a scene description from TOML text.
func ParseScene(text string) (*SceneConfig, error) {
	var cfg SceneConfig
	if _, err := toml.Decode(text, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *SceneConfig) validate() error {
	if c.Direction != "" {
		if _, err := phosphor.ParseDirection(c.Direction); err != nil {
			return err
		}
	}
	if len(c.Boxes) == 0 {
		return fmt.Errorf("scene has no boxes")
	}
	return validateBoxes(c.Boxes)
}

func validateBoxes(boxes []BoxConfig) error {
	for i, b := range boxes {
		if b.Direction != "" {
			if _, err := phosphor.ParseDirection(b.Direction); err != nil {
				return fmt.Errorf("box %d: %w", i, err)
			}
		}
		if err := validateBoxes(b.Boxes); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the widget hierarchy the scene describes.
func (c *SceneConfig) Build() (*phosphor.BoxPanel, error) {
	root := BoxConfig{
		Direction: c.Direction,
		Spacing:   c.Spacing,
		Boxes:     c.Boxes,
	}
	panel, err := buildPanel(root)
	if err != nil {
		return nil, err
	}
	return panel, nil
}

// buildPanel creates a BoxPanel for a container box and populates it.
func buildPanel(b BoxConfig) (*phosphor.BoxPanel, error) {
	var opts []phosphor.BoxPanelOption
	if b.Direction != "" {
		d, err := phosphor.ParseDirection(b.Direction)
		if err != nil {
			return nil, err
		}
		opts = append(opts, phosphor.WithPanelDirection(d))
	}
	if b.Spacing != nil {
		opts = append(opts, phosphor.WithPanelSpacing(*b.Spacing))
	}
	panel := phosphor.NewBoxPanel(opts...)

	for i, child := range b.Boxes {
		w, err := buildWidget(child)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		panel.AddWidget(w)
		phosphor.SetStretch(w, child.Stretch)
		phosphor.SetSizeBasis(w, child.SizeBasis)
	}
	return panel, nil
}

// buildWidget creates the widget for one box: a nested panel when the box
// has children, a styled leaf otherwise.
func buildWidget(b BoxConfig) (*phosphor.Widget, error) {
	var w *phosphor.Widget
	if len(b.Boxes) > 0 {
		panel, err := buildPanel(b)
		if err != nil {
			return nil, err
		}
		w = panel.Widget
	} else {
		w = phosphor.NewWidget()
	}

	limits := geometry.SizeConstraints{
		MinWidth:  b.MinWidth,
		MinHeight: b.MinHeight,
		MaxWidth:  geometry.Unbounded,
		MaxHeight: geometry.Unbounded,
	}
	if b.MaxWidth != nil {
		limits.MaxWidth = *b.MaxWidth
	}
	if b.MaxHeight != nil {
		limits.MaxHeight = *b.MaxHeight
	}
	w.SetSizeConstraints(limits)

	if b.Hidden {
		w.Hide()
	}

	if b.Label != "" || b.Border || b.Color != "" {
		style := lipgloss.NewStyle()
		if b.Color != "" {
			style = style.Background(lipgloss.Color(b.Color))
		}
		term.SetContent(w, term.Content{
			Label:     b.Label,
			Style:     style,
			Border:    lipgloss.RoundedBorder(),
			HasBorder: b.Border,
		})
	}
	return w, nil
}
