package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/sodiumview/internal/renderer"
	"github.com/dshills/sodiumview/internal/renderer/core"
	"github.com/dshills/sodiumview/internal/renderer/highlight"
	"github.com/dshills/sodiumview/internal/renderer/viewport"
)

// Config is the complete viewer configuration.
type Config struct {
	Display  DisplayConfig  `toml:"display" yaml:"display"`
	Geometry GeometryConfig `toml:"geometry" yaml:"geometry"`
	Theme    ThemeConfig    `toml:"theme" yaml:"theme"`
}

// DisplayConfig holds the rendering toggles.
type DisplayConfig struct {
	Highlight  bool `toml:"highlight" yaml:"highlight"`
	LineMarker bool `toml:"line_marker" yaml:"line_marker"`
}

// GeometryConfig overrides the surface cell metrics.
// Zero values keep the surface default.
type GeometryConfig struct {
	CellWidth  int `toml:"cell_width" yaml:"cell_width"`
	CellHeight int `toml:"cell_height" yaml:"cell_height"`
	RowPadding int `toml:"row_padding" yaml:"row_padding"`
}

// ThemeConfig holds colors as hex strings. Empty strings keep the default.
type ThemeConfig struct {
	Background string `toml:"background" yaml:"background"`
	LineMarker string `toml:"line_marker" yaml:"line_marker"`
	Cursor     string `toml:"cursor" yaml:"cursor"`
	StatusBand string `toml:"status_band" yaml:"status_band"`

	// Palette maps class names (string, operator, ...) to colors.
	Palette map[string]string `toml:"palette" yaml:"palette"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Highlight:  true,
			LineMarker: false,
		},
	}
}

// DisplayOptions returns the viewport options.
func (c *Config) DisplayOptions() viewport.Options {
	return viewport.Options{
		Highlight:  c.Display.Highlight,
		LineMarker: c.Display.LineMarker,
	}
}

// RenderOptions builds renderer options on top of base, which supplies
// the geometry defaults for the target surface.
func (c *Config) RenderOptions(base renderer.Options) (renderer.Options, error) {
	opts := base

	if c.Geometry.CellWidth > 0 {
		opts.Geometry.CellWidth = c.Geometry.CellWidth
	}
	if c.Geometry.CellHeight > 0 {
		opts.Geometry.CellHeight = c.Geometry.CellHeight
	}
	if c.Geometry.RowPadding > 0 {
		opts.Geometry.RowPadding = c.Geometry.RowPadding
	}

	theme, err := c.Theme.apply(base.Theme)
	if err != nil {
		return base, err
	}
	opts.Theme = theme
	return opts, nil
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	geom := []struct {
		path  string
		value int
	}{
		{"geometry.cell_width", c.Geometry.CellWidth},
		{"geometry.cell_height", c.Geometry.CellHeight},
		{"geometry.row_padding", c.Geometry.RowPadding},
	}
	for _, g := range geom {
		if g.value < 0 {
			errs = append(errs, &ValidationError{Path: g.path, Message: "must not be negative", Value: g.value})
		}
	}

	if _, err := c.Theme.apply(renderer.DefaultTheme()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// apply returns base with the configured colors replaced.
func (t ThemeConfig) apply(base renderer.Theme) (renderer.Theme, error) {
	out := base
	var errs []error

	colors := []struct {
		path  string
		value string
		dst   *core.Color
	}{
		{"theme.background", t.Background, &out.Background},
		{"theme.line_marker", t.LineMarker, &out.LineMarker},
		{"theme.cursor", t.Cursor, &out.CursorBlock},
		{"theme.status_band", t.StatusBand, &out.StatusBand},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		col, err := core.ColorFromHex(c.value)
		if err != nil {
			errs = append(errs, &ValidationError{Path: c.path, Message: "invalid color", Value: c.value})
			continue
		}
		*c.dst = col
	}

	overrides := make(highlight.Palette, len(t.Palette))
	names := make([]string, 0, len(t.Palette))
	for name := range t.Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := fmt.Sprintf("theme.palette.%s", name)
		class, ok := highlight.ParseClass(name)
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: "unknown color class", Value: name})
			continue
		}
		col, err := core.ColorFromHex(t.Palette[name])
		if err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: "invalid color", Value: t.Palette[name]})
			continue
		}
		overrides[class] = col
	}

	if len(errs) > 0 {
		return base, errors.Join(errs...)
	}
	if base.Palette == nil {
		base.Palette = highlight.DefaultPalette()
	}
	out.Palette = base.Palette.With(overrides)
	return out, nil
}

func paletteClassNames() []string {
	classes := highlight.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
