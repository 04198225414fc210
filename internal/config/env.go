package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "SODIUM_"

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from the process environment.
func (c *Config) ApplyEnv() error {
	return c.ApplyEnvFrom(os.LookupEnv)
}

// ApplyEnvFrom overrides settings using lookup. Recognized variables:
//
//	SODIUM_DISPLAY_HIGHLIGHT    SODIUM_THEME_BACKGROUND
//	SODIUM_DISPLAY_LINE_MARKER  SODIUM_THEME_LINE_MARKER
//	SODIUM_GEOMETRY_CELL_WIDTH  SODIUM_THEME_CURSOR
//	SODIUM_GEOMETRY_CELL_HEIGHT SODIUM_THEME_STATUS_BAND
//	SODIUM_GEOMETRY_ROW_PADDING SODIUM_PALETTE_<CLASS>
func (c *Config) ApplyEnvFrom(lookup LookupFunc) error {
	bools := map[string]*bool{
		"DISPLAY_HIGHLIGHT":   &c.Display.Highlight,
		"DISPLAY_LINE_MARKER": &c.Display.LineMarker,
	}
	for name, dst := range bools {
		val, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, ok := parseBool(val)
		if !ok {
			return &ValidationError{Path: EnvPrefix + name, Message: "expected a boolean", Value: val}
		}
		*dst = b
	}

	ints := map[string]*int{
		"GEOMETRY_CELL_WIDTH":  &c.Geometry.CellWidth,
		"GEOMETRY_CELL_HEIGHT": &c.Geometry.CellHeight,
		"GEOMETRY_ROW_PADDING": &c.Geometry.RowPadding,
	}
	for name, dst := range ints {
		val, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return &ValidationError{Path: EnvPrefix + name, Message: "expected an integer", Value: val}
		}
		*dst = n
	}

	strs := map[string]*string{
		"THEME_BACKGROUND":  &c.Theme.Background,
		"THEME_LINE_MARKER": &c.Theme.LineMarker,
		"THEME_CURSOR":      &c.Theme.Cursor,
		"THEME_STATUS_BAND": &c.Theme.StatusBand,
	}
	for name, dst := range strs {
		if val, ok := lookup(EnvPrefix + name); ok {
			*dst = val
		}
	}

	for _, class := range paletteClassNames() {
		val, ok := lookup(EnvPrefix + "PALETTE_" + strings.ToUpper(class))
		if !ok {
			continue
		}
		if c.Theme.Palette == nil {
			c.Theme.Palette = make(map[string]string)
		}
		c.Theme.Palette[class] = val
	}
	return nil
}

// parseBool accepts the usual spellings of true and false.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	default:
		return false, false
	}
}
