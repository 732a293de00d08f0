// Package config provides YAML-based configuration loading for the
// Sokoban host: board glyphs and colors, level flow timing and record limits.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Limits applied by Validate.
const (
	MinCellWidth = 1
	MaxCellWidth = 3
	MinTickRate  = 1
	MaxTickRate  = 120
	MaxRecords   = 100
)

// SokobanConfig contains all configuration for the Sokoban game.
type SokobanConfig struct {
	Display  SokobanDisplay  `yaml:"display"`
	Gameplay SokobanGameplay `yaml:"gameplay"`
	Records  SokobanRecords  `yaml:"records"`
}

// SokobanDisplay defines how the board is drawn.
type SokobanDisplay struct {
	CellWidth int        `yaml:"cell_width"` // Screen columns per board cell
	Glyphs    TileGlyphs `yaml:"glyphs"`
	Colors    TileColors `yaml:"colors"`
}

// TileGlyphs holds the text drawn for each kind of board cell.
// Glyphs shorter than the cell width are padded with spaces.
type TileGlyphs struct {
	Wall           string `yaml:"wall"`
	Floor          string `yaml:"floor"`
	Target         string `yaml:"target"`
	Box            string `yaml:"box"`
	BoxOnTarget    string `yaml:"box_on_target"`
	Player         string `yaml:"player"`
	PlayerOnTarget string `yaml:"player_on_target"`
}

// TileColors holds color names (see core.ParseColor) per kind of board cell.
type TileColors struct {
	Wall           string `yaml:"wall"`
	Floor          string `yaml:"floor"`
	Target         string `yaml:"target"`
	Box            string `yaml:"box"`
	BoxOnTarget    string `yaml:"box_on_target"`
	Player         string `yaml:"player"`
	PlayerOnTarget string `yaml:"player_on_target"`
}

// SokobanGameplay defines level flow.
type SokobanGameplay struct {
	AutoAdvance       bool `yaml:"auto_advance"`        // Move on after a solved level
	AdvanceDelayTicks int  `yaml:"advance_delay_ticks"` // Ticks the completion banner stays up
	TickRate          int  `yaml:"tick_rate"`           // Ticks per second
}

// SokobanRecords defines solve record listing.
type SokobanRecords struct {
	Limit int `yaml:"limit"` // Rows shown per level
}

// Validate clamps numeric settings into range, fills empty glyphs from
// the defaults and reports unknown color names.
func (c *SokobanConfig) Validate() error {
	def := DefaultSokobanConfig()

	c.Display.CellWidth = core.Clamp(c.Display.CellWidth, MinCellWidth, MaxCellWidth)
	c.Gameplay.TickRate = core.Clamp(c.Gameplay.TickRate, MinTickRate, MaxTickRate)
	c.Gameplay.AdvanceDelayTicks = max(c.Gameplay.AdvanceDelayTicks, 0)
	c.Records.Limit = core.Clamp(c.Records.Limit, 1, MaxRecords)

	g := &c.Display.Glyphs
	fillGlyph(&g.Wall, def.Display.Glyphs.Wall)
	fillGlyph(&g.Target, def.Display.Glyphs.Target)
	fillGlyph(&g.Box, def.Display.Glyphs.Box)
	fillGlyph(&g.BoxOnTarget, def.Display.Glyphs.BoxOnTarget)
	fillGlyph(&g.Player, def.Display.Glyphs.Player)
	fillGlyph(&g.PlayerOnTarget, def.Display.Glyphs.PlayerOnTarget)

	colors := c.Display.Colors
	for name, value := range map[string]string{
		"wall":             colors.Wall,
		"floor":            colors.Floor,
		"target":           colors.Target,
		"box":              colors.Box,
		"box_on_target":    colors.BoxOnTarget,
		"player":           colors.Player,
		"player_on_target": colors.PlayerOnTarget,
	} {
		if value == "" {
			continue
		}
		if _, ok := core.ParseColor(value); !ok {
			return fmt.Errorf("display.colors.%s: unknown color %q", name, value)
		}
	}
	return nil
}

// fillGlyph replaces an empty glyph. Floor may stay empty.
func fillGlyph(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Color resolves a configured color name; empty or unknown names map to
// the terminal default.
func Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
