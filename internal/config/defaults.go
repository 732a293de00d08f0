package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default Sokoban configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Display: SokobanDisplay{
			CellWidth: 2,
			Glyphs: TileGlyphs{
				Wall:           "██",
				Floor:          "",
				Target:         "··",
				Box:            "[]",
				BoxOnTarget:    "[]",
				Player:         "@",
				PlayerOnTarget: "@",
			},
			Colors: TileColors{
				Wall:           "gray",
				Floor:          "default",
				Target:         "bright_yellow",
				Box:            "orange",
				BoxOnTarget:    "bright_green",
				Player:         "bright_cyan",
				PlayerOnTarget: "bright_cyan",
			},
		},
		Gameplay: SokobanGameplay{
			AutoAdvance:       true,
			AdvanceDelayTicks: 45,
			TickRate:          30,
		},
		Records: SokobanRecords{
			Limit: 10,
		},
	}
}
