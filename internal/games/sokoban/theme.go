package sokoban

import (
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	engine "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// glyph is the fixed-width text drawn for one board cell.
type glyph struct {
	runes []rune
	color core.Color
}

// theme resolves configured glyphs and colors per tile.
type theme struct {
	cellWidth int
	tiles     map[engine.Tile]glyph
}

func newTheme(d config.SokobanDisplay) theme {
	width := max(d.CellWidth, 1)
	g, c := d.Glyphs, d.Colors

	return theme{
		cellWidth: width,
		tiles: map[engine.Tile]glyph{
			engine.TileFloor:          newGlyph(g.Floor, c.Floor, width),
			engine.TileWall:           newGlyph(g.Wall, c.Wall, width),
			engine.TileSquare:         newGlyph(g.Target, c.Target, width),
			engine.TileBox:            newGlyph(g.Box, c.Box, width),
			engine.TileBoxOnSquare:    newGlyph(g.BoxOnTarget, c.BoxOnTarget, width),
			engine.TilePlayer:         newGlyph(g.Player, c.Player, width),
			engine.TilePlayerOnSquare: newGlyph(g.PlayerOnTarget, c.PlayerOnTarget, width),
		},
	}
}

// newGlyph pads or truncates text to exactly width runes.
func newGlyph(text, color string, width int) glyph {
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return glyph{runes: runes, color: config.Color(color)}
}

// draw writes the glyph for tile t with its left edge at (x, y).
func (th theme) draw(dst *core.Screen, x, y int, t engine.Tile) {
	gl := th.tiles[t]
	for i, r := range gl.runes {
		dst.SetColored(x+i, y, r, gl.color)
	}
}
