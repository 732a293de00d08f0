package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	engine "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight    = 3 // Title, status line and separator
	footerHeight = 1 // Key hints
	minScreenW   = 40
)

const keyHints = "arrows/wasd move  r reset  n next  p prev  q quit"

// boardSize returns the board dimensions in screen cells.
func (g *Game) boardSize() (int, int) {
	w, h := g.level.Extents()
	return w * g.theme.cellWidth, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	w, h := g.boardSize()
	board := area.CenterIn(w, h)
	g.renderBoard(dst, board)

	dst.DrawTextCenteredColored(dst.Height()-1, keyHints, core.ColorGray)

	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := g.boardSize()
	hint := fmt.Sprintf("Need %dx%d", max(w, minScreenW), h+hudHeight+footerHeight)
	dst.DrawTextCentered(y+1, hint)
}

// renderHUD draws the pack title, level info and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightWhite)

	info := fmt.Sprintf("Level %d/%d: %s", g.index+1, g.pack.Len(), g.LevelTitle(g.index))
	dst.DrawText(1, 1, info)

	counters := fmt.Sprintf("Steps %d  Pushes %d  Left %d", g.level.Steps(), g.level.Pushes(), g.level.Remaining())
	dst.DrawText(dst.Width()-utf8.RuneCountInString(counters)-1, 1, counters)

	dst.DrawHLine(0, 2, dst.Width(), '─')
}

// renderBoard draws every cell of the level inside r.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	w, h := g.level.Extents()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			t := g.level.TileAt(engine.NewPosition(row, col))
			g.theme.draw(dst, r.X+col*g.theme.cellWidth, r.Y+row, t)
		}
	}
}

// renderOverlays draws the completion banners.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.finished:
		drawBanner(dst, core.ColorBrightGreen,
			"All levels solved!",
			fmt.Sprintf("%s: %d levels", g.pack.DisplayTitle(), g.pack.Len()),
			"r replay  p previous  q quit",
		)
	case g.completed:
		hint := "n next level"
		switch {
		case g.index >= g.pack.Len()-1:
			hint = "Well done"
		case g.cfg.Gameplay.AutoAdvance:
			hint = "Next level coming up..."
		}
		drawBanner(dst, core.ColorBrightYellow,
			"Level solved!",
			fmt.Sprintf("%d steps, %d pushes", g.level.Steps(), g.level.Pushes()),
			hint,
		)
	}
}

// drawBanner draws a boxed message centered on the screen.
func drawBanner(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	box := dst.Bounds().CenterIn(width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
