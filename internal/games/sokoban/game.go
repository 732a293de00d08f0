// Package sokoban hosts a level collection as a playable game: it keeps the
// live level next to a pristine copy for resets, maps platform actions to
// moves and walks through the collection as levels are solved.
package sokoban

import (
	"strconv"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	engine "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Game implements registry.Game for one level collection.
type Game struct {
	id   string
	pack *levels.Collection

	cfg         config.SokobanConfig
	cfgOverride *config.SokobanConfig
	theme       theme
	runtime     core.RuntimeConfig

	tick       uint64
	index      int           // Current level (0-indexed)
	level      *engine.Level // Live level being played
	startLevel int           // 1-indexed level for the next Reset, 0 = first

	completed  bool // Current level solved, banner showing
	clearTicks int  // Ticks since the current level was solved
	finished   bool // Last level solved
	tooSmall   bool
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets a custom config file path for every Sokoban game.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game over the given collection.
func New(id string, pack *levels.Collection) *Game {
	return &Game{
		id:   id,
		pack: pack,
	}
}

// WithConfig makes Reset use cfg instead of loading configuration.
func (g *Game) WithConfig(cfg config.SokobanConfig) *Game {
	g.cfgOverride = &cfg
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban: " + g.pack.DisplayTitle()
}

// Collection returns the collection being played.
func (g *Game) Collection() *levels.Collection {
	return g.pack
}

// LevelCount returns the number of levels in the collection.
func (g *Game) LevelCount() int {
	return g.pack.Len()
}

// LevelTitle returns the title of level i, or "Level N" when it has none.
func (g *Game) LevelTitle(i int) string {
	if i < 0 || i >= g.pack.Len() {
		return ""
	}
	return levelTitle(g.pack.Levels[i], i)
}

// SetStartLevel selects the level (1-indexed) the next Reset starts on.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.SokobanConfig {
	return g.cfg
}

// Reset loads configuration and starts at the selected level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.cfgOverride != nil {
		g.cfg = *g.cfgOverride
	} else {
		cfg, err := config.LoadSokoban(configPath)
		if err != nil {
			cfg = config.DefaultSokobanConfig()
		}
		g.cfg = cfg
	}
	g.theme = newTheme(g.cfg.Display)

	if runtime.TickRate <= 0 {
		runtime.TickRate = g.cfg.Gameplay.TickRate
	}
	g.runtime = runtime
	g.tick = 0
	g.finished = false

	index := 0
	if g.startLevel > 0 && g.startLevel <= g.pack.Len() {
		index = g.startLevel - 1
	}
	g.startLevel = 0 // Reset after use

	g.loadLevel(index)
}

// TickRate returns the simulation rate in effect since the last Reset.
func (g *Game) TickRate() int {
	return g.runtime.TickRate
}

// Resize adapts to new screen dimensions keeping the puzzle state.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// loadLevel replaces the live level with a fresh copy of level i.
func (g *Game) loadLevel(i int) {
	g.index = i
	g.level = g.pack.Level(i)
	if g.level == nil {
		g.level = engine.MustParse("@")
	}
	// A level with nothing left to do counts as solved right away.
	g.completed = g.level.IsCompleted()
	g.clearTicks = 0
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD and the board.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	screen := core.NewRect(0, 0, g.runtime.ScreenW, g.runtime.ScreenH)
	g.tooSmall = !screen.Fits(max(w, minScreenW), h+hudHeight+footerHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case in.Has(core.ActionRestart):
		g.finished = false
		g.loadLevel(g.index)
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionNext):
		if g.index+1 < g.pack.Len() {
			g.finished = false
			g.loadLevel(g.index + 1)
		}
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionPrev):
		if g.index > 0 {
			g.finished = false
			g.loadLevel(g.index - 1)
		}
		return core.StepResult{State: g.State()}
	}

	if g.finished || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle the completion banner. The last level always finishes the run.
	if g.completed {
		g.clearTicks++
		last := g.index >= g.pack.Len()-1
		if (g.cfg.Gameplay.AutoAdvance || last) && g.clearTicks >= g.cfg.Gameplay.AdvanceDelayTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	result := core.StepResult{}
	for _, a := range in.Moves() {
		g.level.Step(directionFor(a))
		if g.level.IsCompleted() {
			g.completed = true
			g.clearTicks = 0
			result.Cleared = &core.ClearedLevel{
				Index:  g.index,
				Title:  g.LevelTitle(g.index),
				Steps:  g.level.Steps(),
				Pushes: g.level.Pushes(),
			}
			break
		}
	}

	result.State = g.State()
	return result
}

// advanceLevel moves to the next level, or marks the run finished after
// the last one.
func (g *Game) advanceLevel() {
	if g.index >= g.pack.Len()-1 {
		g.finished = true
		return
	}
	g.loadLevel(g.index + 1)
}

// directionFor maps a movement action to a direction. Callers only pass
// actions for which IsMove is true.
func directionFor(a core.Action) engine.Direction {
	switch a {
	case core.ActionUp:
		return engine.Up
	case core.ActionDown:
		return engine.Down
	case core.ActionLeft:
		return engine.Left
	default:
		return engine.Right
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level:      g.index,
		LevelTitle: g.LevelTitle(g.index),
		Steps:      g.level.Steps(),
		Pushes:     g.level.Pushes(),
		Completed:  g.completed,
		Finished:   g.finished,
	}
}

// Level returns a copy of the live level.
func (g *Game) Level() *engine.Level {
	return g.level.Clone()
}

func levelTitle(l *engine.Level, i int) string {
	if l.Title() != "" {
		return l.Title()
	}
	return "Level " + strconv.Itoa(i+1)
}

var _ registry.Game = (*Game)(nil)
var _ registry.LevelSelector = (*Game)(nil)
