package sokoban

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateFinished     GameStateType = "finished"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and replay checks.
type Snapshot struct {
	Tick      uint64
	Level     int // Current level (1-indexed for display)
	Title     string
	Steps     int
	Pushes    int
	Remaining int    // Squares still without a box
	Board     string // Level in grammar form
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.finished:
		state = StateFinished
	case g.completed:
		state = StateLevelCleared
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.index + 1,
		Title:     g.LevelTitle(g.index),
		Steps:     g.level.Steps(),
		Pushes:    g.level.Pushes(),
		Remaining: g.level.Remaining(),
		Board:     g.level.String(),
		State:     state,
	}
}
