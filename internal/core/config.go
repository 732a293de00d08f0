package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to drive timed overlays.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second for timers (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level      int    // Current level (0-indexed)
	LevelTitle string // Title of the current level
	Steps      int    // Steps taken in the current level
	Pushes     int    // Box pushes in the current level
	Completed  bool   // Whether the current level is solved
	Finished   bool   // Whether the last level has been solved
}

// ClearedLevel describes a level that was just solved.
type ClearedLevel struct {
	Index  int
	Title  string
	Steps  int
	Pushes int
}

// StepResult is returned by Game.Step() after each input frame or tick.
type StepResult struct {
	State GameState

	// Cleared is set exactly once, on the step that solves a level.
	Cleared *ClearedLevel
}
