// Package registry maps game IDs to factories. Every playable level
// collection is one registered game, so the CLI, the menus and the SSH
// server find collections without knowing where they were loaded from.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game is what the terminal host drives: one collection of levels.
// Implementations never import Bubble Tea; the host owns input, timing
// and output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "sokoban").
	// Used for CLI commands and record storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh run. The RuntimeConfig provides screen dimensions.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the game to new screen dimensions without losing state.
	Resize(w, h int)

	// Step advances the game by one tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current level into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// LevelSelector is implemented by games made of numbered levels.
type LevelSelector interface {
	// LevelCount returns the number of levels.
	LevelCount() int

	// LevelTitle returns the title of level i (0-indexed).
	LevelTitle(i int) string

	// SetStartLevel selects the level (1-indexed) the next Reset starts on.
	// 0 means the first level.
	SetStartLevel(level int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// entry is a registered factory and the title of the game it makes.
type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Built-in packs call it from init(); user packs are added at startup.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	if !TryRegister(id, f) {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
}

// TryRegister adds a game factory unless the ID is taken.
// Reports whether the factory was added.
func TryRegister(id string, f Factory) bool {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		return false
	}
	// The title comes from a throwaway instance
	entries[id] = entry{factory: f, title: f().Title()}
	return true
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
