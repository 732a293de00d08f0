package sokoban

import (
	"slices"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// Built-in game IDs.
const (
	GameID       = "sokoban"
	WarmupGameID = "sokoban_warmup"
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(GameID, levels.MustBuiltin("intro"))
	})
	registry.Register(WarmupGameID, func() registry.Game {
		return New(WarmupGameID, levels.MustBuiltin("warmup"))
	})
}

// GameIDFor returns the registry ID used for a collection. Only the
// embedded collections map to the built-in IDs.
func GameIDFor(c *levels.Collection) string {
	if c.FilePath == "" {
		switch c.ID {
		case "intro":
			return GameID
		case "warmup":
			return WarmupGameID
		}
	}
	return GameID + "_" + c.ID
}

// Register makes a loaded collection playable through the registry and
// returns its game ID. A file collection that reuses a built-in ID is
// recorded as "user_<id>". Reports false when the ID was already taken
// and c was not registered.
func Register(c *levels.Collection) (string, bool) {
	if c.FilePath != "" && slices.Contains(levels.BuiltinNames(), c.ID) {
		renamed := *c
		renamed.ID = "user_" + c.ID
		c = &renamed
	}

	id := GameIDFor(c)
	added := registry.TryRegister(id, func() registry.Game {
		return New(id, c)
	})
	return id, added
}

// PackInfo describes a registered collection.
type PackInfo struct {
	GameID       string
	CollectionID string
	Title        string
	Levels       int
}

// Packs lists every registered Sokoban collection, sorted by game ID.
func Packs() []PackInfo {
	var packs []PackInfo
	for _, info := range registry.List() {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		sg, ok := g.(*Game)
		if !ok {
			continue
		}
		packs = append(packs, PackInfo{
			GameID:       info.ID,
			CollectionID: sg.Collection().ID,
			Title:        sg.Collection().DisplayTitle(),
			Levels:       sg.LevelCount(),
		})
	}
	return packs
}

// CollectionID returns the records key of a game: the collection ID for
// Sokoban games and the game ID otherwise.
func CollectionID(g registry.Game) string {
	if sg, ok := g.(*Game); ok {
		return sg.Collection().ID
	}
	return g.ID()
}
