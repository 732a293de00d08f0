package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// registerUserPacks loads every collection under the --packs directory
// into the registry. Broken files are logged and skipped.
func registerUserPacks() {
	collections, skipped, err := levels.NewLoader(expandHome(flagPacksPath)).LoadAll()
	if err != nil {
		logger.Warn("could not scan packs directory", "path", flagPacksPath, "error", err)
		return
	}
	for _, loadErr := range skipped {
		logger.Warn("skipping collection", "error", loadErr)
	}
	for _, c := range collections {
		if id, added := sokoban.Register(c); !added {
			logger.Warn("collection already registered", "id", id, "path", c.FilePath)
		}
	}
}

// openPack finds a collection by game ID, collection ID or file path and
// returns a fresh game for it.
func openPack(name string) (*sokoban.Game, error) {
	registerUserPacks()

	for _, p := range sokoban.Packs() {
		if p.GameID == name || p.CollectionID == name {
			return createGame(p.GameID)
		}
	}

	c, err := levels.LoadFile(name)
	if err != nil {
		return nil, err
	}
	id, _ := sokoban.Register(c)
	return createGame(id)
}

// createGame instantiates a registered Sokoban game.
func createGame(id string) (*sokoban.Game, error) {
	g, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	sg, ok := g.(*sokoban.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not a Sokoban collection", id)
	}
	return sg, nil
}
