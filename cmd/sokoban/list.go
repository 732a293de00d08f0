package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available collections",
	Long: `Shows the built-in collections and every collection found in the
--packs directory, with how many levels you have solved in each.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	registerUserPacks()
	packs := sokoban.Packs()

	if len(packs) == 0 {
		fmt.Println("No collections available.")
		return
	}

	solved := make(map[string]int)
	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open records database", "error", err)
	} else {
		if stats, statsErr := store.AllCollectionStats(); statsErr == nil {
			for id, st := range stats {
				solved[id] = st.LevelsSolved
			}
		}
		store.Close()
	}

	fmt.Println("Available collections:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.CollectionID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Solved", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		progress := fmt.Sprintf("%d/%d", solved[p.CollectionID], p.Levels)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, p.CollectionID, progress, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a collection.")
}
