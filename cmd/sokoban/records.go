package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagRecordsLevel int
	flagInteractive  bool
)

var recordsCmd = &cobra.Command{
	Use:   "records <pack|file>",
	Short: "Show best solves for a collection",
	Long: `Display the best solve of every level in a collection, or the top
solves of one level with --level.

Examples:
  sokoban records intro
  sokoban records intro --level 2
  sokoban records warmup --interactive`,
	Args: cobra.ExactArgs(1),
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLevel, "level", 0, "Show the top solves of one level (1-indexed)")
	recordsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in a table")
}

func runRecords(_ *cobra.Command, args []string) {
	game, err := openPack(args[0])
	if err != nil {
		fail("%v", err)
	}
	c := game.Collection()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening records database: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		if _, err := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH, c.ID); err != nil {
			fail("%v", err)
		}
		return
	}

	var records []storage.Record
	if flagRecordsLevel > 0 {
		if flagRecordsLevel > c.Len() {
			fail("level %d out of range (1-%d)", flagRecordsLevel, c.Len())
		}
		cfg, cfgErr := config.LoadSokoban(flagConfig)
		if cfgErr != nil {
			fail("%v", cfgErr)
		}
		records, err = store.TopRecords(c.ID, flagRecordsLevel-1, cfg.Records.Limit)
		fmt.Printf("Top solves - %s, level %d (%s)\n", c.DisplayTitle(), flagRecordsLevel, game.LevelTitle(flagRecordsLevel-1))
	} else {
		records, err = store.BestRecords(c.ID)
		fmt.Printf("Best solves - %s\n", c.DisplayTitle())
	}
	if err != nil {
		fail("retrieving records: %v", err)
	}
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", args[0])
		return
	}

	fmt.Printf("  %-5s  %-24s  %-6s  %-6s  %s\n", "Level", "Title", "Steps", "Pushes", "Date")
	fmt.Printf("  %-5s  %-24s  %-6s  %-6s  %s\n", "-----", "-----", "-----", "------", "----")

	for _, r := range records {
		fmt.Printf("  %-5d  %-24s  %-6d  %-6d  %s\n",
			r.LevelIndex+1, r.LevelTitle, r.Steps, r.Pushes, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.CollectionStats(c.ID); err == nil {
		fmt.Println()
		fmt.Printf("Solved %d of %d levels in %d solves\n", stats.LevelsSolved, c.Len(), stats.Solves)
	}
}
