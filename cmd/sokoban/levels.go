package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <pack|file>",
	Short: "List the levels of a collection",
	Long: `Shows each level of a collection with its size and box count.

Examples:
  sokoban levels intro
  sokoban levels ./microban.slc`,
	Args: cobra.ExactArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	game, err := openPack(args[0])
	if err != nil {
		fail("%v", err)
	}
	c := game.Collection()

	fmt.Println(c.DisplayTitle())
	if c.Author != "" {
		fmt.Printf("by %s\n", c.Author)
	}
	if c.Description != "" {
		fmt.Println(c.Description)
	}
	fmt.Println()

	fmt.Printf("  %-4s  %-24s  %-7s  %s\n", "#", "Title", "Size", "Boxes")
	fmt.Printf("  %-4s  %-24s  %-7s  %s\n", "-", "-----", "----", "-----")

	for i := range c.Len() {
		level := c.Level(i)
		w, h := level.Extents()
		fmt.Printf("  %-4d  %-24s  %-7s  %d\n", i+1, game.LevelTitle(i), fmt.Sprintf("%dx%d", w, h), len(level.Boxes()))
	}
}
