package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var (
	flagMoves       string
	flagVerifyLevel int
)

var verifyCmd = &cobra.Command{
	Use:   "verify <pack|file>",
	Short: "Check a solution against a level",
	Long: `Replays a move string in LURD notation (l, u, r, d; case is ignored)
against a level and reports whether it solves it. Exits with status 1
when the level is left unsolved.

Examples:
  sokoban verify intro --level 1 --moves rr
  sokoban verify ./microban.slc --level 4 --moves "uullDR"`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&flagVerifyLevel, "level", 1, "Level to verify (1-indexed)")
	verifyCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves in LURD notation")
	_ = verifyCmd.MarkFlagRequired("moves")
}

// verifyResult is the outcome of replaying a solution.
type verifyResult struct {
	Title     string
	Moves     int // Moves that changed the level
	Steps     int
	Pushes    int
	Remaining int
	Solved    bool
}

// verifySolution replays moves against level n (1-indexed) of c.
func verifySolution(c *levels.Collection, n int, moves string) (verifyResult, error) {
	if n < 1 || n > c.Len() {
		return verifyResult{}, fmt.Errorf("level %d out of range (1-%d)", n, c.Len())
	}

	level := c.Level(n - 1)
	applied, err := level.Replay(moves)
	if err != nil {
		return verifyResult{}, fmt.Errorf("level %d: %w", n, err)
	}

	return verifyResult{
		Title:     level.Title(),
		Moves:     applied,
		Steps:     level.Steps(),
		Pushes:    level.Pushes(),
		Remaining: level.Remaining(),
		Solved:    level.IsCompleted(),
	}, nil
}

func runVerify(_ *cobra.Command, args []string) {
	game, err := openPack(args[0])
	if err != nil {
		fail("%v", err)
	}

	result, err := verifySolution(game.Collection(), flagVerifyLevel, flagMoves)
	if err != nil {
		fail("%v", err)
	}

	title := game.LevelTitle(flagVerifyLevel - 1)
	if result.Solved {
		fmt.Printf("Level %d (%s): solved in %d steps, %d pushes\n", flagVerifyLevel, title, result.Steps, result.Pushes)
		return
	}

	fmt.Printf("Level %d (%s): not solved, %d boxes left after %d steps\n", flagVerifyLevel, title, result.Remaining, result.Steps)
	os.Exit(1)
}
