package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [pack|file]",
	Short: "Play a collection",
	Long: `Play a Sokoban collection. Without an argument a collection menu is
shown first; without --level a level picker is shown.

Controls:
  Arrows/WASD/hjkl - Move
  R                - Restart level
  N / P            - Next / previous level
  Esc/B            - Back to level picker
  Ctrl+S           - Save screenshot
  Q/Ctrl+C         - Quit

Examples:
  sokoban play
  sokoban play intro
  sokoban play warmup --level 3
  sokoban play ./microban.slc --config ./my-sokoban.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start at (1-indexed, skips the picker)")
}

// terminalConfig returns a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{ScreenW: width, ScreenH: height}
}

// openStore opens the records database, or returns nil so play continues
// without records.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := terminalConfig()
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if len(args) == 0 {
		registerUserPacks()
		if err := runMenuLoop(store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	game, err := openPack(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available collections.")
		return
	}

	if flagLevel > 0 {
		if flagLevel > game.LevelCount() {
			fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagLevel, game.LevelCount())
			return
		}
		game.SetStartLevel(flagLevel)
		if _, err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		return
	}

	if _, err := runLevelLoop(game, store, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// runMenuLoop shows the collection menu until the user quits.
func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsRecords:
			back, err := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH, "")
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := createGame(result.GameID)
			if err != nil {
				return err
			}
			quit, err := runLevelLoop(game, store, cfg)
			if err != nil || quit {
				return err
			}
		}
	}
}

// runLevelLoop alternates between the level picker and play until the
// user backs out (quit false) or quits (quit true).
func runLevelLoop(game *sokoban.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	for {
		level, quit, err := tui.RunLevelMenu(game, store, cfg)
		if err != nil || quit {
			return quit, err
		}
		if level == 0 {
			return false, nil
		}

		game.SetStartLevel(level)
		back, err := tui.Run(game, store, cfg)
		if err != nil {
			return false, err
		}
		if !back {
			return true, nil
		}
	}
}
