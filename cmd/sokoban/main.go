// sokoban is a terminal Sokoban player for SLC and YAML level collections.
//
// Usage:
//
//	sokoban list                      - List built-in and user collections
//	sokoban levels <pack|file>        - List the levels of a collection
//	sokoban play [pack|file]          - Play a collection (menu when omitted)
//	sokoban verify <pack|file>        - Replay a LURD solution against a level
//	sokoban records <pack|file>       - Show best solves for a collection
//	sokoban serve                     - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.sokoban/records.db)
//	--config <path>  - Use a custom sokoban.yaml
//	--packs <dir>    - Directory of user collections (default: ~/.sokoban/packs)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var (
	// Global flags
	flagDBPath    string
	flagConfig    string
	flagPacksPath string
)

// logger reports warnings that do not stop a command.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "sokoban",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every box onto a target.

Levels come from built-in collections or from SLC (.slc, .xml) and
YAML (.yaml, .yml) collection files.

Available commands:
  list     - Show built-in and user collections
  levels   - Show the levels of a collection
  play     - Play a collection
  verify   - Check a solution in LURD notation
  records  - View best solves
  serve    - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play intro --level 2
  sokoban play ./microban.slc
  sokoban verify intro --level 1 --moves rr
  sokoban serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := checkConfig(flagConfig); err != nil {
			fail("%v", err)
		}
		sokoban.SetConfigPath(flagConfig)
	},
}

// checkConfig reports an explicit config file that cannot be read or
// parsed. Without --config the built-in lookup and defaults apply.
func checkConfig(path string) error {
	if path == "" {
		return nil
	}
	_, err := config.LoadSokoban(path)
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom sokoban.yaml")
	rootCmd.PersistentFlags().StringVar(&flagPacksPath, "packs", "~/.sokoban/packs", "Directory of user level collections")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
