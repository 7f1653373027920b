// pong is a terminal Pong game played against a CPU opponent.
//
// Usage:
//
//	pong                     - Play (difficulty menu)
//	pong serve               - Start SSH server for remote play
//	pong scores              - Show past sessions
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pong/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - the classic paddle game in your terminal",
	Long: `Pong is a terminal rendition of the classic paddle game.
You control the left paddle against a CPU opponent with three
difficulty levels.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  1, 2, 3    - Select difficulty in the menu
  Tab        - Past sessions (from the menu)
  Esc        - Back to menu / quit
  Q/Ctrl+C   - Quit

Examples:
  pong
  pong --difficulty hard
  pong --config ./my-pong.yaml --mute
  pong serve --ssh :2222
  pong scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
