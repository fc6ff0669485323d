// slide16 is a terminal sliding-tile merging puzzle.
//
// Usage:
//
//	slide16 list              - List available game modes
//	slide16 play [mode]       - Play (campaign by default)
//	slide16 menu              - Start the interactive menu
//	slide16 serve             - Start SSH server for remote play
//	slide16 scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.slide16/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/tilearcade/slide16/internal/games/slide16"
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
	Use:   "slide16",
	Short: "Slide16 - A sliding-tile merging puzzle for your terminal",
	Long: `Slide16 is a terminal puzzle where you slide tiles across a 4x4
grid, merging equal tiles into bigger ones.

Available commands:
  list     - Show available game modes
  play     - Play directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  slide16 play
  slide16 menu
  slide16 serve --ssh :2222
  slide16 scores slide16`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide16/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
