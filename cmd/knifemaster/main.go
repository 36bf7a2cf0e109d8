// knifemaster is a knife-throwing arcade game for the terminal.
//
// Usage:
//
//	knifemaster              - Start at the main menu
//	knifemaster play         - Jump straight into a run
//	knifemaster serve        - Start SSH server for remote play
//	knifemaster scores       - Show the leaderboard
//	knifemaster knives       - List the knife shop
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.knifemaster/knifemaster.db)
//	--config <path>  - Load tuning from a YAML file
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
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knifemaster",
	Short: "Knife Master - throw knives at a spinning log in your terminal",
	Long: `Knife Master is a terminal arcade game. Throw knives into a rotating
log without hitting the ones already stuck in it, collect apples and spend
them on new knives.

Available commands:
  menu     - Main menu (default)
  play     - Start a run right away
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  knives   - List the knives in the shop

Examples:
  knifemaster
  knifemaster play --level 5
  knifemaster serve --ssh :2222
  knifemaster scores --limit 20`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the database (default from KNIFE_MASTER_DB)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(knivesCmd)
}
