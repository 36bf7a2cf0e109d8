package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/knife-master/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show the leaderboard",
	Long: `Display the best runs. With a player name, shows that player's runs
and statistics instead; SSH players are stored under their user name.

Examples:
  knifemaster scores
  knifemaster scores --limit 20
  knifemaster scores alice
  knifemaster scores alice --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the player's runs")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(dbPath(loadEnv()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a player name")
			return
		}
		showLeaderboard(store)
		return
	}

	player := args[0]
	if flagClear {
		if err := store.ClearScores(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared runs of %s.\n", player)
		return
	}
	showPlayer(store, player)
}

func showLeaderboard(store *storage.Store) {
	scores, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Knife Master")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'knifemaster play' to set the first high score!")
		return
	}
	printRuns(scores, true)
}

func showPlayer(store *storage.Store, player string) {
	stats, err := store.GetPlayerStats(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if stats.RunsCount == 0 {
		fmt.Printf("No runs recorded for %s.\n", player)
		return
	}

	fmt.Printf("Runs - %s\n", player)
	fmt.Println()
	fmt.Printf("  Runs:        %s\n", humanize.Comma(int64(stats.RunsCount)))
	fmt.Printf("  Best score:  %s\n", humanize.Comma(int64(stats.HighScore)))
	fmt.Printf("  Best level:  %d\n", stats.BestLevel)
	fmt.Printf("  Average:     %s\n", humanize.FormatFloat("#,###.#", stats.AvgScore))
	fmt.Printf("  Total:       %s\n", humanize.Comma(stats.TotalScore))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", humanize.Time(stats.LastPlayed))
	}
	fmt.Println()

	runs, err := store.PlayerScores(player, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	printRuns(runs, false)
}

func printRuns(runs []storage.ScoreEntry, withPlayer bool) {
	if withPlayer {
		fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "When")
		fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "When")
		fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	}

	for i, r := range runs {
		when := "-"
		if !r.CreatedAt.IsZero() {
			when = humanize.Time(r.CreatedAt)
		}
		score := humanize.Comma(int64(r.Score))
		if withPlayer {
			player := r.Player
			if player == "" {
				player = "local"
			}
			fmt.Printf("  %-4d  %-14s  %-8s  %-5d  %s\n", i+1, player, score, r.Level, when)
		} else {
			fmt.Printf("  %-4d  %-8s  %-5d  %s\n", i+1, score, r.Level, when)
		}
	}
}
