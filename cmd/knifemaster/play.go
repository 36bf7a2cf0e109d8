package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knife-master/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run right away",
	Long: `Skip the menu and start throwing.

Controls:
  Space      - Throw
  R          - Retry (after game over)
  B/Esc      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  knifemaster play
  knifemaster play --level 5
  knifemaster play --seed 42 --config ./my-knife.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
}

func runPlay(_ *cobra.Command, _ []string) {
	a := setupApp()
	cfg := runtimeConfig()
	sess := a.newSession(cfg)
	sess.PlayFrom(flagLevel)
	a.logger.Info("starting", "mode", "play", "level", flagLevel, "seed", cfg.Seed)

	err := tui.Run(sess, a.scores(), cfg)
	if err != nil {
		a.logger.Error("ui failed", "err", err)
	}
	a.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
