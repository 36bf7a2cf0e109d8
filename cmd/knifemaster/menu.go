package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knife-master/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the main menu",
	Long: `Start Knife Master at the main menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Space        - Throw a knife
  B/Esc        - Back
  Q            - Quit

Examples:
  knifemaster menu
  knifemaster menu --fps 30
  knifemaster menu --db ./knifemaster.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := setupApp()
	defer a.close()

	cfg := runtimeConfig()
	sess := a.newSession(cfg)
	a.logger.Info("starting", "mode", "menu", "seed", cfg.Seed)

	if err := tui.Run(sess, a.scores(), cfg); err != nil {
		a.logger.Error("ui failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
