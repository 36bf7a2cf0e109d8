package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knife-master/internal/catalog"
	"github.com/vovakirdan/knife-master/internal/profile"
	"github.com/vovakirdan/knife-master/internal/storage"
)

var knivesCmd = &cobra.Command{
	Use:   "knives",
	Short: "List the knives in the shop",
	Long: `Shows every knife, its price and whether the local player owns it.

Buy knives in game from the SHOP screen with the apples you collect.`,
	Args: cobra.NoArgs,
	Run:  runKnives,
}

func runKnives(_ *cobra.Command, _ []string) {
	prof := profile.Defaults()
	if store, err := storage.Open(dbPath(loadEnv())); err == nil {
		prof, _ = store.LoadProfile(profile.KeyFor(""))
		store.Close()
	}

	knives := catalog.All()
	maxIDLen := 2 // "ID" header
	for _, k := range knives {
		maxIDLen = max(maxIDLen, len(k.ID))
	}

	fmt.Printf("Knives (you have %d apples):\n", prof.Apples)
	fmt.Println()
	fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxIDLen, "ID", "Name", "Cost", "")
	fmt.Printf("  %-*s  %-16s  %6s  %s\n", maxIDLen, "--", "----", "----", "")

	for _, k := range knives {
		status := ""
		switch {
		case k.ID == prof.SelectedKnifeID:
			status = "equipped"
		case prof.IsUnlocked(k.ID):
			status = "owned"
		}
		fmt.Printf("  %-*s  %-16s  %6d  %s\n", maxIDLen, k.ID, k.Name, k.Cost, status)
	}
}
