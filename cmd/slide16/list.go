package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilearcade/slide16/internal/registry"
	"github.com/tilearcade/slide16/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available game modes",
	Long:  `Shows a list of all registered game modes with their best scores.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	// Best scores are optional; the list still works without a database.
	var allStats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		allStats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
		if len(g.Title) > maxTitleLen {
			maxTitleLen = len(g.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	// Print modes
	for _, g := range games {
		best := "-"
		if st, ok := allStats[g.ID]; ok {
			best = fmt.Sprintf("%d", st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'slide16 play <id>' to play.")
}
