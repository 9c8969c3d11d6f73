package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all editions",
	Long:  `Shows every registered edition of the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No editions available.")
		return
	}

	fmt.Println("Available editions:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title"
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'midway play <id>' to play an edition.")
}
