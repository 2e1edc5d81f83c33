package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietbloom/garden/internal/config"
	"github.com/quietbloom/garden/internal/garden"
	"github.com/quietbloom/garden/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plants and their growth stages",
	Long: `Show every plant in the bed with its seed, archetype, age, and
current growth stage.

Examples:
  garden list`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	gcfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plant database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	plants, err := store.Plants()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving plants: %v\n", err)
		os.Exit(1)
	}

	if len(plants) == 0 {
		fmt.Println("The bed is empty.")
		fmt.Println()
		fmt.Println("Run 'garden plant' to sow the first seed.")
		return
	}

	fmt.Printf("Garden bed - %d plant(s)\n\n", len(plants))
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "ID", "Seed", "Stage", "Age", "Kind")
	fmt.Printf("  %-4s  %-12s  %-6s  %-8s  %s\n", "--", "----", "-----", "---", "----")

	now := time.Now()
	for _, p := range plants {
		age := p.AgeDays(now, gcfg.Growth.Multiplier)
		stage := garden.StageForAge(age)
		preset := garden.GeneratePreset(p.Seed, stage)
		fmt.Printf("  %-4d  %-12d  %-6d  %-8s  %s\n",
			p.ID, p.Seed, stage, fmt.Sprintf("%.1fd", age), preset.Archetype)
	}
}
