package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietbloom/garden/internal/garden"
	"github.com/quietbloom/garden/internal/storage"
)

var flagSeed uint32

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Sow a new plant",
	Long: `Add a plant to the garden bed.

The seed fully determines the plant's shape at every growth stage; omit
--seed for a random one. The plant starts at stage 0 and advances one
stage per day, up to stage 5.

Examples:
  garden plant
  garden plant --seed 12345`,
	Run: runPlant,
}

func init() {
	plantCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "Plant seed (0 = random)")
}

func runPlant(cmd *cobra.Command, args []string) {
	seed := flagSeed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plant database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.CreatePlant(seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sowing plant: %v\n", err)
		os.Exit(1)
	}

	preset := garden.GeneratePreset(seed, 0)
	fmt.Printf("Sowed plant #%d (seed %d, %s)\n", id, seed, preset.Archetype)
	fmt.Println("Run 'garden run' to watch it grow.")
}
