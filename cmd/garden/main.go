// garden is a terminal focus garden: a small procedurally-generated bed of
// plants that grow while you stay focused.
//
// Usage:
//
//	garden run               - Open the garden view
//	garden plant             - Sow a new plant
//	garden list              - List plants and their growth stages
//	garden serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>     - Set render tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.garden/garden.db)
//	--config <path>  - Path to a custom garden config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "garden",
	Short: "Focus Garden - grow a procedural garden in your terminal",
	Long: `Focus Garden renders a small procedurally-generated garden whose
plants grow only while you are in a focus session.

Every plant's shape comes from a single 32-bit seed: the same seed always
grows the same plant. Plants advance one growth stage per focused day, up
to five stages.

Available commands:
  run      - Open the garden view
  plant    - Sow a new plant
  list     - Show the bed and each plant's stage
  serve    - Start SSH server for remote viewing

Examples:
  garden run
  garden plant --seed 12345
  garden list
  garden serve --ssh :23235`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.garden/garden.db", "Path to plant database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(plantCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}
