package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quietbloom/garden/internal/config"
	"github.com/quietbloom/garden/internal/core"
	"github.com/quietbloom/garden/internal/focus"
	"github.com/quietbloom/garden/internal/platform/tui"
	"github.com/quietbloom/garden/internal/storage"
)

var flagSession time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the garden view",
	Long: `Open the garden in the current terminal.

Controls:
  n          - Sow a new plant
  f          - Toggle the focus session
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The garden pauses rendering whenever the terminal loses focus and resumes
when focus returns. Plants keep their age either way; only the drawing
stops.

Examples:
  garden run
  garden run --fps 60
  garden run --session 25m
  garden run --config ./my-garden.yaml`,
	Run: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&flagSession, "session", 0, "Timed focus session length (e.g. 25m); 0 keeps the manual toggle")
}

// resolveTickRate prefers an explicitly set --fps flag over the config
// file value; the flag's default would otherwise always shadow the config.
func resolveTickRate(flagSet bool, flagVal, cfgVal int) int {
	if flagSet {
		return flagVal
	}
	return cfgVal
}

func runRun(cmd *cobra.Command, args []string) {
	gcfg, err := config.LoadGarden(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: resolveTickRate(cmd.Flags().Changed("fps"), flagFPS, gcfg.Render.TickRate),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening plant database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var sig focus.Signal
	if flagSession > 0 {
		sig = focus.NewSchedule(time.Now(), flagSession)
	}

	if err := tui.Run(store, cfg, gcfg, sig); err != nil {
		fmt.Fprintf(os.Stderr, "Error running garden: %v\n", err)
		os.Exit(1)
	}
}
