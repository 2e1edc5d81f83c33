package config

import (
	_ "embed"
)

//go:embed defaults/garden.yaml
var defaultGardenYAML []byte

// DefaultGardenConfig returns the hardcoded default configuration, used as
// the last fallback if the embedded YAML fails to parse.
func DefaultGardenConfig() GardenConfig {
	return GardenConfig{
		Bed: BedConfig{
			Columns:   5,
			MaxPlants: 15,
		},
		Render: RenderConfig{
			TickRate: 30,
		},
		Sway: SwayConfig{
			Amplitude: 2.0,
			Speed:     0.35,
		},
		Growth: GrowthConfig{
			Multiplier: 1.0,
		},
	}
}
