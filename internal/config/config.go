// Package config provides YAML-based configuration loading for the garden.
package config

// GardenConfig contains all configuration for the garden renderer.
type GardenConfig struct {
	Bed    BedConfig    `yaml:"bed"`
	Render RenderConfig `yaml:"render"`
	Sway   SwayConfig   `yaml:"sway"`
	Growth GrowthConfig `yaml:"growth"`
}

// BedConfig defines how plants are laid out.
type BedConfig struct {
	Columns   int `yaml:"columns"`    // Horizontal lanes for plant slots
	MaxPlants int `yaml:"max_plants"` // Cap on simultaneously active plants
}

// RenderConfig defines frame cadence.
type RenderConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// SwayConfig tunes the wind animation.
type SwayConfig struct {
	Amplitude float64 `yaml:"amplitude"` // Max horizontal offset in cells
	Speed     float64 `yaml:"speed"`     // Noise time scale
}

// GrowthConfig controls growth-stage derivation.
type GrowthConfig struct {
	// Multiplier scales age-in-days when deriving the growth stage.
	// 1.0 is production behavior; larger values are a development
	// accelerator and must be configured explicitly.
	Multiplier float64 `yaml:"multiplier"`
}

// Normalize clamps nonsensical values back to usable ones.
func (c *GardenConfig) Normalize() {
	if c.Bed.Columns < 1 {
		c.Bed.Columns = 1
	}
	if c.Bed.MaxPlants < 1 {
		c.Bed.MaxPlants = 1
	}
	if c.Render.TickRate < 1 {
		c.Render.TickRate = 30
	}
	if c.Sway.Amplitude < 0 {
		c.Sway.Amplitude = 0
	}
	if c.Sway.Speed <= 0 {
		c.Sway.Speed = 0.35
	}
	if c.Growth.Multiplier <= 0 {
		c.Growth.Multiplier = 1
	}
}
