// Package config provides YAML-based game configuration loading for the
// slide16 platform.
package config

// GameConfig contains all tunable parameters for the puzzle.
// The board geometry itself is fixed (4x4) and not configurable.
type GameConfig struct {
	Spawn  SpawnConfig   `yaml:"spawn"`
	Levels []LevelConfig `yaml:"levels"`
}

// SpawnConfig defines tile spawn behavior.
type SpawnConfig struct {
	// FourChance is the probability that a spawned tile is a 4 rather
	// than a 2. The classic rules use 0.10.
	FourChance float64 `yaml:"four_chance"`
}

// LevelConfig defines a single campaign level.
type LevelConfig struct {
	Name       string  `yaml:"name"`
	Target     int     `yaml:"target"`      // Target tile value to reach
	FourChance float64 `yaml:"four_chance"` // Per-level spawn odds (0 = use global)
}

// Validate checks the config for values that would break the game.
func (c *GameConfig) Validate() bool {
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance > 1 {
		return false
	}
	for _, lvl := range c.Levels {
		if lvl.Target <= 0 {
			return false
		}
		if lvl.FourChance < 0 || lvl.FourChance > 1 {
			return false
		}
	}
	return true
}
