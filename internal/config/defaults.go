package config

import (
	_ "embed"
)

//go:embed defaults/slide16.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default puzzle configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourChance: 0.10,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Target: 128, FourChance: 0.10},
			{Name: "Getting Started", Target: 256, FourChance: 0.10},
			{Name: "Building Momentum", Target: 512, FourChance: 0.10},
			{Name: "The Climb", Target: 1024, FourChance: 0.10},
			{Name: "Classic 2048", Target: 2048, FourChance: 0.10},
			{Name: "Beyond Limits", Target: 4096, FourChance: 0.12},
			{Name: "Master Class", Target: 8192, FourChance: 0.15},
			{Name: "Expert Challenge", Target: 8192, FourChance: 0.18},
			{Name: "Grandmaster", Target: 8192, FourChance: 0.20},
			{Name: "Ultimate Champion", Target: 8192, FourChance: 0.25},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
