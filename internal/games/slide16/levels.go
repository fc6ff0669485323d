package slide16

import "github.com/tilearcade/slide16/internal/config"

// Level defines a campaign level with a target tile.
type Level struct {
	ID         int
	Name       string
	Target     int     // Target tile value to reach
	FourChance float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// Package-level config state, refreshed on every Reset.
var (
	configPath string
	gameCfg    = config.DefaultGameConfig()
	levels     = levelsFromConfig(gameCfg)
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// reloadLevels re-reads the level table from config. Falls back to the
// current table when loading fails.
func reloadLevels() {
	cfg, err := config.LoadGame(configPath)
	if err != nil {
		return
	}
	gameCfg = cfg
	levels = levelsFromConfig(cfg)
}

func levelsFromConfig(cfg config.GameConfig) []Level {
	out := make([]Level, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		chance := lc.FourChance
		if chance <= 0 {
			chance = cfg.Spawn.FourChance
		}
		out[i] = Level{
			ID:         i + 1,
			Name:       lc.Name,
			Target:     lc.Target,
			FourChance: chance,
		}
	}
	return out
}

// defaultFourChance returns the configured four-spawn odds for endless mode.
func defaultFourChance() float64 {
	if gameCfg.Spawn.FourChance > 0 {
		return gameCfg.Spawn.FourChance
	}
	return 0.10
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// GetLevel returns the level at the given index (0-based), or nil if the
// index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(levels) {
		return nil
	}
	return &levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(levels))
	for i, lvl := range levels {
		targets[i] = lvl.Target
	}
	return targets
}
