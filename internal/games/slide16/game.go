package slide16

import (
	"github.com/tilearcade/slide16/internal/core"
	"github.com/tilearcade/slide16/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game wraps the board engine into a tick-driven game with campaign and
// endless modes.
type Game struct {
	mode Mode
	src  *mathSource
	tick uint64

	score         int
	board         *Board
	levelIndex    int // Current level (0-indexed)
	currentTarget int // Tile value that clears the current level
	fourChance    float64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	moveProcessed   bool // Prevent multiple moves per tick
	levelClearTicks int  // Ticks spent on the level clear banner
}

var selectedStartLevel int

// SetStartLevel sets the starting level (1-based). 0 means start from the
// first level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// NewGame creates a campaign mode game.
func NewGame() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("slide16", func() registry.Game {
		return NewGame()
	})
	registry.Register("slide16_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "slide16_endless"
	}
	return "slide16"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Slide16 (Endless)"
	}
	return "Slide16"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	reloadLevels()

	g.src = newMathSource(cfg.Seed, defaultFourChance())
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.moveProcessed = false
	g.levelClearTicks = 0

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()

	g.board = New(g.src)
	g.score = boardSum(g.board)

	g.checkScreenSize()
}

// loadLevel applies the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0 // No target in endless
		g.fourChance = defaultFourChance()
		g.src.fourChance = g.fourChance
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}

	g.currentTarget = level.Target
	g.fourChance = level.FourChance
	g.src.fourChance = g.fourChance
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29 wide, 9 tall) + HUD (3 lines)
	minW := 33
	minH := 13
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	// Level clear banner; auto-advance after 2 seconds at 60fps.
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 120 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = Up
		moved = true
	case in.Has(core.ActionDown):
		dir = Down
		moved = true
	case in.Has(core.ActionLeft):
		dir = Left
		moved = true
	case in.Has(core.ActionRight):
		dir = Right
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove applies a full move in the given direction.
func (g *Game) processMove(dir Direction) {
	lost := g.board.Play(dir, g.src)
	g.score = boardSum(g.board)

	// Check the level target first; reaching it on the losing move still
	// clears the level.
	if g.mode == ModeCampaign && g.currentTarget > 0 {
		if maxValue(g.board) >= g.currentTarget {
			g.levelCleared = true
			g.levelClearTicks = 0
			return
		}
	}

	if lost {
		g.gameOver = true
	}
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// boardSum returns the sum of display values, used as the score.
// Merges preserve the sum and spawns only add, so it never decreases.
func boardSum(b *Board) int {
	sum := 0
	for r := range b {
		for c := range b[r] {
			sum += b[r][c].Value()
		}
	}
	return sum
}

// maxValue returns the largest display value on the board.
func maxValue(b *Board) int {
	max := 0
	for r := range b {
		for c := range b[r] {
			if v := b[r][c].Value(); v > max {
				max = v
			}
		}
	}
	return max
}
