// Package slide16 implements a sliding-tile merging puzzle on a fixed 4x4
// grid. Tiles are stored as exponents of two; sliding compacts tiles toward
// an edge, merges equal neighbors once per move, and spawns a new tile.
package slide16

// Size is the board dimension. The grid is always Size x Size.
const Size = 4

// Tile is a single grid cell: Empty, or the exponent of two for the tile
// (display value 1 << Tile, so exponent 1 shows as 2).
type Tile uint8

const (
	// Empty marks an unoccupied cell.
	Empty Tile = 0

	// MaxExponent is the largest representable exponent. Merging two
	// tiles at this value combines them without incrementing.
	MaxExponent Tile = ^Tile(0)
)

// Value returns the display value of the tile (2^exponent), or 0 for Empty.
func (t Tile) Value() int {
	if t == Empty {
		return 0
	}
	if t > 62 {
		// Beyond what an int can hold; unreachable on a 4x4 grid.
		return 1 << 62
	}
	return 1 << t
}

// inc returns the exponent incremented by one, saturating at MaxExponent.
func (t Tile) inc() Tile {
	if t == MaxExponent {
		return t
	}
	return t + 1
}

// Direction selects which edge tiles compact toward during a move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Board is a 4x4 grid of tiles, mutated in place by moves.
type Board [Size][Size]Tile

// New creates a board with two distinct random cells set to exponent 1.
func New(rng Source) *Board {
	var b Board
	first, second := rng.IndexPair(Size * Size)
	b[first/Size][first%Size] = 1
	b[second/Size][second%Size] = 1
	return &b
}

// FromGrid creates a board from a raw grid of exponents.
// Used by tests and UI layers to construct arbitrary states.
func FromGrid(grid [Size][Size]Tile) *Board {
	b := Board(grid)
	return &b
}

// Play applies a full move: compact and merge toward dir, spawn a new tile
// into a random empty cell, then report whether the game is lost.
func (b *Board) Play(dir Direction, rng Source) bool {
	b.merge(dir)
	b.Spawn(rng)
	return b.IsLost()
}

// Spawn places a new tile in a uniformly random empty cell: exponent 2
// with probability 1/10, exponent 1 otherwise. Returns false and leaves
// the board unchanged when no cell is empty.
func (b *Board) Spawn(rng Source) bool {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return false
	}

	cell := empty[rng.Index(len(empty))]
	exp := Tile(1)
	if rng.SpawnFour() {
		exp = 2
	}
	b[cell[0]][cell[1]] = exp

	return true
}

// IsLost reports whether no move can change the board: every cell is
// occupied and no two adjacent cells hold equal values. Pure.
func (b *Board) IsLost() bool {
	return b.IsFull() && !b.Mergeable()
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Mergeable reports whether any two horizontally or vertically adjacent
// cells are both occupied and hold equal values. Pure.
func (b *Board) Mergeable() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-1; c++ {
			if b[r][c] != Empty && b[r][c] == b[r][c+1] {
				return true
			}
		}
	}
	for r := 0; r < Size-1; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty && b[r][c] == b[r+1][c] {
				return true
			}
		}
	}
	return false
}

// emptyCells returns the coordinates of all empty cells in row-major order.
func (b *Board) emptyCells() [][2]int {
	var cells [][2]int
	for r := range b {
		for c := range b[r] {
			if b[r][c] == Empty {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// forEachPair visits, in scan order, every adjacent cell pair along the
// lanes for dir. near is the edge-ward cell of each pair, far the other.
// The scan orders let a tile chain across a lane within one squash pass
// where possible; three passes always suffice on a 4-wide lane.
func forEachPair(dir Direction, visit func(nearR, nearC, farR, farC int)) {
	switch dir {
	case Up:
		for r := Size - 2; r >= 0; r-- {
			for c := 0; c < Size; c++ {
				visit(r, c, r+1, c)
			}
		}
	case Down:
		for r := 0; r < Size-1; r++ {
			for c := 0; c < Size; c++ {
				visit(r+1, c, r, c)
			}
		}
	case Left:
		for c := Size - 2; c >= 0; c-- {
			for r := 0; r < Size; r++ {
				visit(r, c, r, c+1)
			}
		}
	case Right:
		for c := Size - 2; c >= 0; c-- {
			for r := 0; r < Size; r++ {
				visit(r, c+1, r, c)
			}
		}
	}
}

// squashOnce slides every tile one step toward the edge where possible,
// preserving relative order within each lane.
func (b *Board) squashOnce(dir Direction) {
	forEachPair(dir, func(nearR, nearC, farR, farC int) {
		if b[nearR][nearC] == Empty && b[farR][farC] != Empty {
			b[nearR][nearC] = b[farR][farC]
			b[farR][farC] = Empty
		}
	})
}

// squash fully compacts all lanes toward the edge. A tile can move at most
// Size-1 positions, so Size-1 passes are sufficient.
func (b *Board) squash(dir Direction) {
	for i := 0; i < Size-1; i++ {
		b.squashOnce(dir)
	}
}

// merge performs the full merge phase of a move: compact, combine equal
// adjacent pairs once each, compact again to close the gaps.
func (b *Board) merge(dir Direction) {
	b.squash(dir)

	forEachPair(dir, func(nearR, nearC, farR, farC int) {
		if b[nearR][nearC] != Empty && b[nearR][nearC] == b[farR][farC] {
			// The merged value lands in the far cell and the edge-ward
			// cell empties; an emptied cell can never match a later pair
			// in the same pass, so a merge never cascades.
			b[farR][farC] = b[farR][farC].inc()
			b[nearR][nearC] = Empty
		}
	})

	b.squash(dir)
}
