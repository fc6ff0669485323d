package slide16

import "testing"

// scriptSource replays pre-recorded randomness so tests can pin exact
// spawn cells and values.
type scriptSource struct {
	indices []int
	pairs   [][2]int
	fours   []bool
}

func (s *scriptSource) Index(n int) int {
	if len(s.indices) == 0 {
		return 0
	}
	v := s.indices[0]
	s.indices = s.indices[1:]
	return v % n
}

func (s *scriptSource) IndexPair(n int) (int, int) {
	if len(s.pairs) == 0 {
		return 0, 1
	}
	p := s.pairs[0]
	s.pairs = s.pairs[1:]
	return p[0] % n, p[1] % n
}

func (s *scriptSource) SpawnFour() bool {
	if len(s.fours) == 0 {
		return false
	}
	v := s.fours[0]
	s.fours = s.fours[1:]
	return v
}

func TestNewBoard(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := New(NewMathSource(seed))

		var occupied int
		for r := range b {
			for c := range b[r] {
				switch b[r][c] {
				case Empty:
				case 1:
					occupied++
				default:
					t.Fatalf("seed %d: cell (%d,%d) = %d, want 1 or empty", seed, r, c, b[r][c])
				}
			}
		}
		if occupied != 2 {
			t.Errorf("seed %d: %d occupied cells, want 2", seed, occupied)
		}
	}
}

func TestNewBoardScripted(t *testing.T) {
	src := &scriptSource{pairs: [][2]int{{0, 15}}}
	b := New(src)
	if b[0][0] != 1 || b[3][3] != 1 {
		t.Errorf("corners not set: got %v", *b)
	}
}

func TestMergeable(t *testing.T) {
	tests := []struct {
		name string
		grid [Size][Size]Tile
		want bool
	}{
		{
			name: "empty board",
			grid: [Size][Size]Tile{},
			want: false,
		},
		{
			name: "vertical equal pair",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 3, 0},
				{0, 0, 3, 0},
				{0, 0, 0, 0},
			},
			want: true,
		},
		{
			name: "horizontal equal pair",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 2, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: true,
		},
		{
			name: "adjacent but unequal",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 2, 0},
				{0, 0, 3, 0},
				{0, 0, 0, 0},
			},
			want: false,
		},
		{
			name: "equal but diagonal",
			grid: [Size][Size]Tile{
				{3, 0, 0, 0},
				{0, 3, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: false,
		},
		{
			name: "equal but separated by a gap",
			grid: [Size][Size]Tile{
				{3, 0, 3, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromGrid(tt.grid).Mergeable(); got != tt.want {
				t.Errorf("Mergeable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLost(t *testing.T) {
	tests := []struct {
		name string
		grid [Size][Size]Tile
		want bool
	}{
		{
			name: "checkerboard is lost",
			grid: [Size][Size]Tile{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			want: true,
		},
		{
			name: "full board with mergeable pair",
			grid: [Size][Size]Tile{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 2, 2},
				{2, 1, 2, 1},
			},
			want: false,
		},
		{
			name: "board with an empty cell",
			grid: [Size][Size]Tile{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 0, 2},
				{2, 1, 2, 1},
			},
			want: false,
		},
		{
			name: "empty board",
			grid: [Size][Size]Tile{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromGrid(tt.grid).IsLost(); got != tt.want {
				t.Errorf("IsLost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		grid [Size][Size]Tile
		dir  Direction
		want [Size][Size]Tile
	}{
		{
			name: "down merges two columns",
			grid: [Size][Size]Tile{
				{0, 0, 0, 1},
				{0, 0, 0, 0},
				{0, 0, 3, 0},
				{0, 0, 3, 1},
			},
			dir: Down,
			want: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 2},
			},
		},
		{
			name: "right merges a full row pairwise",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{4, 4, 4, 4},
			},
			dir: Right,
			want: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 5, 5},
			},
		},
		{
			name: "merge never cascades",
			grid: [Size][Size]Tile{
				{0, 2, 2, 3},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			dir: Right,
			want: [Size][Size]Tile{
				{0, 0, 3, 3},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "one merge per tile",
			grid: [Size][Size]Tile{
				{1, 1, 1, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			dir: Left,
			want: [Size][Size]Tile{
				{1, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "four equal tiles merge into two",
			grid: [Size][Size]Tile{
				{1, 1, 1, 1},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			dir: Left,
			want: [Size][Size]Tile{
				{2, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "up compacts across gaps before merging",
			grid: [Size][Size]Tile{
				{2, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{1, 0, 0, 0},
			},
			dir: Up,
			want: [Size][Size]Tile{
				{3, 0, 0, 0},
				{1, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "unequal tiles keep order",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{1, 0, 2, 3},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			dir: Right,
			want: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 1, 2, 3},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "move with no effect",
			grid: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 2, 3, 4},
			},
			dir: Down,
			want: [Size][Size]Tile{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{1, 2, 3, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromGrid(tt.grid)
			b.merge(tt.dir)
			if *b != Board(tt.want) {
				t.Errorf("merge(%v) =\n%v\nwant\n%v", tt.dir, *b, tt.want)
			}
		})
	}
}

func TestMergeSaturatesAtMaxExponent(t *testing.T) {
	b := FromGrid([Size][Size]Tile{
		{MaxExponent, MaxExponent, 0, 0},
	})
	b.merge(Left)
	if b[0][0] != MaxExponent {
		t.Errorf("b[0][0] = %d, want %d", b[0][0], MaxExponent)
	}
	if b[0][1] != Empty {
		t.Errorf("b[0][1] = %d, want empty", b[0][1])
	}
}

func TestSquashIdempotent(t *testing.T) {
	grid := [Size][Size]Tile{
		{1, 0, 2, 0},
		{0, 3, 0, 0},
		{4, 0, 0, 5},
		{0, 0, 6, 0},
	}
	for _, dir := range []Direction{Up, Down, Left, Right} {
		once := FromGrid(grid)
		once.squash(dir)
		twice := FromGrid(grid)
		twice.squash(dir)
		twice.squash(dir)
		if *once != *twice {
			t.Errorf("%v: second squash changed the board", dir)
		}
	}
}

func TestSpawn(t *testing.T) {
	t.Run("fills a scripted empty cell with a 2", func(t *testing.T) {
		b := FromGrid([Size][Size]Tile{
			{1, 1, 1, 1},
			{1, 0, 1, 1},
			{1, 1, 1, 1},
			{1, 1, 1, 1},
		})
		src := &scriptSource{indices: []int{0}, fours: []bool{false}}
		if !b.Spawn(src) {
			t.Fatal("Spawn() = false, want true")
		}
		if b[1][1] != 1 {
			t.Errorf("b[1][1] = %d, want 1", b[1][1])
		}
	})

	t.Run("spawns exponent 2 when the source says four", func(t *testing.T) {
		b := FromGrid([Size][Size]Tile{})
		src := &scriptSource{indices: []int{0}, fours: []bool{true}}
		b.Spawn(src)
		if b[0][0] != 2 {
			t.Errorf("b[0][0] = %d, want 2", b[0][0])
		}
	})

	t.Run("full board returns false and stays unchanged", func(t *testing.T) {
		grid := [Size][Size]Tile{
			{1, 2, 1, 2},
			{2, 1, 2, 1},
			{1, 2, 1, 2},
			{2, 1, 2, 1},
		}
		b := FromGrid(grid)
		if b.Spawn(NewMathSource(1)) {
			t.Error("Spawn() = true on a full board")
		}
		if *b != Board(grid) {
			t.Error("full board changed after Spawn")
		}
	})
}

func TestPlay(t *testing.T) {
	t.Run("merges then spawns", func(t *testing.T) {
		b := FromGrid([Size][Size]Tile{
			{0, 0, 0, 1},
			{0, 0, 0, 0},
			{0, 0, 3, 0},
			{0, 0, 3, 1},
		})
		src := &scriptSource{indices: []int{0}, fours: []bool{false}}
		if lost := b.Play(Down, src); lost {
			t.Error("Play() reported lost on a nearly empty board")
		}
		want := [Size][Size]Tile{
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 4, 2},
		}
		if *b != Board(want) {
			t.Errorf("after Play:\n%v\nwant\n%v", *b, want)
		}
	})

	t.Run("reports lost when the spawn fills the last gap", func(t *testing.T) {
		b := FromGrid([Size][Size]Tile{
			{0, 2, 1, 2},
			{2, 1, 2, 1},
			{1, 2, 1, 2},
			{2, 1, 2, 1},
		})
		// Right cannot move anything; the spawn lands in the only gap
		// with a 2, completing a checkerboard.
		src := &scriptSource{indices: []int{0}, fours: []bool{false}}
		if lost := b.Play(Right, src); !lost {
			t.Error("Play() = false, want lost")
		}
	})
}

func TestTileValue(t *testing.T) {
	tests := []struct {
		tile Tile
		want int
	}{
		{Empty, 0},
		{1, 2},
		{2, 4},
		{5, 32},
		{11, 2048},
	}
	for _, tt := range tests {
		if got := tt.tile.Value(); got != tt.want {
			t.Errorf("Tile(%d).Value() = %d, want %d", tt.tile, got, tt.want)
		}
	}
}
