package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, want '#'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, want ' '", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, 'X', ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(1, 1).Rune = %q, want 'X'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1).Color = %v, want ColorBrightYellow", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 1, 'Y')
	if got := s.GetCell(2, 1).Color; got != ColorDefault {
		t.Errorf("Set() color = %v, want ColorDefault", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, '#')
	s.Set(0, -1, '#')
	s.Set(10, 0, '#')
	s.Set(0, 5, '#')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want ' '", got)
	}
	if got := s.Get(100, 100); got != ' ' {
		t.Errorf("Get out of bounds = %q, want ' '", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorRed)
	s.SetCell(2, 2, '@', ColorGreen)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("after Clear, cell (%d, %d) = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q, want %q", got, "  hello   ")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "abcdef")

	if got := s.Row(0); got != "   ab" {
		t.Errorf("Row(0) = %q, want %q", got, "   ab")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q, want %q", got, "    ab    ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, '#')
	s.Set(5, 3, '@')

	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("after Resize, size = %dx%d, want 4x3", s.Width(), s.Height())
	}

	// Content inside the new bounds is preserved
	if got := s.Get(1, 1); got != '#' {
		t.Errorf("after Resize, Get(1, 1) = %q, want '#'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{5, 0, '┐'},
		{0, 3, '└'},
		{5, 3, '┘'},
	}

	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner (%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should have 1 newline for 2 rows")
	}
}
