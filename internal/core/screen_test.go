package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("NewScreen size = %dx%d, want 10x5", s.Width(), s.Height())
	}

	for y := range 5 {
		for x := range 10 {
			if got := s.Get(x, y); got != ' ' {
				t.Errorf("new screen cell (%d,%d) = %q, want space", x, y, got)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '*', ColorOrange)

	cell := s.GetCell(3, 2)
	if cell.Rune != '*' || cell.Color != ColorOrange {
		t.Errorf("GetCell = %+v, want '*' orange", cell)
	}

	// Out of bounds writes are ignored, reads return space
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out of bounds Get = %q, want space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 1, "knife", ColorCyan)

	if got := s.Row(1); got != "       kni" {
		t.Errorf("Row(1) = %q, want clipped text", got)
	}
	if c := s.GetCell(8, 1); c.Color != ColorCyan {
		t.Errorf("text color = %v, want cyan", c.Color)
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "سیب", ColorDefault)

	// three runes centered in eleven cells start at column 4
	if got := s.Get(4, 0); got != 'س' {
		t.Errorf("centered text start = %q, want 'س'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner (%d,%d) = %q, want %q", pos[0], pos[1], got, want)
		}
	}
	if got := s.Get(3, 1); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(1, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("box interior = %q, want space", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '#')

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Error("FillRect did not fill its area")
	}
	if s.Get(3, 1) != ' ' || s.Get(0, 0) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize should clear the buffer")
	}
}
