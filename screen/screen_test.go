package screen

import "testing"

func TestNewFillsDefault(t *testing.T) {
	s := New(XY{X: 3, Y: 2})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if s.At(x, y) != DefaultCell {
				t.Fatalf("cell (%d,%d) not default", x, y)
			}
		}
	}
}

func TestSetAndAt(t *testing.T) {
	s := New(XY{X: 4, Y: 4})
	c := Cell{Rune: 'x'}
	s.Set(1, 1, c)
	if got := s.At(1, 1); got != c {
		t.Fatalf("got %+v, want %+v", got, c)
	}
	if got := s.At(0, 0); got != DefaultCell {
		t.Fatalf("unexpected mutation at (0,0): %+v", got)
	}
}

func TestResizeGrowPreservesContent(t *testing.T) {
	s := New(XY{X: 2, Y: 2})
	s.Set(1, 1, Cell{Rune: 'z'})
	s.Resize(XY{X: 4, Y: 4})
	if got := s.At(1, 1); got.Rune != 'z' {
		t.Fatalf("content lost on grow: %+v", got)
	}
	if got := s.At(3, 3); got != DefaultCell {
		t.Fatalf("new area not default: %+v", got)
	}
}

func TestResizeShrinkDropsOutOfBounds(t *testing.T) {
	s := New(XY{X: 4, Y: 4})
	s.Set(3, 3, Cell{Rune: 'z'})
	s.Resize(XY{X: 2, Y: 2})
	if s.Size() != (XY{X: 2, Y: 2}) {
		t.Fatalf("size not updated: %v", s.Size())
	}
}

func TestWriteOutsideBoundsIsNoop(t *testing.T) {
	s := New(XY{X: 2, Y: 2})
	s.Set(-1, 0, Cell{Rune: 'q'})
	s.Set(5, 5, Cell{Rune: 'q'})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if s.At(x, y) != DefaultCell {
				t.Fatalf("unexpected write leaked in at (%d,%d)", x, y)
			}
		}
	}
}

func TestFill(t *testing.T) {
	s := New(XY{X: 3, Y: 3})
	c := Cell{Rune: '#'}
	s.Fill(c)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if s.At(x, y) != c {
				t.Fatalf("cell (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Pos: XY{X: 2, Y: 2}, Size: XY{X: 3, Y: 3}}
	if !b.Contains(XY{X: 2, Y: 2}) {
		t.Fatal("expected top-left corner contained")
	}
	if b.Contains(XY{X: 5, Y: 5}) {
		t.Fatal("expected pos+size to be exclusive")
	}
	if b.Contains(XY{X: 1, Y: 2}) {
		t.Fatal("expected point left of bounds to be excluded")
	}
}
