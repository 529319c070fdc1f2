package screen

import "fmt"

// Screen is a resizable mapping from grid coordinate (x, y), with
// 0 <= x < W and 0 <= y < H, to Cell. Every coordinate within the
// declared size always has a defined Cell.
type Screen struct {
	size  XY
	cells []Cell
}

// New constructs a Screen of the given size, every cell set to
// DefaultCell.
func New(size XY) *Screen {
	s := &Screen{}
	s.Resize(size)
	return s
}

// Size returns the current grid extent.
func (s *Screen) Size() XY {
	return s.size
}

// Resize changes the grid extent in place. It is always valid:
// content is preserved wherever the old and new bounds overlap, and
// newly added rows/columns are filled with DefaultCell. Resize is
// O(W*H).
func (s *Screen) Resize(size XY) {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	next := make([]Cell, size.X*size.Y)
	for i := range next {
		next[i] = DefaultCell
	}
	minW, minH := size.X, size.Y
	if s.size.X < minW {
		minW = s.size.X
	}
	if s.size.Y < minH {
		minH = s.size.Y
	}
	for y := 0; y < minH; y++ {
		for x := 0; x < minW; x++ {
			next[y*size.X+x] = s.cells[y*s.size.X+x]
		}
	}
	s.size = size
	s.cells = next
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.size.X || y >= s.size.Y {
		return 0, false
	}
	return y*s.size.X + x, true
}

// At returns the cell at (x, y). Reading outside the current size
// returns DefaultCell; callers are expected to clip but this keeps At
// total rather than panicking.
func (s *Screen) At(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return DefaultCell
}

// Set writes a cell at (x, y). Writes outside the current size are
// silently dropped; callers are expected to clip.
func (s *Screen) Set(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// Fill overwrites every cell with c.
func (s *Screen) Fill(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

func (s *Screen) String() string {
	return fmt.Sprintf("Screen{%dx%d}", s.size.X, s.size.Y)
}
