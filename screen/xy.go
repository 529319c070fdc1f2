// Package screen implements the character grid the agent runtime and
// region engine render into: a resizable 2D buffer of styled Cells.
package screen

import "fmt"

// XY is a non-negative integer pair used for sizes and positions.
type XY struct {
	X, Y int
}

// Add returns the pointwise sum of two XY values.
func (a XY) Add(b XY) XY {
	return XY{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns the pointwise difference of two XY values.
func (a XY) Sub(b XY) XY {
	return XY{X: a.X - b.X, Y: a.Y - b.Y}
}

// LessEq reports whether a is pointwise less than or equal to b.
func (a XY) LessEq(b XY) bool {
	return a.X <= b.X && a.Y <= b.Y
}

func (a XY) String() string {
	return fmt.Sprintf("(%d,%d)", a.X, a.Y)
}

// Bounds is a rectangle within a Screen: a position plus a size.
//
// Invariants (upheld by the region package, which builds every Bounds
// it hands out; Bounds itself does not check them): pos+size must not
// exceed the Screen size at construction, and two Bounds produced by
// one split never overlap.
type Bounds struct {
	Pos  XY
	Size XY
}

// Contains reports whether p falls within b (pos inclusive, pos+size
// exclusive).
func (b Bounds) Contains(p XY) bool {
	return p.X >= b.Pos.X && p.X < b.Pos.X+b.Size.X &&
		p.Y >= b.Pos.Y && p.Y < b.Pos.Y+b.Size.Y
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds{pos:%s size:%s}", b.Pos, b.Size)
}
