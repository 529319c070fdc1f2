// Package region implements the immediate-mode text-UI region engine
// (§4.2 of the core spec): Region, Splitter, Attachment, and
// ScreenView, carving a single character grid into disjoint mutable
// views that compose via splitters and attachments.
package region

import "github.com/garaekz/agentfx/screen"

// ScreenView is a borrow over a rectangular slice of a Screen, with
// the parent's coordinate origin translated to (0,0); safe to fill
// and index within its own size.
type ScreenView struct {
	target *screen.Screen
	bounds screen.Bounds
}

// Size returns the view's own extent.
func (v ScreenView) Size() screen.XY {
	return v.bounds.Size
}

// At returns the cell at local (x, y), translated into the
// underlying Screen's coordinate space.
func (v ScreenView) At(x, y int) screen.Cell {
	if x < 0 || y < 0 || x >= v.bounds.Size.X || y >= v.bounds.Size.Y {
		return screen.DefaultCell
	}
	return v.target.At(v.bounds.Pos.X+x, v.bounds.Pos.Y+y)
}

// Set writes a cell at local (x, y). Writes outside the view's own
// size are silently dropped, so callers may write without clipping
// against the parent Screen's absolute extent.
func (v ScreenView) Set(x, y int, c screen.Cell) {
	if x < 0 || y < 0 || x >= v.bounds.Size.X || y >= v.bounds.Size.Y {
		return
	}
	v.target.Set(v.bounds.Pos.X+x, v.bounds.Pos.Y+y, c)
}

// Fill overwrites every cell within the view with c.
func (v ScreenView) Fill(c screen.Cell) {
	for y := 0; y < v.bounds.Size.Y; y++ {
		for x := 0; x < v.bounds.Size.X; x++ {
			v.Set(x, y, c)
		}
	}
}
