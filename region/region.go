package region

import (
	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/screen"
)

// Region is an ephemeral borrow over a disjoint rectangular slice of
// a Screen, plus at most one Action routed to it. A Region never
// outlives the frame that constructed it: it is built at the frame
// root from (Screen, Action), then split into children or consumed by
// an attachment.
type Region struct {
	target *screen.Screen
	bounds screen.Bounds // absolute, in the root Screen's coordinate space
	act    action.Action
}

// Root constructs the frame-root Region spanning the whole Screen,
// carrying the frame's current Action (or action.RedrawAction if none
// arrived this tick).
func Root(s *screen.Screen, act action.Action) Region {
	return Region{target: s, bounds: screen.Bounds{Pos: screen.XY{}, Size: s.Size()}, act: act}
}

// Bounds returns this Region's absolute bounds within the root
// Screen.
func (r Region) Bounds() screen.Bounds {
	return r.bounds
}

// Action returns the Action routed to this Region.
func (r Region) Action() action.Action {
	return r.act
}

// View returns a ScreenView over this Region's disjoint slice of the
// underlying Screen.
func (r Region) View() ScreenView {
	return ScreenView{target: r.target, bounds: r.bounds}
}

// filterAction implements the splitter routing rule: a positional
// action outside bounds is replaced by the Redraw sentinel; any other
// action (including a positional one inside bounds) passes through
// unchanged. This guarantees at most one child reacts to a mouse
// event by position, while keyboard events reach every child.
func filterAction(a action.Action, bounds screen.Bounds) action.Action {
	if a.IsPositional() && !bounds.Contains(a.Pos) {
		return action.RedrawAction
	}
	return a
}

func (r Region) child(bounds screen.Bounds) Region {
	return Region{target: r.target, bounds: bounds, act: filterAction(r.act, bounds)}
}

// SplitLeft carves n columns off the left edge, returning (taken,
// remainder, true). If n exceeds the available width it fails,
// returning (r, Region{}, false) — the original Region is handed
// back unchanged.
func (r Region) SplitLeft(n int) (taken, remainder Region, ok bool) {
	if n < 0 || n > r.bounds.Size.X {
		return r, Region{}, false
	}
	takenB := screen.Bounds{Pos: r.bounds.Pos, Size: screen.XY{X: n, Y: r.bounds.Size.Y}}
	remB := screen.Bounds{
		Pos:  screen.XY{X: r.bounds.Pos.X + n, Y: r.bounds.Pos.Y},
		Size: screen.XY{X: r.bounds.Size.X - n, Y: r.bounds.Size.Y},
	}
	return r.child(takenB), r.child(remB), true
}

// SplitRight carves n columns off the right edge.
func (r Region) SplitRight(n int) (taken, remainder Region, ok bool) {
	if n < 0 || n > r.bounds.Size.X {
		return r, Region{}, false
	}
	takenB := screen.Bounds{
		Pos:  screen.XY{X: r.bounds.Pos.X + r.bounds.Size.X - n, Y: r.bounds.Pos.Y},
		Size: screen.XY{X: n, Y: r.bounds.Size.Y},
	}
	remB := screen.Bounds{Pos: r.bounds.Pos, Size: screen.XY{X: r.bounds.Size.X - n, Y: r.bounds.Size.Y}}
	return r.child(takenB), r.child(remB), true
}

// SplitTop carves n rows off the top edge.
func (r Region) SplitTop(n int) (taken, remainder Region, ok bool) {
	if n < 0 || n > r.bounds.Size.Y {
		return r, Region{}, false
	}
	takenB := screen.Bounds{Pos: r.bounds.Pos, Size: screen.XY{X: r.bounds.Size.X, Y: n}}
	remB := screen.Bounds{
		Pos:  screen.XY{X: r.bounds.Pos.X, Y: r.bounds.Pos.Y + n},
		Size: screen.XY{X: r.bounds.Size.X, Y: r.bounds.Size.Y - n},
	}
	return r.child(takenB), r.child(remB), true
}

// SplitBottom carves n rows off the bottom edge.
func (r Region) SplitBottom(n int) (taken, remainder Region, ok bool) {
	if n < 0 || n > r.bounds.Size.Y {
		return r, Region{}, false
	}
	takenB := screen.Bounds{
		Pos:  screen.XY{X: r.bounds.Pos.X, Y: r.bounds.Pos.Y + r.bounds.Size.Y - n},
		Size: screen.XY{X: r.bounds.Size.X, Y: n},
	}
	remB := screen.Bounds{Pos: r.bounds.Pos, Size: screen.XY{X: r.bounds.Size.X, Y: r.bounds.Size.Y - n}}
	return r.child(takenB), r.child(remB), true
}
