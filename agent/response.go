package agent

// Response is the Game's per-message reaction, returned from Message.
// It distinguishes "nothing changed" from "the screen needs a
// redraw" from "the whole loop should stop" without waiting for the
// next input tick's Attach call.
type Response int

const (
	// Nothing reports no visible change.
	Nothing Response = iota
	// Redraw reports a visible change; the frame loop should redraw
	// before waiting for the next tick.
	Redraw
	// Quit reports the game wants the loop to stop, independent of
	// whatever Attach's own exit bool says.
	Quit
)

// Merge folds another Response into r, keeping the more severe of
// the two (Quit > Redraw > Nothing). Used to fold a round's worth of
// per-message responses into one.
func (r Response) Merge(other Response) Response {
	if other > r {
		return other
	}
	return r
}

func (r Response) String() string {
	switch r {
	case Nothing:
		return "nothing"
	case Redraw:
		return "redraw"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
