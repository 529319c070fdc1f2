package action

import "github.com/garaekz/agentfx/screen"

// Kind tags which variant of Action is populated.
type Kind int

const (
	KeyPress Kind = iota
	KeyRelease
	MousePress
	MouseRelease
	MouseMove
	Closed
	Err
	Redraw
	Unknown
)

// Action is the tagged variant of input events the IoSystem delivers
// and the Region engine routes: key events, mouse events, lifecycle
// events (Closed), backend errors, and the Redraw sentinel meaning
// "no input this frame; attachments should not react positionally".
type Action struct {
	Kind Kind

	// KeyPress / KeyRelease
	Key  Key
	Rune rune
	Mods Modifier

	// MousePress / MouseRelease use Button; MouseMove uses HeldButton,
	// nil when the pointer moved with no button held.
	Button     MouseButton
	HeldButton *MouseButton
	Pos        screen.XY

	// Err
	Message string
}

// IsPositional reports whether the action carries a screen position a
// splitter must route to exactly one child.
func (a Action) IsPositional() bool {
	switch a.Kind {
	case MousePress, MouseRelease, MouseMove:
		return true
	default:
		return false
	}
}

// RedrawAction is the canonical non-reactive sentinel delivered to
// children a splitter filtered a positional action away from.
var RedrawAction = Action{Kind: Redraw}

// NewKeyPress constructs a KeyPress action.
func NewKeyPress(k Key, r rune, mods Modifier) Action {
	return Action{Kind: KeyPress, Key: k, Rune: r, Mods: mods}
}

// NewMousePress constructs a MousePress action at pos.
func NewMousePress(btn MouseButton, pos screen.XY) Action {
	return Action{Kind: MousePress, Button: btn, Pos: pos}
}

// NewMouseMove constructs a MouseMove action at pos. held is nil when
// the pointer moved with no button held.
func NewMouseMove(held *MouseButton, pos screen.XY) Action {
	return Action{Kind: MouseMove, HeldButton: held, Pos: pos}
}

// NewError constructs an Err action carrying msg.
func NewError(msg string) Action {
	return Action{Kind: Err, Message: msg}
}
