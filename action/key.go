// Package action defines the input contract (§3, §6 of the core
// spec): a tagged variant of input events, plus the Key/Modifier
// types carried by keyboard events.
package action

// Key identifies a single keyboard key, independent of modifiers.
type Key int

const (
	KeyUnknown Key = iota
	KeyRune        // a printable rune; see KeyPress.Rune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether m includes all bits of other.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// MouseButton identifies a mouse button for press/release events.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)
