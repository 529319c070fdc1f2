package region

import (
	"strings"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/screen"
)

// Filled is a RawAttachment that paints every cell of its view with
// c, producing no output.
func Filled(c screen.Cell) RawAttachment[struct{}] {
	return func(_ action.Action, v ScreenView) struct{} {
		v.Fill(c)
		return struct{}{}
	}
}

// Axis names the orientation of a BorderedLine.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// BorderedLine draws r (a single rune, e.g. '-' or '|') along the
// requested axis across the whole view.
func BorderedLine(axis Axis, r rune, c screen.Cell) RawAttachment[struct{}] {
	c.Rune = r
	return func(_ action.Action, v ScreenView) struct{} {
		size := v.Size()
		switch axis {
		case Horizontal:
			for x := 0; x < size.X; x++ {
				v.Set(x, 0, c)
			}
		case Vertical:
			for y := 0; y < size.Y; y++ {
				v.Set(0, y, c)
			}
		}
		return struct{}{}
	}
}

// HeaderBar renders title left-aligned on the view's first row,
// padded with fill, with no reaction to input.
func HeaderBar(title string, style screen.Cell) RawAttachment[struct{}] {
	return func(_ action.Action, v ScreenView) struct{} {
		size := v.Size()
		runes := []rune(title)
		for x := 0; x < size.X; x++ {
			c := style
			if x < len(runes) {
				c.Rune = runes[x]
			}
			v.Set(x, 0, c)
		}
		return struct{}{}
	}
}

// TextBox renders lines with word wrap, left indent, and optional
// scroll-to-bottom (showing the tail of the wrapped content when it
// overflows the view's height).
type TextBox struct {
	Lines        []string
	Indent       int
	ScrollBottom bool
	Style        screen.Cell
}

// Attach wraps and renders the TextBox's lines into v, ignoring the
// input action (a text box is passive).
func (t TextBox) Attach(r Region) struct{} {
	v := r.View()
	size := v.Size()
	width := size.X - t.Indent
	if width < 1 {
		return struct{}{}
	}

	var wrapped []string
	for _, line := range t.Lines {
		wrapped = append(wrapped, wrapText(line, width)...)
	}

	start := 0
	if t.ScrollBottom && len(wrapped) > size.Y {
		start = len(wrapped) - size.Y
	}

	for row := 0; row < size.Y; row++ {
		idx := start + row
		if idx >= len(wrapped) {
			break
		}
		for i, ch := range []rune(wrapped[idx]) {
			if t.Indent+i >= size.X {
				break
			}
			c := t.Style
			c.Rune = ch
			v.Set(t.Indent+i, row, c)
		}
	}
	return struct{}{}
}

func wrapText(s string, width int) []string {
	if width < 1 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if len([]rune(cur))+1+len([]rune(w)) <= width {
			cur += " " + w
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	lines = append(lines, cur)
	return lines
}

// Button renders a centered label and returns true when pressed: a
// left mouse press within its bounds, or hotkey while the region
// receives keyboard focus (any KeyPress carrying the hot key's rune
// reaches every sibling, per splitter routing, so the button itself
// decides whether to react).
type Button struct {
	Label  string
	HotKey rune
	Style  screen.Cell
}

// Attach renders the button and reports whether it was activated
// this frame.
func (b Button) Attach(r Region) bool {
	v := r.View()
	size := v.Size()
	label := []rune(b.Label)
	startX := (size.X - len(label)) / 2
	if startX < 0 {
		startX = 0
	}
	row := size.Y / 2
	for i, ch := range label {
		if startX+i >= size.X {
			break
		}
		c := b.Style
		c.Rune = ch
		v.Set(startX+i, row, c)
	}

	act := r.Action()
	switch act.Kind {
	case action.MousePress:
		return act.Button == action.MouseLeft && r.Bounds().Contains(act.Pos)
	case action.KeyPress:
		return b.HotKey != 0 && act.Rune == b.HotKey
	default:
		return false
	}
}

// TextInput is a single-line input box with a prompt, scrollback
// history, and an optional autocomplete callback invoked on Tab.
type TextInput struct {
	Prompt       string
	Value        string
	History      []string
	historyIdx   int
	Autocomplete func(prefix string) (completion string, ok bool)
	Style        screen.Cell
}

// Attach renders the prompt+value and applies any KeyPress this
// frame, returning the submitted line (and true) when Enter is
// pressed.
func (t *TextInput) Attach(r Region) (submitted string, ok bool) {
	v := r.View()
	size := v.Size()
	line := t.Prompt + t.Value
	for i, ch := range []rune(line) {
		if i >= size.X {
			break
		}
		c := t.Style
		c.Rune = ch
		v.Set(i, 0, c)
	}

	act := r.Action()
	if act.Kind != action.KeyPress {
		return "", false
	}
	switch act.Key {
	case action.KeyEnter:
		line := t.Value
		t.History = append(t.History, line)
		t.historyIdx = len(t.History)
		t.Value = ""
		return line, true
	case action.KeyBackspace:
		if n := len(t.Value); n > 0 {
			t.Value = string([]rune(t.Value)[:len([]rune(t.Value))-1])
		}
	case action.KeyUp:
		if t.historyIdx > 0 {
			t.historyIdx--
			t.Value = t.History[t.historyIdx]
		}
	case action.KeyDown:
		if t.historyIdx < len(t.History)-1 {
			t.historyIdx++
			t.Value = t.History[t.historyIdx]
		} else {
			t.historyIdx = len(t.History)
			t.Value = ""
		}
	case action.KeyTab:
		if t.Autocomplete != nil {
			if completion, ok := t.Autocomplete(t.Value); ok {
				t.Value = completion
			}
		}
	case action.KeyRune:
		t.Value += string(act.Rune)
	}
	return "", false
}
