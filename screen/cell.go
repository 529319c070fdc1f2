package screen

import "github.com/garaekz/agentfx/color"

// Cell is a single styled character in the grid: a codepoint plus
// foreground/background color and bold/underline attributes.
type Cell struct {
	Rune      rune
	Fg        color.Color
	Bg        color.Color
	Bold      bool
	Underline bool
}

// DefaultCell is a blank space with default colors, used to fill newly
// grown grid area and to reset cells.
var DefaultCell = Cell{Rune: ' '}
