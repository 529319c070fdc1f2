package region

import (
	"errors"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/garaekz/agentfx/screen"
)

// ErrOverflow is returned by Cols/Rows when the declared minimum
// extent (fixed children plus separators) exceeds the parent Region's
// available extent — including the case where the fixed children
// alone would fit but the separators push the total over (the
// reference resolution for that ambiguity: fail rather than clip).
var ErrOverflow = errors.New("region: splitter spec exceeds available extent")

// ErrSplitterSpec is returned by Cols/Rows when the spec itself is
// malformed: it must contain exactly one Fill part.
var ErrSplitterSpec = errors.New("region: splitter spec must contain exactly one Fill part")

// Part is one entry of a declarative column/row splitter spec: either
// a fixed-size child, the single "fill" child that absorbs remaining
// space, or a literal separator strip drawn between two children.
type Part struct {
	fixed int
	fill  bool
	sep   string
	isSep bool
}

// Fixed declares a child of exactly n columns/rows.
func Fixed(n int) Part { return Part{fixed: n} }

// Fill declares the one child that absorbs whatever extent remains
// after every Fixed child and every Sep has been accounted for.
func Fill() Part { return Part{fill: true} }

// Sep declares a literal separator strip, rendered by repeating
// template across the strip's own extent and across every row (for
// Cols) or column (for Rows) it spans.
func Sep(template string) Part { return Part{sep: template, isSep: true} }

func (p Part) width() int {
	if p.isSep {
		return utf8.RuneCountInString(p.sep)
	}
	return p.fixed
}

func validate(parts []Part) error {
	var errs []error
	fillCount := 0
	for _, p := range parts {
		if !p.isSep && p.fill {
			fillCount++
		}
		if !p.isSep && !p.fill && p.fixed < 0 {
			errs = append(errs, errors.New("region: Fixed part must be non-negative"))
		}
	}
	if fillCount != 1 {
		errs = append(errs, ErrSplitterSpec)
	}
	return multierr.Combine(errs...)
}

// Cols partitions r along the X axis per parts, in order, returning
// the resulting children (separators are drawn directly into the
// Screen, not returned). Fails with (nil, err) — leaving r untouched
// — if parts is malformed or the declared minimum width exceeds r's
// available width.
func Cols(r Region, parts ...Part) ([]Region, error) {
	if err := validate(parts); err != nil {
		return nil, err
	}
	fixedSum := 0
	for _, p := range parts {
		if !p.fill {
			fixedSum += p.width()
		}
	}
	fillWidth := r.bounds.Size.X - fixedSum
	if fillWidth < 0 {
		return nil, ErrOverflow
	}

	children := make([]Region, 0, len(parts))
	cursor := r.bounds.Pos.X
	for _, p := range parts {
		w := p.width()
		if p.fill {
			w = fillWidth
		}
		b := screen.Bounds{Pos: screen.XY{X: cursor, Y: r.bounds.Pos.Y}, Size: screen.XY{X: w, Y: r.bounds.Size.Y}}
		if p.isSep {
			drawVerticalSep(r.target, b, p.sep)
		} else {
			children = append(children, r.child(b))
		}
		cursor += w
	}
	return children, nil
}

// Rows partitions r along the Y axis per parts, analogous to Cols.
func Rows(r Region, parts ...Part) ([]Region, error) {
	if err := validate(parts); err != nil {
		return nil, err
	}
	fixedSum := 0
	for _, p := range parts {
		if !p.fill {
			fixedSum += p.width()
		}
	}
	fillHeight := r.bounds.Size.Y - fixedSum
	if fillHeight < 0 {
		return nil, ErrOverflow
	}

	children := make([]Region, 0, len(parts))
	cursor := r.bounds.Pos.Y
	for _, p := range parts {
		h := p.width()
		if p.fill {
			h = fillHeight
		}
		b := screen.Bounds{Pos: screen.XY{X: r.bounds.Pos.X, Y: cursor}, Size: screen.XY{X: r.bounds.Size.X, Y: h}}
		if p.isSep {
			drawHorizontalSep(r.target, b, p.sep)
		} else {
			children = append(children, r.child(b))
		}
		cursor += h
	}
	return children, nil
}

// drawVerticalSep renders template repeating across every row of b,
// reading across b's own width per row (a column separator drawn
// vertically across all rows it spans).
func drawVerticalSep(s *screen.Screen, b screen.Bounds, template string) {
	runes := []rune(template)
	if len(runes) == 0 {
		return
	}
	for y := 0; y < b.Size.Y; y++ {
		for x := 0; x < b.Size.X; x++ {
			s.Set(b.Pos.X+x, b.Pos.Y+y, screen.Cell{Rune: runes[x%len(runes)]})
		}
	}
}

// drawHorizontalSep renders template repeating across every column of
// b (a row separator drawn horizontally across all columns it
// spans).
func drawHorizontalSep(s *screen.Screen, b screen.Bounds, template string) {
	runes := []rune(template)
	if len(runes) == 0 {
		return
	}
	for y := 0; y < b.Size.Y; y++ {
		for x := 0; x < b.Size.X; x++ {
			s.Set(b.Pos.X+x, b.Pos.Y+y, screen.Cell{Rune: runes[y%len(runes)]})
		}
	}
}
