package iosys

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/color"
	"github.com/garaekz/agentfx/internal/share"
	"github.com/garaekz/agentfx/screen"
	"github.com/garaekz/agentfx/terminal"
	"github.com/garaekz/agentfx/writer"
)

// TerminalConfig configures a Terminal IoSystem using the share
// functional-options/Overload convention.
type TerminalConfig struct {
	In           *os.File
	Out          *os.File
	Logger       share.Writer
	DoubleBuffer bool
}

// Option sets a TerminalConfig field.
type Option = share.Option[TerminalConfig]

// WithLogger attaches a share.Writer the Terminal backend reports
// backend I/O failures through (§7 error taxonomy).
func WithLogger(w share.Writer) Option {
	return func(c *TerminalConfig) { c.Logger = w }
}

// WithDoubleBuffer enables the writer's flicker-free repeated-frame
// suppression.
func WithDoubleBuffer(enabled bool) Option {
	return func(c *TerminalConfig) { c.DoubleBuffer = enabled }
}

// Terminal is an IoSystem backed by a real terminal via the ambient
// writer/terminal stack: raw mode for input, the shared TerminalWriter
// for double-buffered output.
type Terminal struct {
	in  *os.File
	out *writer.TerminalWriter

	mu        sync.Mutex
	rawState  *term.State
	stopped   bool
	stopCh    chan struct{}
	logger    share.Writer
	reader    *bufio.Reader
}

// NewTerminal constructs a Terminal IoSystem over stdin/stdout (or
// the overridden files), enabling raw mode immediately.
func NewTerminal(opts ...Option) (*Terminal, error) {
	cfg := TerminalConfig{}
	share.ApplyOptions(&cfg, opts...)
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	t := &Terminal{
		in:     cfg.In,
		out:    writer.NewTerminalWriter(cfg.Out, writer.TerminalOptions{DoubleBuffer: cfg.DoubleBuffer}),
		stopCh: make(chan struct{}),
		logger: cfg.Logger,
		reader: bufio.NewReader(cfg.In),
	}

	state, err := terminal.MakeRaw(cfg.In.Fd())
	if err != nil {
		return nil, fmt.Errorf("iosys: enable raw mode: %w", err)
	}
	t.rawState = state
	t.out.HideCursor()
	return t, nil
}

// Size returns the current terminal cell extent.
func (t *Terminal) Size() (screen.XY, error) {
	cols, rows, err := t.out.GetSize()
	if err != nil {
		return screen.XY{}, fmt.Errorf("iosys: get terminal size: %w", err)
	}
	return screen.XY{X: cols, Y: rows}, nil
}

// Draw blits s to the terminal, clamping to whatever the terminal's
// current size actually is so mismatched sizes never crash.
func (t *Terminal) Draw(s *screen.Screen) error {
	size, err := t.Size()
	if err != nil {
		t.logErr("draw: size probe failed", err)
		size = s.Size()
	}

	var buf []byte
	w, h := s.Size().X, size.Y
	if size.X < w {
		w = size.X
	}
	if s.Size().Y < h {
		h = s.Size().Y
	}

	buf = append(buf, []byte("\033[H")...)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := s.At(x, y)
			buf = append(buf, renderCell(cell, t.out.GetColorMode())...)
		}
		buf = append(buf, '\r', '\n')
	}

	if _, err := t.out.Write(buf); err != nil {
		return fmt.Errorf("iosys: draw: %w", err)
	}
	return nil
}

func renderCell(c screen.Cell, mode color.Mode) []byte {
	cfg := color.StyleConfig{
		Text:       string(c.Rune),
		ForeGround: c.Fg,
		Background: c.Bg,
		Bold:       c.Bold,
		Underline:  c.Underline,
		Mode:       mode,
	}
	return []byte(color.NewStyle(cfg))
}

// Input blocks until the next Action or ctx is canceled.
func (t *Terminal) Input(ctx context.Context) (action.Action, error) {
	type result struct {
		a   action.Action
		err error
	}
	done := make(chan result, 1)
	go func() {
		a, err := t.readAction()
		done <- result{a, err}
	}()

	select {
	case <-ctx.Done():
		return action.RedrawAction, ctx.Err()
	case <-t.stopCh:
		return action.Action{Kind: action.Closed}, nil
	case r := <-done:
		if r.err != nil {
			t.logErr("input read failed", r.err)
			return action.NewError(r.err.Error()), nil
		}
		return r.a, nil
	}
}

// PollInput is the non-blocking variant: it reports ok=false
// immediately if nothing is buffered to read.
func (t *Terminal) PollInput() (action.Action, bool, error) {
	if t.reader.Buffered() == 0 {
		return action.Action{}, false, nil
	}
	a, err := t.readAction()
	if err != nil {
		return action.Action{}, false, err
	}
	return a, true, nil
}

func (t *Terminal) readAction() (action.Action, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return action.Action{Kind: action.Closed}, nil
		}
		return action.Action{}, err
	}
	return decodeKey(r, t.reader), nil
}

// decodeKey turns a single rune (possibly the start of an ANSI escape
// sequence) into a key Action. Enter, Backspace and Tab map to their
// keys. After ESC, the arrow keys, Home, End and SGR mouse reports are
// decoded, any other CSI sequence gives an Unknown action, and a lone
// ESC gives the Escape key. Every other rune becomes a plain rune key.
func decodeKey(r rune, reader *bufio.Reader) action.Action {
	switch r {
	case '\r', '\n':
		return action.NewKeyPress(action.KeyEnter, 0, action.ModNone)
	case 0x7f, '\b':
		return action.NewKeyPress(action.KeyBackspace, 0, action.ModNone)
	case '\t':
		return action.NewKeyPress(action.KeyTab, 0, action.ModNone)
	case 0x1b:
		return decodeEscape(reader)
	default:
		return action.Action{Kind: action.KeyPress, Key: action.KeyRune, Rune: r}
	}
}

func decodeEscape(reader *bufio.Reader) action.Action {
	b1, err := reader.ReadByte()
	if err != nil || b1 != '[' {
		return action.NewKeyPress(action.KeyEscape, 0, action.ModNone)
	}
	b2, err := reader.ReadByte()
	if err != nil {
		return action.NewKeyPress(action.KeyEscape, 0, action.ModNone)
	}
	switch b2 {
	case 'A':
		return action.Action{Kind: action.KeyPress, Key: action.KeyUp}
	case 'B':
		return action.Action{Kind: action.KeyPress, Key: action.KeyDown}
	case 'C':
		return action.Action{Kind: action.KeyPress, Key: action.KeyRight}
	case 'D':
		return action.Action{Kind: action.KeyPress, Key: action.KeyLeft}
	case 'H':
		return action.Action{Kind: action.KeyPress, Key: action.KeyHome}
	case 'F':
		return action.Action{Kind: action.KeyPress, Key: action.KeyEnd}
	case '<':
		return decodeMouseSGR(reader)
	default:
		return action.Action{Kind: action.Unknown}
	}
}

// decodeMouseSGR parses an SGR mouse report (ESC [ < Cb ; Cx ; Cy M/m)
// into a positional Action. The motion bit (0x20) distinguishes a drag
// (MouseMove, carrying whichever button is held) from a press/release;
// button code 3 with the motion bit set means the pointer moved with
// no button held at all.
func decodeMouseSGR(reader *bufio.Reader) action.Action {
	cb, ok := readSGRField(reader, ';')
	if !ok {
		return action.Action{Kind: action.Unknown}
	}
	cx, ok := readSGRField(reader, ';')
	if !ok {
		return action.Action{Kind: action.Unknown}
	}
	cy, final, ok := readSGRFinal(reader)
	if !ok {
		return action.Action{Kind: action.Unknown}
	}

	pos := screen.XY{X: cx - 1, Y: cy - 1}
	const motionBit = 0x20
	motion := cb&motionBit != 0
	btnCode := cb &^ motionBit &^ 0x0c

	var btn action.MouseButton
	hasBtn := btnCode != 3
	switch btnCode & 3 {
	case 0:
		btn = action.MouseLeft
	case 1:
		btn = action.MouseMiddle
	case 2:
		btn = action.MouseRight
	}

	if motion {
		var held *action.MouseButton
		if hasBtn {
			b := btn
			held = &b
		}
		return action.NewMouseMove(held, pos)
	}
	if final == 'm' {
		return action.Action{Kind: action.MouseRelease, Button: btn, Pos: pos}
	}
	return action.NewMousePress(btn, pos)
}

// readSGRField reads decimal digits up to and including delim.
func readSGRField(reader *bufio.Reader, delim byte) (int, bool) {
	n := 0
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, false
		}
		if b == delim {
			return n, true
		}
		if b < '0' || b > '9' {
			return 0, false
		}
		n = n*10 + int(b-'0')
	}
}

// readSGRFinal reads decimal digits up to and including the terminal
// 'M' or 'm' byte.
func readSGRFinal(reader *bufio.Reader) (int, byte, bool) {
	n := 0
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, 0, false
		}
		if b == 'M' || b == 'm' {
			return n, b, true
		}
		if b < '0' || b > '9' {
			return 0, 0, false
		}
		n = n*10 + int(b-'0')
	}
}

func (t *Terminal) logErr(msg string, err error) {
	if t.logger == nil {
		return
	}
	t.logger.Write(&share.Entry{
		Level:     share.LevelError,
		Message:   fmt.Sprintf("%s: %v", msg, err),
		Timestamp: time.Now(),
	})
}

// Stop is idempotent and non-blocking; it restores terminal state and
// signals any blocked Input call.
func (t *Terminal) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.stopCh)
	t.out.ShowCursor()
	if t.rawState != nil {
		terminal.RestoreTerminal(t.in.Fd(), t.rawState)
	}
}
