package iosys

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/screen"
)

func TestDecodeKeyPlainRune(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	a := decodeKey('q', r)
	if a.Kind != action.KeyPress || a.Key != action.KeyRune || a.Rune != 'q' {
		t.Fatalf("unexpected action: %+v", a)
	}
}

func TestDecodeKeyEnterAndBackspace(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	if a := decodeKey('\r', r); a.Key != action.KeyEnter {
		t.Fatalf("expected KeyEnter, got %+v", a)
	}
	if a := decodeKey(0x7f, r); a.Key != action.KeyBackspace {
		t.Fatalf("expected KeyBackspace, got %+v", a)
	}
}

func TestDecodeArrowEscape(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("[A"))
	a := decodeKey(0x1b, r)
	if a.Key != action.KeyUp {
		t.Fatalf("expected KeyUp, got %+v", a)
	}
}

func TestDecodeMouseMoveWithHeldButton(t *testing.T) {
	// SGR drag report: button 0 (left) + motion bit (32) = 32, at (5,3).
	r := bufio.NewReader(strings.NewReader("[<32;5;3M"))
	a := decodeKey(0x1b, r)
	if a.Kind != action.MouseMove {
		t.Fatalf("expected MouseMove, got %+v", a)
	}
	if a.HeldButton == nil || *a.HeldButton != action.MouseLeft {
		t.Fatalf("expected HeldButton=MouseLeft, got %+v", a.HeldButton)
	}
	if a.Pos.X != 4 || a.Pos.Y != 2 {
		t.Fatalf("expected 0-indexed pos (4,2), got %+v", a.Pos)
	}
}

func TestDecodeMouseMoveWithNoButtonHeld(t *testing.T) {
	// button code 3 + motion bit (32) = 35: moved with nothing held.
	r := bufio.NewReader(strings.NewReader("[<35;1;1M"))
	a := decodeKey(0x1b, r)
	if a.Kind != action.MouseMove {
		t.Fatalf("expected MouseMove, got %+v", a)
	}
	if a.HeldButton != nil {
		t.Fatalf("expected no HeldButton, got %+v", a.HeldButton)
	}
}

func TestDecodeMousePressAndRelease(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("[<2;10;20M"))
	a := decodeKey(0x1b, r)
	if a.Kind != action.MousePress || a.Button != action.MouseRight {
		t.Fatalf("expected MousePress/MouseRight, got %+v", a)
	}

	r = bufio.NewReader(strings.NewReader("[<2;10;20m"))
	a = decodeKey(0x1b, r)
	if a.Kind != action.MouseRelease || a.Button != action.MouseRight {
		t.Fatalf("expected MouseRelease/MouseRight, got %+v", a)
	}
}

// fakeIO is a minimal IoSystem double for exercising MainThreadRunner
// without a real terminal.
type fakeIO struct {
	stopped bool
}

func (f *fakeIO) Size() (screen.XY, error)                     { return screen.XY{X: 80, Y: 24}, nil }
func (f *fakeIO) Draw(s *screen.Screen) error                   { return nil }
func (f *fakeIO) Input(ctx context.Context) (action.Action, error) {
	return action.Action{Kind: action.Closed}, nil
}
func (f *fakeIO) PollInput() (action.Action, bool, error) { return action.Action{}, false, nil }
func (f *fakeIO) Stop()                                   { f.stopped = true }

func TestMainThreadRunnerStepStopsOnCancel(t *testing.T) {
	io := &fakeIO{}
	r := NewMainThreadRunner(io, func(ctx context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stopped, err := r.Step(ctx)
	if !stopped {
		t.Fatal("expected Step to report stopped on canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !io.stopped {
		t.Fatal("expected underlying IoSystem.Stop to be called")
	}
}

func TestMainThreadRunnerRunPropagatesInputError(t *testing.T) {
	io := &fakeIO{}
	boom := errors.New("boom")
	r := NewMainThreadRunner(io, func(ctx context.Context) error { return boom })

	err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}
}
