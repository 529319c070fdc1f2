package region

import (
	"errors"
	"testing"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/screen"
)

func TestSplitterOkOnFortyColumns(t *testing.T) {
	s := screen.New(screen.XY{X: 40, Y: 5})
	r := Root(s, action.RedrawAction)

	children, err := Cols(r, Fixed(15), Sep(" | "), Fill())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if got := children[0].Bounds().Size.X; got != 15 {
		t.Fatalf("first child width = %d, want 15", got)
	}
	if got := children[1].Bounds().Size.X; got != 22 {
		t.Fatalf("second child width = %d, want 22 (40-15-3)", got)
	}
}

func TestSplitterErrOnTenColumns(t *testing.T) {
	s := screen.New(screen.XY{X: 10, Y: 5})
	r := Root(s, action.RedrawAction)

	_, err := Cols(r, Fixed(15), Sep(" | "), Fill())
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestMouseRoutingReachesOnlyContainingChild(t *testing.T) {
	s := screen.New(screen.XY{X: 80, Y: 10})
	press := action.NewMousePress(action.MouseLeft, screen.XY{X: 25, Y: 3})
	r := Root(s, press)

	children, err := Cols(r, Fixed(20), Fill())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	left, right := children[0], children[1]

	if left.Action().Kind != action.Redraw {
		t.Fatalf("left child should see Redraw, got %+v", left.Action())
	}
	if right.Action().Kind != action.MousePress {
		t.Fatalf("right child should see the mouse press, got %+v", right.Action())
	}
}

func TestKeyPressReachesAllChildren(t *testing.T) {
	s := screen.New(screen.XY{X: 80, Y: 10})
	key := action.NewKeyPress(action.KeyEnter, 0, action.ModNone)
	r := Root(s, key)

	children, err := Cols(r, Fixed(20), Fill())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range children {
		if c.Action().Kind != action.KeyPress {
			t.Fatalf("child %d should see the key press, got %+v", i, c.Action())
		}
	}
}

func TestSplitLeftFailsWhenTooWide(t *testing.T) {
	s := screen.New(screen.XY{X: 5, Y: 5})
	r := Root(s, action.RedrawAction)

	taken, _, ok := r.SplitLeft(10)
	if ok {
		t.Fatal("expected SplitLeft to fail")
	}
	if taken.Bounds() != r.Bounds() {
		t.Fatal("expected original region returned unchanged on failure")
	}
}

func TestSplitLeftRightPartitionExactly(t *testing.T) {
	s := screen.New(screen.XY{X: 10, Y: 1})
	r := Root(s, action.RedrawAction)

	taken, remainder, ok := r.SplitLeft(4)
	if !ok {
		t.Fatal("expected SplitLeft to succeed")
	}
	if taken.Bounds().Size.X != 4 || remainder.Bounds().Size.X != 6 {
		t.Fatalf("unexpected split sizes: taken=%v remainder=%v", taken.Bounds(), remainder.Bounds())
	}
	if taken.Bounds().Pos.X != 0 || remainder.Bounds().Pos.X != 4 {
		t.Fatalf("unexpected split positions: taken=%v remainder=%v", taken.Bounds(), remainder.Bounds())
	}
}

func TestButtonActivatesOnMousePress(t *testing.T) {
	s := screen.New(screen.XY{X: 10, Y: 3})
	press := action.NewMousePress(action.MouseLeft, screen.XY{X: 2, Y: 1})
	r := Root(s, press)

	btn := Button{Label: "OK"}
	if !btn.Attach(r) {
		t.Fatal("expected button press inside bounds to activate")
	}
}

func TestButtonIgnoresOutOfBoundsPress(t *testing.T) {
	s := screen.New(screen.XY{X: 10, Y: 3})
	r := Root(s, action.RedrawAction)

	children, err := Cols(r, Fixed(5), Fill())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	left := children[0]
	press := action.NewMousePress(action.MouseLeft, screen.XY{X: 8, Y: 1})
	leftWithOutsidePress := Root(s, press)
	taken, _, _ := leftWithOutsidePress.SplitLeft(5)
	_ = left

	btn := Button{Label: "OK"}
	if btn.Attach(taken) {
		t.Fatal("expected button outside press position to stay inactive")
	}
}
