package action

import (
	"testing"

	"github.com/garaekz/agentfx/screen"
)

func TestIsPositional(t *testing.T) {
	cases := []struct {
		a    Action
		want bool
	}{
		{NewMousePress(MouseLeft, screen.XY{X: 1, Y: 1}), true},
		{Action{Kind: MouseMove}, true},
		{NewKeyPress(KeyEnter, 0, ModNone), false},
		{RedrawAction, false},
		{Action{Kind: Closed}, false},
	}
	for _, c := range cases {
		if got := c.a.IsPositional(); got != c.want {
			t.Errorf("IsPositional(%+v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.Has(ModShift) {
		t.Fatal("expected ModShift present")
	}
	if m.Has(ModAlt) {
		t.Fatal("did not expect ModAlt present")
	}
}
