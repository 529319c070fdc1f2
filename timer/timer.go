// Package timer implements the steady-pulse Timer described in §4.8
// of the core spec: a next-tick instant plus a period, with catch-up
// and resync rules so slow frames don't cause runaway tick bursts.
package timer

import (
	"time"

	"github.com/garaekz/agentfx/control"
)

// Timer stores a next-tick instant and a period. Tick, when called
// close enough to schedule, advances by exactly one period to stay on
// grid; otherwise it resyncs to now+period, dropping any missed ticks.
type Timer struct {
	clk    control.Clock
	next   time.Time
	period time.Duration
}

// New constructs a Timer whose first tick is due right now.
func New(clk control.Clock, period time.Duration) *Timer {
	return &Timer{clk: clk, next: clk.Now(), period: period}
}

// Tick advances the timer's next-tick instant by one rule: if now is
// still within half a period of the schedule, stay on grid
// (next += period); otherwise resync to now+period, silently dropping
// whatever ticks were missed.
func (t *Timer) Tick() {
	now := t.clk.Now()
	if now.Before(t.next.Add(t.period / 2)) {
		t.next = t.next.Add(t.period)
	} else {
		t.next = now.Add(t.period)
	}
}

// Ready reports whether now has passed the scheduled tick; if so it
// also advances the schedule (equivalent to calling Tick).
func (t *Timer) Ready() bool {
	if t.clk.Now().After(t.next) {
		t.Tick()
		return true
	}
	return false
}

// Remaining returns the saturated (never negative) duration until the
// next tick.
func (t *Timer) Remaining() time.Duration {
	d := t.next.Sub(t.clk.Now())
	if d < 0 {
		return 0
	}
	return d
}
