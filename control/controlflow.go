package control

import "time"

// Kind tags which variant of ControlFlow is populated.
type Kind int

const (
	KindContinue Kind = iota
	KindKill
	KindHandle
	KindTime
)

// ControlFlow is the per-agent readiness state an agent returns after
// reacting: Continue (always ready next round), Kill (terminal, agent
// is reaped), Handle(h) (ready iff h has been woken), or Time(t)
// (ready iff the clock has passed t).
type ControlFlow struct {
	Kind   Kind
	Handle WaitHandle
	Time   time.Time
}

// Continue is the always-ready ControlFlow.
var Continue = ControlFlow{Kind: KindContinue}

// Kill is the terminal ControlFlow; the agent is dropped from the
// registry and never reacts again.
var Kill = ControlFlow{Kind: KindKill}

// Handle builds a ControlFlow ready iff h.IsWoken().
func Handle(h WaitHandle) ControlFlow {
	return ControlFlow{Kind: KindHandle, Handle: h}
}

// Time builds a ControlFlow ready iff the clock has passed t.
func Time(t time.Time) ControlFlow {
	return ControlFlow{Kind: KindTime, Time: t}
}

// SleepFor builds a Time ControlFlow d after clk's current time.
func SleepFor(clk Clock, d time.Duration) ControlFlow {
	return Time(clk.Now().Add(d))
}

// SleepUntil builds a Time ControlFlow for the given instant.
func SleepUntil(t time.Time) ControlFlow {
	return Time(t)
}

// IsReady reports whether cf is ready to react this round, per clk's
// notion of "now".
func (cf ControlFlow) IsReady(clk Clock) bool {
	switch cf.Kind {
	case KindContinue:
		return true
	case KindKill:
		return false
	case KindHandle:
		return cf.Handle.IsWoken()
	case KindTime:
		return clk.Now().After(cf.Time)
	default:
		return false
	}
}
