// Package message defines the application message constraint and the
// per-round Replies scratch buffer (§4.3 of the core spec).
package message

// Ticker is the constraint an application message type M must
// satisfy: it must supply a distinguished Tick value, delivered as
// filler to non-idle agents when the pending queue is otherwise empty
// (never alongside a real message). Languages with reflection-based
// defaults can synthesize this; Go requires the message type to
// implement it explicitly (§9 design notes).
type Ticker[M any] interface {
	Tick() M
}
