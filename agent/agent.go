// Package agent defines the Agent[M]/Game[M] worker contracts (§4.3,
// §4.6 of the core spec) and the Bundle take-once container used to
// carry one-shot-consumable workers inside messages (§9 design notes).
package agent

import "github.com/garaekz/agentfx/control"

// Replier is the minimal surface Replies exposes to a reacting
// participant: queue new messages, spawn new agents. Declared here
// (rather than in the message package) so Agent/Game can reference it
// without an import cycle; message.Replies[M] implements it.
type Replier[M any] interface {
	Queue(msg M)
	Spawn(a Agent[M])
}

// Agent is a worker with a two-operation lifecycle: Start is called
// exactly once when admitted, React is called at most once per
// (round, message) pair while ready. Both return the ControlFlow
// governing readiness for the next round.
type Agent[M any] interface {
	Start(replies Replier[M]) control.ControlFlow
	React(msg M, replies Replier[M]) control.ControlFlow
}

// Game is the single privileged participant: it observes every
// message via Message, and on input or frame tick attaches itself
// into the root region via Attach (defined in the gamefx package,
// which composes Game with the region/screen types). The Message
// method alone lives here since it only depends on M.
type Game[M any] interface {
	Message(msg M, replies Replier[M]) Response
}
