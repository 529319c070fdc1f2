package message

import "github.com/garaekz/agentfx/agent"

// Replies is a per-round scratch buffer of newly queued messages and
// newly spawned agents. It is constructed fresh for each round and
// dropped at round end; only the agent or game currently reacting may
// mutate it, and it is never observed concurrently by another
// participant. It implements agent.Replier[M] so Agent/Game code can
// queue/spawn without importing this package directly.
type Replies[M any] struct {
	Messages []M
	Agents   []agent.Agent[M]
}

// Queue appends msg to this round's outgoing message sequence.
func (r *Replies[M]) Queue(msg M) {
	r.Messages = append(r.Messages, msg)
}

// QueueAll appends every message in msgs, preserving order.
func (r *Replies[M]) QueueAll(msgs []M) {
	r.Messages = append(r.Messages, msgs...)
}

// Spawn appends a to this round's newly-spawned agent sequence. The
// agent is admitted at the next round boundary; Start runs before any
// React.
func (r *Replies[M]) Spawn(a agent.Agent[M]) {
	r.Agents = append(r.Agents, a)
}

// QueueLen reports how many messages have been queued so far this
// round (for pacing/instrumentation).
func (r *Replies[M]) QueueLen() int {
	return len(r.Messages)
}

// SpawnLen reports how many agents have been spawned so far this
// round (for pacing/instrumentation).
func (r *Replies[M]) SpawnLen() int {
	return len(r.Agents)
}
