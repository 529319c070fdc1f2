// Package runner implements the round scheduler (§4.5 of the core
// spec): the dispatch loop that drains a shared message queue into
// every ready agent and the game, collecting new messages and freshly
// spawned agents into Replies merged back at round boundary.
package runner

import (
	"context"
	"sync"

	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/internal/share"
	"github.com/garaekz/agentfx/message"
)

// liveAgent tracks one admitted agent's scheduling state: its
// last-returned ControlFlow and whether Start has run yet.
type liveAgent[M any] struct {
	worker  agent.Agent[M]
	cf      control.ControlFlow
	started bool
}

// Runner holds the scheduler state described in §4.5: the live agent
// list, the pending-messages and pending-agents queues, and a handle
// to the Game. It does not own the IoSystem or frame pacing — that is
// gamefx's job, layered on top via MergeExternalReplies.
type Runner[M message.Ticker[M]] struct {
	clk  control.Clock
	game agent.Game[M]
	cfg  Config

	mu            sync.Mutex
	live          []*liveAgent[M]
	pendingMsgs   []M
	pendingAgents []agent.Agent[M]

	RoundCount int
}

// New constructs a Runner for game, driven by clk's notion of "now".
func New[M message.Ticker[M]](game agent.Game[M], clk control.Clock, opts ...Option) *Runner[M] {
	cfg := Config{}
	share.ApplyOptions(&cfg, opts...)
	return &Runner[M]{clk: clk, game: game, cfg: cfg}
}

// Spawn seeds an agent directly into the pending-agents queue, to be
// admitted at the start of the next Round. Used both for initial
// population and by external callers (e.g. gamefx merging a frame's
// Attach replies).
func (r *Runner[M]) Spawn(a agent.Agent[M]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingAgents = append(r.pendingAgents, a)
}

// QueueMessage enqueues msg for the next round's batch.
func (r *Runner[M]) QueueMessage(msg M) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingMsgs = append(r.pendingMsgs, msg)
}

// MergeExternalReplies merges messages and agents produced outside a
// Round — concretely, gamefx's frame-loop Attach call — using exactly
// the same queue-order guarantees as an in-round agent's Replies
// (§4.6: "any queued replies from the game are merged exactly as an
// agent's replies").
func (r *Runner[M]) MergeExternalReplies(msgs []M, agents []agent.Agent[M]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingMsgs = append(r.pendingMsgs, msgs...)
	r.pendingAgents = append(r.pendingAgents, agents...)
}

// LiveCount reports how many agents are currently live (admitted, not
// yet reaped).
func (r *Runner[M]) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Run drives Round repeatedly until ctx is canceled, a round returns
// an error, or onRound (if non-nil) returns true. onRound is invoked
// once after every round with that round's RoundStats. Each completed
// round increments RoundCount.
func (r *Runner[M]) Run(ctx context.Context, onRound func(RoundStats) (stop bool)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		stats, err := r.Round(ctx)
		if err != nil {
			return err
		}
		r.RoundCount++
		if onRound != nil && onRound(stats) {
			return nil
		}
	}
}
