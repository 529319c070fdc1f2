package runner

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/internal/share"
	"github.com/garaekz/agentfx/message"
)

// RoundStats reports what happened in one Round, for pacing and
// instrumentation (spec §4.3's Replies length accessors, lifted to
// round granularity).
type RoundStats struct {
	Admitted   int
	ReadyCount int
	BatchSize  int
	WasTick    bool
	Reaped     int
	LiveAfter  int
	// Response is the worst (most severe) of every Response the Game
	// returned this round; gamefx uses it to decide whether a redraw
	// is owed before the next input tick.
	Response agent.Response
}

// Round performs exactly one drain of the pending-message queue,
// implementing the eight-step algorithm of §4.5.
func (r *Runner[M]) Round(ctx context.Context) (RoundStats, error) {
	var stats RoundStats

	// 1. Admit pending agents.
	r.mu.Lock()
	admitted := r.pendingAgents
	r.pendingAgents = nil
	for _, a := range admitted {
		r.live = append(r.live, &liveAgent[M]{worker: a})
	}
	stats.Admitted = len(admitted)

	// 2. Compute ready set.
	ready := make([]*liveAgent[M], 0, len(r.live))
	for _, la := range r.live {
		if !la.started || la.cf.IsReady(r.clk) {
			ready = append(ready, la)
		}
	}
	stats.ReadyCount = len(ready)

	// 3. Choose the message batch.
	var batch []M
	if len(r.pendingMsgs) > 0 {
		batch = r.pendingMsgs
		r.pendingMsgs = nil
	} else if len(ready) > 0 {
		var zero M
		batch = []M{zero.Tick()}
		stats.WasTick = true
	}
	stats.BatchSize = len(batch)
	r.mu.Unlock()

	if len(batch) == 0 {
		r.reap(&stats)
		return stats, nil
	}

	// 4. Dispatch to each ready agent, data-parallel across agents,
	// straight-line per agent.
	repliesByAgent := make([]message.Replies[M], len(ready))
	eg := new(errgroup.Group)
	if r.cfg.MaxParallel > 0 {
		eg.SetLimit(r.cfg.MaxParallel)
	}

	var mu sync.Mutex
	var errs []error

	for i, la := range ready {
		i, la := i, la
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				mu.Lock()
				errs = append(errs, ctx.Err())
				mu.Unlock()
				return nil
			default:
			}
			replies := &repliesByAgent[i]
			if !la.started {
				la.cf = la.worker.Start(replies)
				la.started = true
				if la.cf.Kind == control.KindKill {
					return nil
				}
			}
			for _, msg := range batch {
				la.cf = la.worker.React(msg, replies)
				if la.cf.Kind == control.KindKill {
					break
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		errs = append(errs, err)
	}
	if combined := multierr.Combine(errs...); combined != nil {
		return stats, combined
	}

	// 5. Dispatch to the Game, serialized.
	var gameReplies message.Replies[M]
	for _, msg := range batch {
		stats.Response = stats.Response.Merge(r.game.Message(msg, &gameReplies))
	}

	// 6. Merge replies, in registration order; agent order then game.
	r.mu.Lock()
	for _, rep := range repliesByAgent {
		r.pendingMsgs = append(r.pendingMsgs, rep.Messages...)
		r.pendingAgents = append(r.pendingAgents, rep.Agents...)
	}
	r.pendingMsgs = append(r.pendingMsgs, gameReplies.Messages...)
	r.pendingAgents = append(r.pendingAgents, gameReplies.Agents...)
	r.mu.Unlock()

	// 7. Reap.
	r.reap(&stats)

	r.log(stats)
	return stats, nil
}

// reap removes every live agent whose last ControlFlow is Kill.
func (r *Runner[M]) reap(stats *RoundStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.live[:0]
	for _, la := range r.live {
		if la.cf.Kind == control.KindKill {
			stats.Reaped++
			continue
		}
		kept = append(kept, la)
	}
	r.live = kept
	stats.LiveAfter = len(r.live)
}

func (r *Runner[M]) log(stats RoundStats) {
	if r.cfg.Logger == nil {
		return
	}
	r.cfg.Logger.Write(&share.Entry{
		Level:   share.LevelDebug,
		Message: "round complete",
		Fields: share.Fields{
			"admitted":   stats.Admitted,
			"ready":      stats.ReadyCount,
			"batch_size": stats.BatchSize,
			"was_tick":   stats.WasTick,
			"reaped":     stats.Reaped,
			"live_after": stats.LiveAfter,
		},
	})
}
