package main

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/internal/share"
	"github.com/garaekz/agentfx/runner"
	"github.com/garaekz/agentfx/writer"
)

const collatzAgentCount = 10_000

// collatzMsg carries one Collatz value; Tick is a sentinel no agent's
// residue check ever matches, since every real value is positive.
type collatzMsg int64

func (collatzMsg) Tick() collatzMsg { return -1 }

// collatzObserver is the Game for this demo: it never attaches any
// UI, it just counts completions and totals by watching every message
// go by, the way mass-messages.rs's TinyGame does.
type collatzObserver struct {
	completed int64
	total     int64
	max       int64
}

func (o *collatzObserver) Message(msg collatzMsg, _ agent.Replier[collatzMsg]) agent.Response {
	v := int64(msg)
	if v < 0 {
		return agent.Nothing
	}
	atomic.AddInt64(&o.total, 1)
	if v == 1 {
		atomic.AddInt64(&o.completed, 1)
		return agent.Nothing
	}
	for {
		cur := atomic.LoadInt64(&o.max)
		if v <= cur || atomic.CompareAndSwapInt64(&o.max, cur, v) {
			break
		}
	}
	return agent.Nothing
}

// collatzAgent owns one residue class mod collatzAgentCount and applies
// one Collatz step to every value in that class: n/2 if even, 3n+1
// otherwise. A value of 1 (or the tick sentinel) is ignored outright;
// the result is queued unconditionally, letting the observer watch the
// chain's terminal 1 go by rather than the agent swallowing it.
type collatzAgent struct {
	index int64
}

func (a *collatzAgent) Start(agent.Replier[collatzMsg]) control.ControlFlow {
	return control.Continue
}

func (a *collatzAgent) React(msg collatzMsg, r agent.Replier[collatzMsg]) control.ControlFlow {
	v := int64(msg)
	if v <= 1 {
		return control.Continue
	}
	if v%collatzAgentCount != a.index {
		return control.Continue
	}
	var next int64
	if v%2 == 0 {
		next = v / 2
	} else {
		next = 3*v + 1
	}
	r.Queue(collatzMsg(next))
	return control.Continue
}

// runCollatzDemo spawns one agent per residue class, seeds one message
// per starting value 1..=collatzAgentCount, and drains rounds until
// every chain has reached 1 (§8 scenario 1).
func runCollatzDemo() {
	log := writer.NewConsoleWriter(os.Stdout, writer.ConsoleOptions{
		Level:      share.LevelInfo,
		BadgeStyle: share.BadgeStyleDefault,
	})

	observer := &collatzObserver{}
	rn := runner.New[collatzMsg](observer, control.SystemClock{}, runner.WithLogger(log))

	for i := int64(0); i < collatzAgentCount; i++ {
		rn.Spawn(&collatzAgent{index: i})
	}
	for i := int64(1); i <= collatzAgentCount; i++ {
		rn.QueueMessage(collatzMsg(i))
	}

	ctx := context.Background()
	rounds := 0
	for {
		if _, err := rn.Round(ctx); err != nil {
			log.Write(&share.Entry{Level: share.LevelError, Message: "round failed", Fields: share.Fields{"error": err.Error()}})
			return
		}
		rounds++
		if atomic.LoadInt64(&observer.completed) == collatzAgentCount {
			break
		}
	}

	log.Write(&share.Entry{
		Level:   share.LevelSuccess,
		Message: "collatz fanout complete",
		Fields: share.Fields{
			"completions":   atomic.LoadInt64(&observer.completed),
			"total_msgs":    atomic.LoadInt64(&observer.total),
			"max_value":     atomic.LoadInt64(&observer.max),
			"rounds_driven": rounds,
		},
	})
}
