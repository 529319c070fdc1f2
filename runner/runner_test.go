package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
)

// collatzMsg carries one Collatz value; Tick is a sentinel no agent's
// residue check ever matches (every real value is non-negative).
type collatzMsg int64

func (collatzMsg) Tick() collatzMsg { return -1 }

type noopGame[M any] struct{}

func (noopGame[M]) Message(M, agent.Replier[M]) agent.Response { return agent.Nothing }

// collatzAgent owns one residue class mod n and applies one Collatz
// step to every value in that class, queueing the result
// unconditionally. It never returns Kill: many distinct chains can
// pass through the same residue over time, so the agent must keep
// servicing it for the life of the run. A value of 1 (or the tick
// sentinel) is ignored outright; the completion itself is counted by
// collatzCompleteGame, which watches for that 1 go by.
type collatzAgent struct {
	n     int64
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
	if v%a.n != a.index%a.n {
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

// collatzCompleteGame counts a completion each time it observes the
// message value 1 go by, excluding the tick sentinel from the count.
type collatzCompleteGame struct {
	completed int64
}

func (g *collatzCompleteGame) Message(msg collatzMsg, _ agent.Replier[collatzMsg]) agent.Response {
	if msg == 1 {
		atomic.AddInt64(&g.completed, 1)
	}
	return agent.Nothing
}

func TestCollatzFanoutTerminates(t *testing.T) {
	const n = 25
	game := &collatzCompleteGame{}
	rn := New[collatzMsg](game, control.SystemClock{})

	for i := int64(1); i <= n; i++ {
		rn.Spawn(&collatzAgent{n: n, index: i})
	}
	for i := int64(1); i <= n; i++ {
		rn.QueueMessage(collatzMsg(i))
	}

	ctx := context.Background()
	for round := 0; round < 10_000; round++ {
		if _, err := rn.Round(ctx); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if atomic.LoadInt64(&game.completed) == n {
			return
		}
	}
	t.Fatalf("only %d/%d chains completed within round budget", atomic.LoadInt64(&game.completed), n)
}

type handleAgent struct {
	cf     control.ControlFlow
	gotMsg bool
}

func (a *handleAgent) Start(agent.Replier[collatzMsg]) control.ControlFlow {
	return a.cf
}

func (a *handleAgent) React(msg collatzMsg, r agent.Replier[collatzMsg]) control.ControlFlow {
	a.gotMsg = true
	return a.cf
}

func TestWakeOnHandlePropagatesThroughRunner(t *testing.T) {
	game := noopGame[collatzMsg]{}
	rn := New[collatzMsg](game, control.SystemClock{})

	cf, h := control.Wait()
	a := &handleAgent{cf: cf}
	rn.Spawn(a)

	ctx := context.Background()
	// Round 1 admits and starts the agent. A not-yet-started agent is
	// ready, so right after Start it reacts to the round's tick; React
	// hands back the unwoken Handle, so it sleeps from round 2 on.
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if !a.gotMsg {
		t.Fatal("agent should react to round 1's tick right after Start")
	}
	a.gotMsg = false

	for i := 0; i < 5; i++ {
		if _, err := rn.Round(ctx); err != nil {
			t.Fatalf("round: %v", err)
		}
	}
	if a.gotMsg {
		t.Fatal("agent reacted before its handle was woken")
	}

	h.Wake()
	a.cf = control.Continue
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round after wake: %v", err)
	}
	if !a.gotMsg {
		t.Fatal("expected agent to react on the round after Wake")
	}
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

type timerAgent struct {
	cf     control.ControlFlow
	gotMsg bool
}

func (a *timerAgent) Start(agent.Replier[collatzMsg]) control.ControlFlow {
	return a.cf
}

func (a *timerAgent) React(msg collatzMsg, r agent.Replier[collatzMsg]) control.ControlFlow {
	a.gotMsg = true
	return a.cf
}

func TestTimerGatedAgentThroughRunner(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	game := noopGame[collatzMsg]{}
	rn := New[collatzMsg](game, clk)

	a := &timerAgent{cf: control.SleepFor(clk, 50*time.Millisecond)}
	rn.Spawn(a)
	ctx := context.Background()

	// Round 1 admits and starts the agent, which as not yet started also
	// reacts to the round's tick; React hands back the Time flow, so it
	// sleeps from round 2 until the deadline.
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	a.gotMsg = false

	clk.advance(30 * time.Millisecond)
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 2: %v", err)
	}
	if a.gotMsg {
		t.Fatal("agent should not be ready at +30ms")
	}

	clk.advance(30 * time.Millisecond) // total +60ms, past the 50ms deadline
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 3: %v", err)
	}
	if !a.gotMsg {
		t.Fatal("agent should be ready past its deadline")
	}
}

// killAgent returns Kill as soon as it sees a real (non-tick)
// message, to exercise the reap step.
type killAgent struct{ reacted bool }

func (a *killAgent) Start(agent.Replier[collatzMsg]) control.ControlFlow {
	return control.Continue
}

func (a *killAgent) React(msg collatzMsg, r agent.Replier[collatzMsg]) control.ControlFlow {
	if msg < 0 {
		return control.Continue
	}
	a.reacted = true
	return control.Kill
}

func TestKillAgentStopsReactingNextRound(t *testing.T) {
	game := noopGame[collatzMsg]{}
	rn := New[collatzMsg](game, control.SystemClock{})

	a := &killAgent{}
	rn.Spawn(a)
	rn.QueueMessage(collatzMsg(1))

	ctx := context.Background()
	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if !a.reacted {
		t.Fatal("expected agent to react to the queued message")
	}
	if rn.LiveCount() != 0 {
		t.Fatalf("expected agent reaped after returning Kill, got %d live", rn.LiveCount())
	}
}

func TestKillFromStartDrainsQueuedReplies(t *testing.T) {
	game := noopGame[collatzMsg]{}
	rn := New[collatzMsg](game, control.SystemClock{})

	rn.Spawn(startKillAgent{})
	ctx := context.Background()

	if _, err := rn.Round(ctx); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if rn.LiveCount() != 0 {
		t.Fatal("expected agent reaped immediately after Kill from Start")
	}

	stats, err := rn.Round(ctx)
	if err != nil {
		t.Fatalf("round 2: %v", err)
	}
	if stats.BatchSize != 1 {
		t.Fatalf("expected the message queued in Start to survive as next round's batch, got batch size %d", stats.BatchSize)
	}
}

type startKillAgent struct{}

func (startKillAgent) Start(r agent.Replier[collatzMsg]) control.ControlFlow {
	r.Queue(collatzMsg(99))
	return control.Kill
}

func (startKillAgent) React(collatzMsg, agent.Replier[collatzMsg]) control.ControlFlow {
	panic("must not be called: agent was killed in Start")
}
