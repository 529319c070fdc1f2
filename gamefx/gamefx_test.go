package gamefx

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/region"
	"github.com/garaekz/agentfx/runner"
	"github.com/garaekz/agentfx/screen"
)

type testMsg int

func (testMsg) Tick() testMsg { return -1 }

// scriptedIO replays a fixed sequence of Actions, then reports Closed
// to end the loop deterministically.
type scriptedIO struct {
	mu      sync.Mutex
	size    screen.XY
	acts    []action.Action
	pos     int
	draws   int
	stopped bool
}

func (s *scriptedIO) Size() (screen.XY, error) { return s.size, nil }

func (s *scriptedIO) Draw(*screen.Screen) error {
	s.mu.Lock()
	s.draws++
	s.mu.Unlock()
	return nil
}

func (s *scriptedIO) Input(ctx context.Context) (action.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.acts) {
		return action.Action{Kind: action.Closed}, nil
	}
	a := s.acts[s.pos]
	s.pos++
	return a, nil
}

func (s *scriptedIO) PollInput() (action.Action, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.acts) {
		return action.Action{}, false, nil
	}
	a := s.acts[s.pos]
	s.pos++
	return a, true, nil
}

func (s *scriptedIO) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

// countingGame attaches every frame, counting how many times Attach
// ran, and exits once exitAfter attaches have happened.
type countingGame struct {
	attaches  int
	exitAfter int
}

func (g *countingGame) Message(testMsg, agent.Replier[testMsg]) agent.Response { return agent.Nothing }

func (g *countingGame) Attach(root region.Region, replies agent.Replier[testMsg]) bool {
	g.attaches++
	replies.Queue(testMsg(g.attaches))
	return g.attaches >= g.exitAfter
}

type noopGame struct{}

func (noopGame) Message(testMsg, agent.Replier[testMsg]) agent.Response { return agent.Nothing }

func TestLoopExitsWhenGameAttachReturnsTrue(t *testing.T) {
	io := &scriptedIO{
		size: screen.XY{X: 80, Y: 24},
		acts: []action.Action{
			action.NewKeyPress(action.KeyRune, 'a', 0),
			action.NewKeyPress(action.KeyRune, 'b', 0),
			action.NewKeyPress(action.KeyRune, 'c', 0),
		},
	}
	game := &countingGame{exitAfter: 2}
	rn := runner.New[testMsg](game, control.SystemClock{})
	loop := New[testMsg](io, rn, game, control.SystemClock{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if game.attaches != 2 {
		t.Fatalf("expected exactly 2 attaches, got %d", game.attaches)
	}
	if io.draws < 2 {
		t.Fatalf("expected at least 2 draws, got %d", io.draws)
	}
}

func TestLoopExitsOnClosedAction(t *testing.T) {
	io := &scriptedIO{size: screen.XY{X: 80, Y: 24}}
	game := noopGame{}
	rn := runner.New[testMsg](game, control.SystemClock{})
	loop := New[testMsg](io, rn, gameAttachNever{}, control.SystemClock{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !io.stopped {
		t.Fatal("expected IoSystem.Stop to be called")
	}
}

type gameAttachNever struct{ noopGame }

func (gameAttachNever) Attach(region.Region, agent.Replier[testMsg]) bool { return false }

// TestLoopMergesGameRepliesIntoRunner exercises attachFrame directly
// (rather than through Run, whose background round-driving goroutine
// would race to consume the merged message before the test could
// observe it) to confirm a Game's Attach replies reach the Runner's
// pending-messages queue exactly as an agent's Replies would.
func TestLoopMergesGameRepliesIntoRunner(t *testing.T) {
	io := &scriptedIO{size: screen.XY{X: 80, Y: 24}}
	game := &countingGame{exitAfter: 1}
	rn := runner.New[testMsg](game, control.SystemClock{})
	loop := New[testMsg](io, rn, game, control.SystemClock{})

	exit, err := loop.attachFrame(action.NewKeyPress(action.KeyRune, 'x', 0))
	if err != nil {
		t.Fatalf("attachFrame: %v", err)
	}
	if !exit {
		t.Fatal("expected countingGame to report exit after its one Attach")
	}

	stats, err := rn.Round(context.Background())
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if stats.BatchSize != 1 {
		t.Fatalf("expected the Game's Attach reply to be merged as next round's batch, got batch size %d", stats.BatchSize)
	}
}
