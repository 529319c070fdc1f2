package message

import (
	"testing"

	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
)

type testMsg int

func (testMsg) Tick() testMsg { return -1 }

type noopAgent struct{}

func (noopAgent) Start(agent.Replier[testMsg]) control.ControlFlow { return control.Continue }
func (noopAgent) React(testMsg, agent.Replier[testMsg]) control.ControlFlow {
	return control.Continue
}

func TestRepliesQueueAndSpawn(t *testing.T) {
	var r Replies[testMsg]
	r.Queue(1)
	r.QueueAll([]testMsg{2, 3})
	r.Spawn(noopAgent{})

	if r.QueueLen() != 3 {
		t.Fatalf("QueueLen = %d, want 3", r.QueueLen())
	}
	if r.SpawnLen() != 1 {
		t.Fatalf("SpawnLen = %d, want 1", r.SpawnLen())
	}
	want := []testMsg{1, 2, 3}
	for i, m := range want {
		if r.Messages[i] != m {
			t.Fatalf("Messages[%d] = %v, want %v", i, r.Messages[i], m)
		}
	}
}

func TestRepliesSatisfiesReplier(t *testing.T) {
	var r Replies[testMsg]
	var _ agent.Replier[testMsg] = &r
}

func TestTickerConstraint(t *testing.T) {
	var m testMsg = 5
	if m.Tick() != -1 {
		t.Fatalf("Tick() = %v, want -1", m.Tick())
	}
}
