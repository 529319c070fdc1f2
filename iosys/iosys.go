// Package iosys defines the IoSystem/IoRunner contract (§4.7 of the
// core spec) — the thin external-collaborator boundary between the
// runtime and a concrete display/input backend — plus a terminal
// implementation built on the ambient writer/terminal stack.
package iosys

import (
	"context"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/screen"
)

// IoSystem is the sendable handle a worker thread holds: it reports
// display size, blits a Screen, and produces input Actions. stop is
// idempotent and non-blocking, signaling the paired IoRunner.
type IoSystem interface {
	Size() (screen.XY, error)
	Draw(s *screen.Screen) error
	Input(ctx context.Context) (action.Action, error)
	PollInput() (action.Action, bool, error)
	Stop()
}

// IoRunner is pinned to the main thread: GUI backends demand this
// split (§9 design notes) since only the creating thread may drive
// their event loop. Step performs one unit of main-thread work,
// returning true once a stop has been requested; Run loops Step until
// stop.
type IoRunner interface {
	Step(ctx context.Context) (stopped bool, err error)
	Run(ctx context.Context) error
}
