// Package gamefx glues the agent runtime's round scheduler to the
// region engine and an IoSystem backend (§4.6 of the core spec): the
// Game contract and the frame loop that drives input, attachment, and
// redraw pacing around it.
package gamefx

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/garaekz/agentfx/action"
	"github.com/garaekz/agentfx/agent"
	"github.com/garaekz/agentfx/control"
	"github.com/garaekz/agentfx/internal/share"
	"github.com/garaekz/agentfx/iosys"
	"github.com/garaekz/agentfx/message"
	"github.com/garaekz/agentfx/region"
	"github.com/garaekz/agentfx/runner"
	"github.com/garaekz/agentfx/screen"
	"github.com/garaekz/agentfx/timer"
)

// Game is the single privileged participant of the frame loop: it
// embeds agent.Game[M] (so it observes every round's messages via
// Message) and additionally attaches itself into the root Region on
// input or frame tick, per §3's Game<M> definition.
type Game[M any] interface {
	agent.Game[M]

	// Attach renders into root and reacts to its Action, queueing any
	// replies, and reports whether the loop should exit.
	Attach(root region.Region, replies agent.Replier[M]) (exit bool)
}

// Config controls frame pacing, built through the share
// functional-options/Overload convention.
type Config struct {
	// Period is the configured input-tick period. Zero disables
	// ticking: the loop then runs as fast as inputs arrive, blocking
	// on IoSystem.Input between frames (§6 Frame pacing).
	Period time.Duration
	Logger share.Writer
	// PollInterval bounds how long Loop sleeps between PollInput
	// attempts when Period > 0 and neither input nor a due tick is
	// pending. It never delays a tick past its deadline.
	PollInterval time.Duration
}

// Option sets a Config field.
type Option = share.Option[Config]

// WithPeriod sets the input-tick period.
func WithPeriod(d time.Duration) Option {
	return func(c *Config) { c.Period = d }
}

// WithLogger attaches a structured logger for frame-loop diagnostics.
func WithLogger(w share.Writer) Option {
	return func(c *Config) { c.Logger = w }
}

// WithPollInterval overrides the default poll sleep granularity.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) { c.PollInterval = d }
}

const defaultPollInterval = 10 * time.Millisecond

// Loop binds an IoSystem, a Runner, and a Game into the frame pipeline
// described by §4.6: it owns the Screen, resizes it to the backend's
// current size each frame, constructs the root Region, and merges the
// Game's replies into the Runner exactly like an agent's replies.
type Loop[M message.Ticker[M]] struct {
	io    iosys.IoSystem
	run   *runner.Runner[M]
	game  Game[M]
	scr   *screen.Screen
	timer *timer.Timer
	cfg   Config

	// redrawRequested/quitRequested are set by onRound (invoked on the
	// round-driving goroutine) when a round's worst Game.Message
	// Response was Redraw/Quit, and drained by the frame-loop
	// goroutine so a round-produced redraw/quit doesn't wait for the
	// next input tick (RoundStats.Response's documented purpose).
	redrawRequested atomic.Bool
	quitRequested   atomic.Bool
}

// New constructs a Loop. clk drives the pacing timer when cfg.Period
// is non-zero.
func New[M message.Ticker[M]](io iosys.IoSystem, run *runner.Runner[M], game Game[M], clk control.Clock, opts ...Option) *Loop[M] {
	cfg := Config{PollInterval: defaultPollInterval}
	share.ApplyOptions(&cfg, opts...)

	var t *timer.Timer
	if cfg.Period > 0 {
		t = timer.New(clk, cfg.Period)
	}

	return &Loop[M]{io: io, run: run, game: game, scr: screen.New(screen.XY{}), timer: t, cfg: cfg}
}

// Run drives the Runner's round scheduler on a background goroutine
// and the frame loop (input, attach, draw) on the calling goroutine,
// until ctx is canceled, the IoSystem reports Closed, or the Game's
// Attach returns true.
//
// This pairing — round dispatch on worker goroutines, frame pacing
// pinned to the caller — realizes §4.5's parallelism note ("the Game's
// message call is serialized on the main scheduler thread") alongside
// §9's main-thread-pinning design note, without requiring a second
// process or OS thread.
func (l *Loop[M]) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	roundErrs := make(chan error, 1)
	go func() {
		roundErrs <- l.run.Run(runCtx, l.onRound)
	}()

	err := l.frameLoop(runCtx)
	cancel()
	l.io.Stop()
	if roundErr := <-roundErrs; roundErr != nil && roundErr != context.Canceled && err == nil {
		err = roundErr
	}
	return err
}

func (l *Loop[M]) frameLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if l.quitRequested.Load() {
			return nil
		}

		act, hasInput, err := l.nextAction(ctx)
		if err != nil {
			l.log(share.LevelError, "input error", share.Fields{"error": err.Error()})
			return err
		}

		if act.Kind == action.Closed {
			return nil
		}

		tickDue := l.timer != nil && l.timer.Ready()
		roundRedraw := l.redrawRequested.Swap(false)
		if !hasInput && !tickDue && !roundRedraw && l.cfg.Period > 0 {
			l.sleepUntilNextAttempt()
			continue
		}
		if !hasInput {
			act = action.RedrawAction
		}

		exit, err := l.attachFrame(act)
		if err != nil {
			l.log(share.LevelError, "frame error", share.Fields{"error": err.Error()})
			return err
		}
		if exit || l.quitRequested.Load() {
			return nil
		}
	}
}

// onRound is invoked by the Runner after each round, on the
// round-driving goroutine. It never touches the Screen (exclusively
// owned by the frame-loop goroutine), only the two atomics the frame
// loop polls. On Quit it also calls IoSystem.Stop — per §4.7 that is
// idempotent and non-blocking — so a Quit response can interrupt a
// frame loop currently blocked in Input (Period == 0) instead of
// waiting for one more real input to notice quitRequested.
func (l *Loop[M]) onRound(stats runner.RoundStats) (stop bool) {
	switch stats.Response {
	case agent.Quit:
		l.quitRequested.Store(true)
		l.io.Stop()
		return true
	case agent.Redraw:
		l.redrawRequested.Store(true)
	}
	return false
}

// nextAction fetches this tick's Action: blocking on Input when
// ticking is disabled (Period == 0, per §6), or non-blocking via
// PollInput when a period is configured so the timer can also fire
// attach calls between inputs.
func (l *Loop[M]) nextAction(ctx context.Context) (act action.Action, hasInput bool, err error) {
	if l.cfg.Period <= 0 {
		act, err = l.io.Input(ctx)
		return act, true, err
	}
	return pollInput(l.io)
}

func pollInput(io iosys.IoSystem) (action.Action, bool, error) {
	act, ok, err := io.PollInput()
	if err != nil {
		return action.Action{}, false, err
	}
	return act, ok, nil
}

func (l *Loop[M]) sleepUntilNextAttempt() {
	d := l.cfg.PollInterval
	if l.timer != nil {
		if remaining := l.timer.Remaining(); remaining < d {
			d = remaining
		}
	}
	if d > 0 {
		time.Sleep(d)
	}
}

// attachFrame resizes the Screen to the backend's current size,
// builds the root Region around (Screen, act), attaches the Game,
// merges its replies into the Runner exactly as an agent's replies
// would be merged, and flushes the Screen to the backend.
func (l *Loop[M]) attachFrame(act action.Action) (exit bool, err error) {
	size, err := l.io.Size()
	if err != nil {
		return false, err
	}
	l.scr.Resize(size)

	root := region.Root(l.scr, act)
	var replies message.Replies[M]
	exit = l.game.Attach(root, &replies)
	l.run.MergeExternalReplies(replies.Messages, replies.Agents)

	if err := l.io.Draw(l.scr); err != nil {
		return exit, err
	}
	return exit, nil
}

func (l *Loop[M]) log(level share.Level, msg string, fields share.Fields) {
	if l.cfg.Logger == nil {
		return
	}
	l.cfg.Logger.Write(&share.Entry{Level: level, Message: msg, Fields: fields})
}
