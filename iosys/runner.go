package iosys

import "context"

// MainThreadRunner runs an IoSystem's blocking input loop on the
// goroutine that calls Run or Step, per §9's "sendable handle /
// main-thread runner" split. It does not lock that goroutine to an OS
// thread. GUI backends need a runner bound to the thread that created
// their window; the Terminal backend doesn't strictly need one but
// implements the contract uniformly so callers don't special case
// backends.
type MainThreadRunner struct {
	sys     IoSystem
	onInput func(context.Context) error
}

// NewMainThreadRunner builds a runner that calls onInput once per
// Step, passing it the context given to Step.
func NewMainThreadRunner(sys IoSystem, onInput func(context.Context) error) *MainThreadRunner {
	return &MainThreadRunner{sys: sys, onInput: onInput}
}

// Step performs one unit of main-thread work.
func (r *MainThreadRunner) Step(ctx context.Context) (bool, error) {
	select {
	case <-ctx.Done():
		r.sys.Stop()
		return true, ctx.Err()
	default:
	}
	if err := r.onInput(ctx); err != nil {
		return false, err
	}
	return false, nil
}

// Run loops Step until it reports stopped.
func (r *MainThreadRunner) Run(ctx context.Context) error {
	for {
		stopped, err := r.Step(ctx)
		if stopped {
			return err
		}
		if err != nil {
			return err
		}
	}
}
