package runner

import "github.com/garaekz/agentfx/internal/share"

// Config controls a Runner's round scheduling, built through the
// teacher's functional-options/Overload convention.
type Config struct {
	// MaxParallel bounds how many agents are dispatched concurrently
	// within one round. Zero means unbounded (one goroutine per ready
	// agent), matching the reference design's data-parallel dispatch.
	MaxParallel int
	Logger      share.Writer
}

// Option sets a Config field.
type Option = share.Option[Config]

// WithMaxParallel bounds per-round agent dispatch concurrency.
func WithMaxParallel(n int) Option {
	return func(c *Config) { c.MaxParallel = n }
}

// WithLogger attaches a structured logger for round diagnostics.
func WithLogger(w share.Writer) Option {
	return func(c *Config) { c.Logger = w }
}
