package agent

import "sync"

// Bundle is a shared, take-once container for a value that must be
// consumed by exactly one reader, modeled on the Rust
// Arc<Mutex<Option<T>>> pattern used for messages that carry a
// one-shot-consumable worker (install-tool, add-tab). Equality is
// identity: two Bundles cloned from the same Of() call share state.
type Bundle[T any] struct {
	state *bundleState[T]
}

type bundleState[T any] struct {
	mu    sync.Mutex
	value *T
}

// Of wraps v in a fresh Bundle.
func Of[T any](v T) Bundle[T] {
	return Bundle[T]{state: &bundleState[T]{value: &v}}
}

// Take consumes the bundled value. The first caller to take gets
// (value, true); every subsequent call, from this Bundle or any of
// its clones, gets (zero, false).
func (b Bundle[T]) Take() (T, bool) {
	b.state.mu.Lock()
	defer b.state.mu.Unlock()
	if b.state.value == nil {
		var zero T
		return zero, false
	}
	v := *b.state.value
	b.state.value = nil
	return v, true
}

// Is reports whether b and other share the same underlying state
// (identity equality, not value equality of the contained payload).
func (b Bundle[T]) Is(other Bundle[T]) bool {
	return b.state == other.state
}
