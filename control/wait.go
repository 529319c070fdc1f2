package control

import "sync/atomic"

// WaitHandle is a shared, one-shot-settable flag used to wake a
// sleeping agent. wake() sets it; readers observe it via an acquire
// load. Equality is pointer identity: cloning (copying the struct)
// yields a handle over the same underlying flag, so any clone sees a
// wake issued through any other clone.
type WaitHandle struct {
	woken *atomic.Bool
}

// NewWaitHandle allocates a fresh, unwoken WaitHandle.
func NewWaitHandle() WaitHandle {
	return WaitHandle{woken: new(atomic.Bool)}
}

// Wake sets the handle. Idempotent: once set, stays set.
func (h WaitHandle) Wake() {
	h.woken.Store(true)
}

// IsWoken reports whether Wake has been called on this handle or any
// of its clones.
func (h WaitHandle) IsWoken() bool {
	return h.woken.Load()
}

// Is reports whether h and other refer to the same underlying flag
// (pointer identity, not value equality of the woken bit).
func (h WaitHandle) Is(other WaitHandle) bool {
	return h.woken == other.woken
}

// Wait allocates a new WaitHandle and returns both a Handle
// ControlFlow over it and the handle itself, so a producer can stash
// the ControlFlow on the agent and hand the WaitHandle to whoever
// should wake it.
func Wait() (ControlFlow, WaitHandle) {
	h := NewWaitHandle()
	return Handle(h), h
}
