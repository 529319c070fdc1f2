package agent

import "testing"

func TestBundleTakeOnce(t *testing.T) {
	b := Of(42)
	v, ok := b.Take()
	if !ok || v != 42 {
		t.Fatalf("first Take = (%v, %v), want (42, true)", v, ok)
	}
	if _, ok := b.Take(); ok {
		t.Fatal("second Take should fail")
	}
}

func TestBundleCloneSharesState(t *testing.T) {
	b := Of("payload")
	clone := b
	if _, ok := clone.Take(); !ok {
		t.Fatal("expected clone to be able to take")
	}
	if _, ok := b.Take(); ok {
		t.Fatal("original should observe the clone's take")
	}
}

func TestBundleIdentity(t *testing.T) {
	a := Of(1)
	b := Of(1)
	clone := a
	if !a.Is(clone) {
		t.Fatal("clone should share identity")
	}
	if a.Is(b) {
		t.Fatal("independently constructed bundles must not share identity")
	}
}
