package surfacebridge

import (
	"testing"
)

func TestBridgeState_String(t *testing.T) {
	for state, want := range map[BridgeState]string{
		StateUninitialized: "Uninitialized",
		StateRunning:       "Running",
		StateTerminated:    "Terminated",
		BridgeState(99):    "Unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("BridgeState(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestLifecycle_TryTransition(t *testing.T) {
	var l lifecycle
	if l.Load() != StateUninitialized {
		t.Fatalf("zero value should be uninitialized, got %v", l.Load())
	}
	if !l.TryTransition(StateUninitialized, StateRunning) {
		t.Fatal("uninitialized -> running should succeed")
	}
	if l.TryTransition(StateUninitialized, StateRunning) {
		t.Fatal("repeat transition should fail")
	}
	if l.Terminated() {
		t.Fatal("running is not terminated")
	}
	if !l.TryTransition(StateRunning, StateTerminated) {
		t.Fatal("running -> terminated should succeed")
	}
	if !l.Terminated() {
		t.Fatal("should be terminated")
	}
	// One-way: nothing leaves terminated.
	if l.TryTransition(StateTerminated, StateRunning) {
		t.Fatal("terminated -> running must not succeed")
	}
}
