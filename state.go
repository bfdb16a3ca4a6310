package surfacebridge

import (
	"sync/atomic"
)

// BridgeState represents the lifecycle state of a [Bridge].
//
// State Machine:
//
//	StateUninitialized (0) → StateRunning (1)    [Attach, before OnStart]
//	StateUninitialized (0) → StateTerminated (2) [fatal during setup]
//	StateRunning (1) → StateTerminated (2)       [Helper.TerminateLoop]
//	StateTerminated (2) → (terminal)
//
// Transitions use CAS so that a handler terminating the bridge from inside
// one of its own callbacks observes a consistent, already-updated state.
type BridgeState uint32

const (
	// StateUninitialized indicates the bridge is still executing its
	// startup sequence and has not yet delivered OnStart.
	StateUninitialized BridgeState = 0
	// StateRunning indicates the bridge is attached and routing events.
	StateRunning BridgeState = 1
	// StateTerminated indicates termination has completed. Terminal.
	StateTerminated BridgeState = 2
)

// String returns a human-readable representation of the state.
func (s BridgeState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// lifecycle is a small lock-free state machine guarding the one-way
// terminated flip.
type lifecycle struct {
	v atomic.Uint32
}

// Load returns the current state atomically.
func (s *lifecycle) Load() BridgeState {
	return BridgeState(s.v.Load())
}

// TryTransition attempts to atomically transition from one state to
// another, returning true on success. Transitions out of
// StateTerminated always fail: the flag is one-way.
func (s *lifecycle) TryTransition(from, to BridgeState) bool {
	if from == StateTerminated {
		return false
	}
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}

// Terminated returns true if the state is terminal.
func (s *lifecycle) Terminated() bool {
	return s.Load() == StateTerminated
}
