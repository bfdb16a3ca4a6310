// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// redrawScheduler coalesces redraw requests into at most one pending
// frame callback at a time.
//
// The scheduler starts unwired: requests made before wire is called are
// logged and dropped. The bridge wires it during attachment, after the
// host surface has been resolved, with a closure that schedules the
// bridge's frame callback on the host.
type redrawScheduler struct {
	logger *logiface.Logger[logiface.Event]

	mu         sync.Mutex
	request    func() (PendingOp, error)
	pending    PendingOp
	terminated bool
}

func newRedrawScheduler(logger *logiface.Logger[logiface.Event]) *redrawScheduler {
	return &redrawScheduler{logger: componentLogger(logger, `redraw`)}
}

// wire installs the host scheduling closure. Must be called before the
// first frame can be scheduled.
func (r *redrawScheduler) wire(request func() (PendingOp, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.request = request
}

// requestRedraw schedules a frame callback unless one is already
// pending. Requests made before wiring or after termination are
// dropped.
//
// The lock is held across the request call: the host fires frame
// callbacks asynchronously, so the callback cannot re-enter while the
// request is in flight, and holding the lock keeps the pending check
// and the store atomic against concurrent requesters.
func (r *redrawScheduler) requestRedraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.terminated {
		return
	}
	if r.pending != nil {
		return
	}
	if r.request == nil {
		r.logger.Warning().
			Log(`redraw requested in invalid state: scheduler not wired`)
		return
	}
	op, err := r.request()
	if err != nil {
		r.logger.Warning().
			Err(err).
			Log(`failed to schedule frame callback`)
		return
	}
	r.pending = op
}

// clearPending resets the pending token. The frame callback calls this
// before notifying the handler, so a redraw requested from within the
// draw notification schedules a fresh frame rather than being absorbed
// by the one currently executing.
func (r *redrawScheduler) clearPending() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

// terminate cancels any pending frame callback and rejects all further
// requests. Idempotent.
func (r *redrawScheduler) terminate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminated = true
	r.request = nil
	if r.pending != nil {
		r.pending.Cancel()
		r.pending = nil
	}
}
