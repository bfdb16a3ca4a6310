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

// userEventDispatcher queues user events and delivers them in FIFO
// batches from a deferred host callback, so that sending an event never
// notifies the handler synchronously from the sender's stack.
//
// At most one flush callback is pending at a time: the first event
// queued after a flush (or initially) schedules one, subsequent sends
// coalesce into it.
type userEventDispatcher[U any] struct {
	logger *logiface.Logger[logiface.Event]

	// deliver invokes the handler for a single event. Set once at
	// construction, called without the lock held.
	deliver func(U)

	mu         sync.Mutex
	scheduleFn func() (PendingOp, error)
	queue      []U
	pending    PendingOp
	terminated bool
}

func newUserEventDispatcher[U any](logger *logiface.Logger[logiface.Event], deliver func(U)) *userEventDispatcher[U] {
	return &userEventDispatcher[U]{
		logger:  componentLogger(logger, `dispatch`),
		deliver: deliver,
	}
}

// wire installs the host deferral closure, which schedules the
// dispatcher's flush on the host. Must be called before sendEvent.
func (d *userEventDispatcher[U]) wire(schedule func() (PendingOp, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scheduleFn = schedule
}

// sendEvent queues an event for deferred delivery. Returns
// ErrTerminated (wrapped) after terminate. If the host refuses the
// deferral the event is rolled back and the failure returned, so a nil
// return always means the event will be delivered.
func (d *userEventDispatcher[U]) sendEvent(event U) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.terminated {
		return WrapError(`user event rejected`, ErrTerminated)
	}
	d.queue = append(d.queue, event)
	if d.pending != nil {
		return nil
	}
	op, err := d.scheduleFn()
	if err != nil {
		d.queue = d.queue[:len(d.queue)-1]
		return WrapError(`failed to schedule user event flush`, err)
	}
	d.pending = op
	return nil
}

// flush delivers all queued events in order. The pending token is
// cleared and the queue swapped out before any handler runs, so events
// sent during delivery land in a new batch with a fresh flush.
func (d *userEventDispatcher[U]) flush() {
	d.mu.Lock()
	d.pending = nil
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, event := range batch {
		d.deliver(event)
	}
}

// terminate drops queued events, cancels any pending flush, and rejects
// all further sends. Idempotent.
func (d *userEventDispatcher[U]) terminate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.terminated = true
	d.scheduleFn = nil
	d.queue = nil
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}

// UserEventSender posts user events to an attached bridge for deferred
// delivery to the handler's OnUserEvent. Senders are cheap values: copy
// them freely and use them from any goroutine the host's deferral
// mechanism supports.
type UserEventSender[U any] struct {
	dispatcher *userEventDispatcher[U]
}

// Send queues an event for delivery. Returns an error wrapping
// ErrTerminated once the bridge has shut down.
func (s UserEventSender[U]) Send(event U) error {
	return s.dispatcher.sendEvent(event)
}
