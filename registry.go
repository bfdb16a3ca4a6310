// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"sync"
)

// subscriptionRegistry tracks every native-event subscription the
// bridge holds so they can be cancelled as a unit at termination.
type subscriptionRegistry struct {
	mu         sync.Mutex
	subs       []Subscription
	terminated bool
}

// add records a subscription for later cleanup. A subscription added
// after termination is cancelled immediately.
func (r *subscriptionRegistry) add(sub Subscription) {
	r.mu.Lock()
	if r.terminated {
		r.mu.Unlock()
		sub.Cancel()
		return
	}
	r.subs = append(r.subs, sub)
	r.mu.Unlock()
}

// terminate cancels all recorded subscriptions. Idempotent; the
// cancellations run outside the lock in registration order.
func (r *subscriptionRegistry) terminate() {
	r.mu.Lock()
	r.terminated = true
	subs := r.subs
	r.subs = nil
	r.mu.Unlock()
	for _, sub := range subs {
		sub.Cancel()
	}
}
