// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loophost

import (
	"sync"

	surfacebridge "github.com/joeycumines/go-surfacebridge"
)

// listenerEntry pairs a listener with its unique ID for removal.
// Go functions cannot be compared for equality, so each registration is
// issued an ID.
type listenerEntry struct {
	id       uint64
	listener func(*surfacebridge.Event)
}

// target is a DOM-style event target. Dispatch is synchronous, in
// registration order, against a snapshot of the listener list so that
// cancellation from within a listener does not perturb the in-flight
// dispatch.
type target struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[surfacebridge.EventType][]listenerEntry
}

func (t *target) Subscribe(eventType surfacebridge.EventType, listener func(*surfacebridge.Event)) (surfacebridge.Subscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	if t.listeners == nil {
		t.listeners = make(map[surfacebridge.EventType][]listenerEntry)
	}
	t.listeners[eventType] = append(t.listeners[eventType], listenerEntry{
		id:       id,
		listener: listener,
	})
	return &subscription{target: t, eventType: eventType, id: id}, nil
}

// Dispatch delivers an event to every listener registered for its
// type. The event may be inspected afterwards, e.g. for
// [surfacebridge.Event.DefaultPrevented].
func (t *target) Dispatch(event *surfacebridge.Event) {
	t.mu.Lock()
	entries := make([]listenerEntry, len(t.listeners[event.Type]))
	copy(entries, t.listeners[event.Type])
	t.mu.Unlock()
	for _, entry := range entries {
		entry.listener(event)
	}
}

// ListenerCount returns the number of listeners for the event type.
func (t *target) ListenerCount(eventType surfacebridge.EventType) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[eventType])
}

type subscription struct {
	target    *target
	eventType surfacebridge.EventType
	id        uint64
}

func (s *subscription) Cancel() {
	t := s.target
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := t.listeners[s.eventType]
	for i, entry := range entries {
		if entry.id == s.id {
			t.listeners[s.eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
