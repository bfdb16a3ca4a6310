// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"image"
)

// EventType identifies a class of native event, using the hosting
// environment's event-name vocabulary.
type EventType string

// Native event types the bridge subscribes to during setup.
const (
	EventContextMenu       EventType = "contextmenu"
	EventResize            EventType = "resize"
	EventPointerLockChange EventType = "pointerlockchange"
	EventFullscreenChange  EventType = "fullscreenchange"
	EventMouseMove         EventType = "mousemove"
	EventMouseDown         EventType = "mousedown"
	EventMouseUp           EventType = "mouseup"
	EventKeyDown           EventType = "keydown"
)

// PointerData carries the payload of a native pointer event.
//
// Offset coordinates are relative to the surface's own origin, in scaled
// units. Movement coordinates are raw relative deltas, meaningful while
// pointer lock is active.
type PointerData struct {
	OffsetX   float64
	OffsetY   float64
	MovementX float64
	MovementY float64

	// Button is the native button ordinal (0 primary, 1 auxiliary,
	// 2 secondary, other values device-specific).
	Button int
}

// KeyData carries the payload of a native keyboard event.
type KeyData struct {
	// Code is the physical-key identifier (e.g. "KeyA", "Digit1",
	// "ArrowUp"), independent of layout.
	Code string
}

// Event is a native event as delivered to a subscribed listener.
//
// An Event is only valid for the duration of the listener call that
// received it, and must not be retained or accessed concurrently.
type Event struct {
	Type    EventType
	Pointer PointerData
	Key     KeyData

	defaultPrevented bool
}

// PreventDefault marks the event so the host suppresses its default
// native action (e.g. opening a context menu).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called. Host
// implementations read this after the listener returns.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Subscription is a handle for one active native event registration.
type Subscription interface {
	// Cancel unregisters the listener. Idempotent. A native event already
	// in flight inside the host when Cancel is called may still be
	// delivered at most once.
	Cancel()
}

// PendingOp represents an outstanding host-scheduled callback (a frame
// request or a zero-delay deferral).
type PendingOp interface {
	// Cancel prevents the callback from firing if it has not already.
	// Idempotent; calling Cancel after the callback has fired is a no-op.
	Cancel()
}

// EventTarget is a source of native events.
type EventTarget interface {
	// Subscribe registers a listener for events of the given type. The
	// listener is invoked on the host's callback turn, in registration
	// order relative to other listeners for the same type.
	//
	// An error indicates the host cannot deliver this event type; callers
	// are expected to degrade the corresponding feature rather than fail.
	Subscribe(typ EventType, listener func(*Event)) (Subscription, error)
}

// CursorStyle names a native cursor appearance.
type CursorStyle string

const (
	// CursorAuto is the environment's default (visible) cursor.
	CursorAuto CursorStyle = "auto"
	// CursorNone hides the cursor.
	CursorNone CursorStyle = "none"
)

// Surface is the on-screen drawing area the bridge manages, one per
// bridge instance.
type Surface interface {
	EventTarget

	// ScaledSize returns the surface's current size in the host's logical
	// (density-independent) units.
	ScaledSize() (width, height float64)

	// SetBufferSize resizes the surface's backing store, in unscaled
	// (device pixel) units.
	SetBufferSize(size image.Point)

	// SetTabIndex makes the surface focusable so it can receive keyboard
	// events.
	SetTabIndex(index int)

	// SetCursor applies a native cursor style to the surface.
	SetCursor(style CursorStyle)

	// RequestPointerLock asks the host to capture the pointer. The request
	// is fire-and-forget: the actual state change is confirmed
	// asynchronously via an [EventPointerLockChange] notification.
	RequestPointerLock()

	// RequestFullscreen asks the host to present the surface fullscreen.
	// Fire-and-forget; confirmed via [EventFullscreenChange].
	RequestFullscreen()

	// IsPointerLockActive reports whether the pointer is currently
	// captured by this surface.
	IsPointerLockActive() bool

	// IsFullscreenActive reports whether this surface is currently
	// presented fullscreen.
	IsFullscreenActive() bool
}

// Document is the host's document/root object.
type Document interface {
	EventTarget

	// SetTitle sets the document (window) title.
	SetTitle(title string)

	// ExitPointerLock releases any active pointer capture. Fire-and-forget;
	// confirmed via [EventPointerLockChange].
	ExitPointerLock()

	// ExitFullscreen leaves fullscreen presentation. Fire-and-forget;
	// confirmed via [EventFullscreenChange].
	ExitFullscreen()
}

// Host is the bridge's view of the hosting environment.
//
// Implementations must deliver all callbacks (frame callbacks, deferred
// callbacks, and event listeners) from a single execution context, one at
// a time.
type Host interface {
	// SurfaceByID resolves a hosting surface by its identifier. Returns an
	// error satisfying errors.Is(err, ErrSurfaceNotFound) if absent.
	SurfaceByID(id string) (Surface, error)

	// Window is the top-level event target (resize notifications).
	Window() EventTarget

	// Document is the host's document object.
	Document() Document

	// RequestFrame schedules fn to run at the host's next paint
	// opportunity. The callback fires at most once per registration,
	// asynchronously (never synchronously from within RequestFrame).
	RequestFrame(fn func()) (PendingOp, error)

	// Defer schedules fn to run exactly once after the current synchronous
	// execution completes, in registration order relative to other
	// deferred callbacks, and never synchronously from within Defer.
	Defer(fn func()) (PendingOp, error)

	// DevicePixelRatio returns the ratio of unscaled (device) pixels to
	// scaled (logical) units.
	DevicePixelRatio() float64
}

// Renderer is the opaque rendering backend. The bridge feeds it pixel
// dimensions and never reads back from it.
type Renderer interface {
	// Resize adjusts the renderer's viewport, in unscaled pixels.
	Resize(size image.Point)
}

// RendererFactory constructs a [Renderer] against an initial unscaled
// pixel size and the hosting surface. A factory error aborts [Attach].
type RendererFactory func(size image.Point, surface Surface) (Renderer, error)
