package surfacebridge

import (
	"fmt"
	"image"
)

// Vec2 is a position or delta in two dimensions.
//
// For mouse movement it carries either a position relative to the
// surface's origin (pointer lock inactive) or a raw movement delta
// (pointer lock active); see [Handler.OnMouseMove].
type Vec2 struct {
	X float64
	Y float64
}

// StartupInfo carries the initial window parameters delivered to
// [Handler.OnStart].
type StartupInfo struct {
	// ViewportSize is the initial size of the rendering backing store, in
	// unscaled (device) pixels.
	ViewportSize image.Point

	// ScaleFactor is the device pixel ratio at startup.
	ScaleFactor float64
}

// MouseButton identifies a mouse button.
//
// The named constants cover the primary, auxiliary, and secondary
// buttons. Any other native button ordinal is represented directly by the
// corresponding MouseButton value; use [MouseButton.IsOther] to detect it.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonMiddle MouseButton = 1
	MouseButtonRight  MouseButton = 2
)

// IsOther reports whether the button is none of Left, Middle, or Right.
func (b MouseButton) IsOther() bool {
	return b < MouseButtonLeft || b > MouseButtonRight
}

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	default:
		return fmt.Sprintf("Other(%d)", int(b))
	}
}

// mouseButtonFromOrdinal maps a native button ordinal to a [MouseButton].
// Ordinals 0, 1, and 2 map to the named buttons; every other ordinal maps
// to an "other" button carrying that ordinal.
func mouseButtonFromOrdinal(ordinal int) MouseButton {
	return MouseButton(ordinal)
}

// FullscreenMode selects a window presentation mode.
type FullscreenMode int

const (
	// FullscreenModeWindowed leaves fullscreen presentation.
	FullscreenModeWindowed FullscreenMode = iota
	// FullscreenModeBorderless presents the surface fullscreen.
	FullscreenModeBorderless
)

// String returns a human-readable representation of the mode.
func (m FullscreenMode) String() string {
	switch m {
	case FullscreenModeWindowed:
		return "Windowed"
	case FullscreenModeBorderless:
		return "FullscreenBorderless"
	default:
		return fmt.Sprintf("FullscreenMode(%d)", int(m))
	}
}

// Handler receives window lifecycle, input, and user events from a
// [Bridge]. U is the caller-defined user event type delivered via
// [UserEventSender].
//
// All callbacks are invoked from the host's single execution context,
// never concurrently, and always receive the bridge's [Helper] as their
// window-manipulation capability.
//
// Embed [UnimplementedHandler] to only implement the callbacks of
// interest.
type Handler[U any] interface {
	// OnStart is delivered exactly once, after the bridge is fully wired,
	// before any other callback.
	OnStart(h *Helper[U], info StartupInfo)

	// OnDraw is delivered once at startup, once after every resize, and
	// once per fulfilled redraw request.
	OnDraw(h *Helper[U])

	// OnResize is delivered when the surface's size changes, carrying the
	// new backing store size in unscaled pixels. A draw always follows in
	// the same turn.
	OnResize(h *Helper[U], size image.Point)

	// OnMouseMove is delivered for pointer movement. While pointer lock is
	// inactive, position is relative to the surface's origin; while
	// active, position carries raw movement deltas instead.
	OnMouseMove(h *Helper[U], position Vec2)

	// OnMouseButtonDown is delivered when a mouse button is pressed.
	OnMouseButtonDown(h *Helper[U], button MouseButton)

	// OnMouseButtonUp is delivered when a mouse button is released.
	OnMouseButtonUp(h *Helper[U], button MouseButton)

	// OnKeyDown is delivered when a key is pressed whose physical
	// identifier maps to a [VirtualKey] with a known scan code. Keys
	// failing either mapping are dropped with a warning, so key is never
	// KeyUnknown on hosts backed by this package.
	OnKeyDown(h *Helper[U], key VirtualKey, scanCode uint32)

	// OnKeyUp is delivered when a key is released. Hosting environments
	// backed by this package do not currently deliver key-up events; the
	// callback exists for handler portability.
	OnKeyUp(h *Helper[U], key VirtualKey, scanCode uint32)

	// OnMouseGrabStatusChanged confirms an asynchronous pointer capture
	// state change.
	OnMouseGrabStatusChanged(h *Helper[U], grabbed bool)

	// OnFullscreenStatusChanged confirms an asynchronous fullscreen state
	// change.
	OnFullscreenStatusChanged(h *Helper[U], fullscreen bool)

	// OnUserEvent is delivered for each event posted through a
	// [UserEventSender], in submission order within a batch.
	OnUserEvent(h *Helper[U], event U)
}

// UnimplementedHandler provides no-op implementations of every [Handler]
// callback. Embed it in handler implementations to pick and choose the
// callbacks to implement.
type UnimplementedHandler[U any] struct{}

func (UnimplementedHandler[U]) OnStart(*Helper[U], StartupInfo)           {}
func (UnimplementedHandler[U]) OnDraw(*Helper[U])                         {}
func (UnimplementedHandler[U]) OnResize(*Helper[U], image.Point)          {}
func (UnimplementedHandler[U]) OnMouseMove(*Helper[U], Vec2)              {}
func (UnimplementedHandler[U]) OnMouseButtonDown(*Helper[U], MouseButton) {}
func (UnimplementedHandler[U]) OnMouseButtonUp(*Helper[U], MouseButton)   {}
func (UnimplementedHandler[U]) OnKeyDown(*Helper[U], VirtualKey, uint32)  {}
func (UnimplementedHandler[U]) OnKeyUp(*Helper[U], VirtualKey, uint32)    {}
func (UnimplementedHandler[U]) OnMouseGrabStatusChanged(*Helper[U], bool) {}
func (UnimplementedHandler[U]) OnFullscreenStatusChanged(*Helper[U], bool) {
}
func (UnimplementedHandler[U]) OnUserEvent(h *Helper[U], event U) {}
