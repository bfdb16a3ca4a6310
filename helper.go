// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"image"
)

// Helper is the window-control facade handed to every Handler
// notification. It exposes the subset of windowing control that a
// browser-hosted surface supports; operations a host cannot honor are
// documented no-ops or return an error wrapping ErrUnsupported.
//
// All methods are safe to call after the bridge has terminated, at
// which point mutating operations become no-ops.
type Helper[U any] struct {
	bridge *Bridge[U]
}

// SetTitle sets the hosting document's title.
func (h *Helper[U]) SetTitle(title string) {
	if h.bridge.state.Terminated() {
		return
	}
	h.bridge.document.SetTitle(title)
}

// SetCursorVisible shows or hides the cursor while it is over the
// surface.
func (h *Helper[U]) SetCursorVisible(visible bool) {
	if h.bridge.state.Terminated() {
		return
	}
	if visible {
		h.bridge.surface.SetCursor(CursorAuto)
	} else {
		h.bridge.surface.SetCursor(CursorNone)
	}
}

// SetCursorGrab requests or releases pointer capture. The request is
// asynchronous: success or failure is reported through the handler's
// OnMouseGrabStatusChanged once the host resolves it, not by the return
// value. While the grab is active, mouse move events carry relative
// motion deltas instead of surface positions.
func (h *Helper[U]) SetCursorGrab(grab bool) error {
	if h.bridge.state.Terminated() {
		return nil
	}
	if grab {
		h.bridge.surface.RequestPointerLock()
	} else {
		h.bridge.document.ExitPointerLock()
	}
	return nil
}

// SetFullscreenMode requests entry to or exit from fullscreen. As with
// SetCursorGrab the transition is asynchronous and reported through
// OnFullscreenStatusChanged.
func (h *Helper[U]) SetFullscreenMode(mode FullscreenMode) {
	if h.bridge.state.Terminated() {
		return
	}
	if mode == FullscreenModeBorderless {
		h.bridge.surface.RequestFullscreen()
	} else {
		h.bridge.document.ExitFullscreen()
	}
}

// ScaleFactor returns the host's current device pixel ratio.
func (h *Helper[U]) ScaleFactor() float64 {
	return h.bridge.host.DevicePixelRatio()
}

// RequestRedraw schedules a call to the handler's OnDraw on an upcoming
// frame. Multiple requests before the frame fires coalesce into a
// single OnDraw.
func (h *Helper[U]) RequestRedraw() {
	h.bridge.redraw.requestRedraw()
}

// CreateUserEventSender returns a sender that posts user events to this
// bridge's handler. The sender remains valid (rejecting sends with
// ErrTerminated) after the bridge shuts down.
func (h *Helper[U]) CreateUserEventSender() UserEventSender[U] {
	return UserEventSender[U]{dispatcher: h.bridge.dispatcher}
}

// TerminateLoop shuts the bridge down: native-event subscriptions are
// cancelled, pending frame and flush callbacks are dropped, and no
// further handler notifications occur. Idempotent.
func (h *Helper[U]) TerminateLoop() {
	h.bridge.terminate()
}

// SetIconFromRGBAPixels is unsupported on browser-hosted surfaces.
func (h *Helper[U]) SetIconFromRGBAPixels(pixels []byte, size image.Point) error {
	return WrapError(`cannot set icon on a browser-hosted surface`, ErrUnsupported)
}

// SetSizePixels has no effect: the surface's size is controlled by the
// hosting page layout, not the handler.
func (h *Helper[U]) SetSizePixels(size image.Point) {}

// SetSizeScaledPixels has no effect. See SetSizePixels.
func (h *Helper[U]) SetSizeScaledPixels(size Vec2) {}

// SetPositionPixels has no effect: the surface's position is controlled
// by the hosting page layout.
func (h *Helper[U]) SetPositionPixels(position image.Point) {}

// SetPositionScaledPixels has no effect. See SetPositionPixels.
func (h *Helper[U]) SetPositionScaledPixels(position Vec2) {}

// SetResizable has no effect: resizability is a property of the hosting
// page, not the surface.
func (h *Helper[U]) SetResizable(resizable bool) {}
