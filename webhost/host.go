// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build js && wasm

package webhost

import (
	"image"
	"sync/atomic"
	"syscall/js"

	surfacebridge "github.com/joeycumines/go-surfacebridge"
)

// Host is the browser-backed [surfacebridge.Host]. All methods must be
// called from the wasm runtime's main goroutine (the one the browser
// event loop reenters), matching the bridge's dispatch model.
type Host struct {
	window   js.Value
	document *Document
}

// New captures the global window and document.
func New() *Host {
	window := js.Global()
	return &Host{
		window: window,
		document: &Document{
			value: window.Get("document"),
		},
	}
}

// SurfaceByID resolves a canvas element by its DOM element ID.
func (h *Host) SurfaceByID(id string) (surfacebridge.Surface, error) {
	element := h.document.value.Call("getElementById", id)
	if element.IsNull() || element.IsUndefined() {
		return nil, surfacebridge.WrapError(`no element with id `+id, surfacebridge.ErrSurfaceNotFound)
	}
	return &Surface{element: element, document: h.document.value}, nil
}

// Window returns the global window as an event target. Resize events
// dispatch here.
func (h *Host) Window() surfacebridge.EventTarget {
	return &eventTarget{value: h.window}
}

// Document implements [surfacebridge.Host].
func (h *Host) Document() surfacebridge.Document {
	return h.document
}

// RequestFrame schedules fn via requestAnimationFrame.
func (h *Host) RequestFrame(fn func()) (surfacebridge.PendingOp, error) {
	op := &pendingOp{}
	var callback js.Func
	callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		if op.done.CompareAndSwap(false, true) {
			callback.Release()
			fn()
		}
		return nil
	})
	id := h.window.Call("requestAnimationFrame", callback)
	op.cancel = func() {
		h.window.Call("cancelAnimationFrame", id)
		callback.Release()
	}
	return op, nil
}

// Defer schedules fn via zero-delay setTimeout, running it on a
// subsequent browser event loop turn.
func (h *Host) Defer(fn func()) (surfacebridge.PendingOp, error) {
	op := &pendingOp{}
	var callback js.Func
	callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		if op.done.CompareAndSwap(false, true) {
			callback.Release()
			fn()
		}
		return nil
	})
	id := h.window.Call("setTimeout", callback, 0)
	op.cancel = func() {
		h.window.Call("clearTimeout", id)
		callback.Release()
	}
	return op, nil
}

// DevicePixelRatio implements [surfacebridge.Host].
func (h *Host) DevicePixelRatio() float64 {
	return h.window.Get("devicePixelRatio").Float()
}

// pendingOp cancels a scheduled browser callback. The done flag flips
// exactly once, on whichever of cancel or fire happens first, so the
// js.Func is released exactly once.
type pendingOp struct {
	done   atomic.Bool
	cancel func()
}

func (p *pendingOp) Cancel() {
	if p.done.CompareAndSwap(false, true) {
		p.cancel()
	}
}

// Surface is a canvas element.
type Surface struct {
	element  js.Value
	document js.Value
}

// Subscribe implements [surfacebridge.EventTarget] on the canvas.
func (s *Surface) Subscribe(eventType surfacebridge.EventType, listener func(*surfacebridge.Event)) (surfacebridge.Subscription, error) {
	return subscribe(s.element, eventType, listener)
}

// ScaledSize returns the canvas's CSS pixel dimensions.
func (s *Surface) ScaledSize() (width, height float64) {
	return s.element.Get("clientWidth").Float(), s.element.Get("clientHeight").Float()
}

// SetBufferSize sets the canvas's backing-buffer dimensions.
func (s *Surface) SetBufferSize(size image.Point) {
	s.element.Set("width", size.X)
	s.element.Set("height", size.Y)
}

// SetTabIndex makes the canvas focusable so it receives key events.
func (s *Surface) SetTabIndex(tabIndex int) {
	s.element.Set("tabIndex", tabIndex)
}

// SetCursor sets the CSS cursor style while the pointer is over the
// canvas.
func (s *Surface) SetCursor(style surfacebridge.CursorStyle) {
	s.element.Get("style").Set("cursor", string(style))
}

// RequestPointerLock implements [surfacebridge.Surface].
func (s *Surface) RequestPointerLock() {
	s.element.Call("requestPointerLock")
}

// RequestFullscreen implements [surfacebridge.Surface].
func (s *Surface) RequestFullscreen() {
	s.element.Call("requestFullscreen")
}

// IsPointerLockActive reports whether this canvas holds the pointer
// lock.
func (s *Surface) IsPointerLockActive() bool {
	return s.document.Get("pointerLockElement").Equal(s.element)
}

// IsFullscreenActive reports whether this canvas is the fullscreen
// element.
func (s *Surface) IsFullscreenActive() bool {
	return s.document.Get("fullscreenElement").Equal(s.element)
}

// Document wraps the DOM document.
type Document struct {
	value js.Value
}

// Subscribe implements [surfacebridge.EventTarget] on the document.
func (d *Document) Subscribe(eventType surfacebridge.EventType, listener func(*surfacebridge.Event)) (surfacebridge.Subscription, error) {
	return subscribe(d.value, eventType, listener)
}

// SetTitle implements [surfacebridge.Document].
func (d *Document) SetTitle(title string) {
	d.value.Set("title", title)
}

// ExitPointerLock implements [surfacebridge.Document].
func (d *Document) ExitPointerLock() {
	d.value.Call("exitPointerLock")
}

// ExitFullscreen implements [surfacebridge.Document]. No-op when
// nothing is fullscreen, since exitFullscreen would reject otherwise.
func (d *Document) ExitFullscreen() {
	if !d.value.Get("fullscreenElement").IsNull() {
		d.value.Call("exitFullscreen")
	}
}

// eventTarget adapts an arbitrary DOM event target (the window).
type eventTarget struct {
	value js.Value
}

func (t *eventTarget) Subscribe(eventType surfacebridge.EventType, listener func(*surfacebridge.Event)) (surfacebridge.Subscription, error) {
	return subscribe(t.value, eventType, listener)
}

func subscribe(value js.Value, eventType surfacebridge.EventType, listener func(*surfacebridge.Event)) (surfacebridge.Subscription, error) {
	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		var jsEvent js.Value
		if len(args) > 0 {
			jsEvent = args[0]
		}
		event := translateEvent(eventType, jsEvent)
		listener(event)
		if event.DefaultPrevented() && jsEvent.Truthy() {
			jsEvent.Call("preventDefault")
		}
		return nil
	})
	value.Call("addEventListener", string(eventType), callback)
	return &subscription{
		value:     value,
		eventType: eventType,
		callback:  callback,
	}, nil
}

// translateEvent lifts the fields the bridge consumes out of the DOM
// event. Fields irrelevant to the event type stay zero.
func translateEvent(eventType surfacebridge.EventType, jsEvent js.Value) *surfacebridge.Event {
	event := &surfacebridge.Event{Type: eventType}
	if !jsEvent.Truthy() {
		return event
	}
	switch eventType {
	case surfacebridge.EventMouseMove:
		event.Pointer = surfacebridge.PointerData{
			OffsetX:   jsEvent.Get("offsetX").Float(),
			OffsetY:   jsEvent.Get("offsetY").Float(),
			MovementX: jsEvent.Get("movementX").Float(),
			MovementY: jsEvent.Get("movementY").Float(),
		}
	case surfacebridge.EventMouseDown, surfacebridge.EventMouseUp:
		event.Pointer = surfacebridge.PointerData{
			Button: jsEvent.Get("button").Int(),
		}
	case surfacebridge.EventKeyDown:
		event.Key = surfacebridge.KeyData{
			Code: jsEvent.Get("code").String(),
		}
	}
	return event
}

type subscription struct {
	value     js.Value
	eventType surfacebridge.EventType
	callback  js.Func
	cancelled atomic.Bool
}

func (s *subscription) Cancel() {
	if s.cancelled.CompareAndSwap(false, true) {
		s.value.Call("removeEventListener", string(s.eventType), s.callback)
		s.callback.Release()
	}
}
