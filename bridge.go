// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package surfacebridge

import (
	"errors"
	"image"
	"sync/atomic"

	"github.com/joeycumines/logiface"
)

// Bridge connects a Handler to a rendering surface resolved from a
// Host: it owns the surface's native-event subscriptions, the redraw
// scheduler, and the user-event dispatcher, and routes everything to
// the handler on the host's event turn.
//
// Construct via Attach. All handler notifications occur on the host's
// dispatch context (the browser main thread, or the host loop's
// goroutine), never concurrently with one another.
type Bridge[U any] struct {
	logger   *logiface.Logger[logiface.Event]
	host     Host
	surface  Surface
	document Document
	handler  Handler[U]
	helper   *Helper[U]
	renderer Renderer

	state         lifecycle
	redraw        *redrawScheduler
	dispatcher    *userEventDispatcher[U]
	subscriptions subscriptionRegistry
	pointerLocked atomic.Bool
}

// Attach resolves the surface identified by surfaceID from the host,
// constructs a renderer for it at its current buffer size, subscribes
// to the native events the handler needs, and delivers OnStart followed
// by an initial OnDraw.
//
// Errors: ErrSurfaceNotFound (wrapped) when the host has no such
// surface, or ErrRendererCreate (wrapped) when the factory fails; both
// abort before the handler is notified. A failed event subscription is
// not fatal: the bridge logs a warning and continues with that feature
// degraded.
func Attach[U any](host Host, surfaceID string, handler Handler[U], newRenderer RendererFactory, opts ...AttachOption) (*Bridge[U], error) {
	cfg, err := resolveAttachOptions(opts)
	if err != nil {
		return nil, err
	}

	surface, err := host.SurfaceByID(surfaceID)
	if err != nil {
		return nil, WrapError(`surface lookup failed`, err)
	}

	b := &Bridge[U]{
		logger:   componentLogger(cfg.logger, `bridge`),
		host:     host,
		surface:  surface,
		document: host.Document(),
		handler:  handler,
	}
	b.helper = &Helper[U]{bridge: b}
	b.redraw = newRedrawScheduler(cfg.logger)
	b.dispatcher = newUserEventDispatcher[U](cfg.logger, func(event U) {
		if b.state.Terminated() {
			return
		}
		b.handler.OnUserEvent(b.helper, event)
	})

	// Key events only reach focusable elements.
	surface.SetTabIndex(cfg.tabIndex)

	dpr := host.DevicePixelRatio()
	size := b.bufferSize(dpr)
	surface.SetBufferSize(size)

	renderer, err := newRenderer(size, surface)
	if err != nil {
		return nil, WrapError(`renderer creation failed`, errors.Join(ErrRendererCreate, err))
	}
	b.renderer = renderer

	b.redraw.wire(func() (PendingOp, error) {
		return host.RequestFrame(b.frame)
	})
	b.dispatcher.wire(func() (PendingOp, error) {
		return host.Defer(b.dispatcher.flush)
	})

	b.subscribeAll()

	if !b.state.TryTransition(StateUninitialized, StateRunning) {
		// Unreachable short of handler shenanigans before OnStart.
		return nil, ErrTerminated
	}

	b.logger.Info().
		Str(`surface`, surfaceID).
		Float64(`scale_factor`, dpr).
		Int(`buffer_width`, size.X).
		Int(`buffer_height`, size.Y).
		Log(`attached to surface`)

	handler.OnStart(b.helper, StartupInfo{
		ViewportSize: size,
		ScaleFactor:  dpr,
	})
	if b.state.Terminated() {
		return b, nil
	}
	// The initial draw is delivered synchronously, before Attach
	// returns; a redraw requested during OnStart schedules a further
	// frame rather than coalescing with it.
	b.handler.OnDraw(b.helper)
	return b, nil
}

// bufferSize derives the backing-buffer size from the surface's scaled
// (CSS) size and the device pixel ratio, rounding to the nearest
// integer in each dimension.
func (b *Bridge[U]) bufferSize(dpr float64) image.Point {
	w, h := b.surface.ScaledSize()
	return image.Point{X: int(w*dpr + 0.5), Y: int(h*dpr + 0.5)}
}

// frame is the coalesced frame callback. The pending token clears
// before the handler runs so OnDraw can schedule the next frame.
func (b *Bridge[U]) frame() {
	b.redraw.clearPending()
	if b.state.Terminated() {
		return
	}
	b.handler.OnDraw(b.helper)
}

// subscribeAll registers the native listeners the bridge routes. A
// failed registration degrades that feature rather than failing the
// attach: the host simply cannot deliver that event class.
func (b *Bridge[U]) subscribeAll() {
	for _, s := range []struct {
		target  EventTarget
		event   EventType
		handler func(*Event)
	}{
		{b.surface, EventContextMenu, b.onContextMenu},
		{b.host.Window(), EventResize, b.onResize},
		{b.document, EventPointerLockChange, b.onPointerLockChange},
		{b.document, EventFullscreenChange, b.onFullscreenChange},
		{b.surface, EventMouseMove, b.onMouseMove},
		{b.surface, EventMouseDown, b.onMouseDown},
		{b.surface, EventMouseUp, b.onMouseUp},
		{b.surface, EventKeyDown, b.onKeyDown},
	} {
		sub, err := s.target.Subscribe(s.event, s.handler)
		if err != nil {
			b.logger.Warning().
				Err(err).
				Str(`event`, string(s.event)).
				Log(`listener registration failed, feature degraded`)
			continue
		}
		b.subscriptions.add(sub)
	}
}

func (b *Bridge[U]) onContextMenu(event *Event) {
	event.PreventDefault()
}

func (b *Bridge[U]) onResize(event *Event) {
	if b.state.Terminated() {
		return
	}
	dpr := b.host.DevicePixelRatio()
	size := b.bufferSize(dpr)
	b.surface.SetBufferSize(size)
	b.renderer.Resize(size)
	b.handler.OnResize(b.helper, size)
	// Resized content is stale: draw in the same turn rather than
	// waiting on a frame callback.
	b.handler.OnDraw(b.helper)
}

func (b *Bridge[U]) onPointerLockChange(event *Event) {
	if b.state.Terminated() {
		return
	}
	active := b.surface.IsPointerLockActive()
	b.pointerLocked.Store(active)
	b.handler.OnMouseGrabStatusChanged(b.helper, active)
}

func (b *Bridge[U]) onFullscreenChange(event *Event) {
	if b.state.Terminated() {
		return
	}
	b.handler.OnFullscreenStatusChanged(b.helper, b.surface.IsFullscreenActive())
}

func (b *Bridge[U]) onMouseMove(event *Event) {
	if b.state.Terminated() {
		return
	}
	if b.pointerLocked.Load() {
		b.handler.OnMouseMove(b.helper, Vec2{
			X: event.Pointer.MovementX,
			Y: event.Pointer.MovementY,
		})
	} else {
		b.handler.OnMouseMove(b.helper, Vec2{
			X: event.Pointer.OffsetX,
			Y: event.Pointer.OffsetY,
		})
	}
}

func (b *Bridge[U]) onMouseDown(event *Event) {
	if b.state.Terminated() {
		return
	}
	b.handler.OnMouseButtonDown(b.helper, mouseButtonFromOrdinal(event.Pointer.Button))
}

func (b *Bridge[U]) onMouseUp(event *Event) {
	if b.state.Terminated() {
		return
	}
	b.handler.OnMouseButtonUp(b.helper, mouseButtonFromOrdinal(event.Pointer.Button))
}

func (b *Bridge[U]) onKeyDown(event *Event) {
	if b.state.Terminated() {
		return
	}
	key, ok := KeyFromCode(event.Key.Code)
	if !ok {
		b.logger.Warning().
			Str(`code`, event.Key.Code).
			Log(`dropping key event: unrecognized key code`)
		return
	}
	scanCode, ok := key.ScanCode()
	if !ok {
		b.logger.Warning().
			Str(`code`, event.Key.Code).
			Stringer(`key`, key).
			Log(`dropping key event: no scan code for key`)
		return
	}
	b.handler.OnKeyDown(b.helper, key, scanCode)
}

// State reports the bridge's lifecycle state.
func (b *Bridge[U]) State() BridgeState {
	return b.state.Load()
}

// Helper returns the window-control facade. It is the same value passed
// to every handler notification.
func (b *Bridge[U]) Helper() *Helper[U] {
	return b.helper
}

// Terminate shuts the bridge down. Equivalent to
// Helper.TerminateLoop; see it for semantics.
func (b *Bridge[U]) Terminate() {
	b.terminate()
}

func (b *Bridge[U]) terminate() {
	if !b.state.TryTransition(StateRunning, StateTerminated) &&
		!b.state.TryTransition(StateUninitialized, StateTerminated) {
		return
	}
	b.subscriptions.terminate()
	b.redraw.terminate()
	b.dispatcher.terminate()
	b.logger.Info().
		Log(`bridge terminated`)
}
