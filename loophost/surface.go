// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loophost

import (
	"image"
	"sync"

	surfacebridge "github.com/joeycumines/go-surfacebridge"
)

// Surface is an in-process [surfacebridge.Surface]. Native events are
// injected by calling Dispatch (promoted from the embedded target) or
// one of the typed helpers such as [Surface.Resize].
//
// Injection helpers dispatch listeners synchronously on the caller's
// goroutine, so they must be called from the goroutine that pumps the
// host (the [Host.Run] goroutine, or whichever goroutine drives
// [Host.Drain] and [Host.StepFrame]). To inject from elsewhere, wrap
// the call in [Host.Defer].
type Surface struct {
	target

	host *Host
	id   string

	mu         sync.Mutex
	scaledW    float64
	scaledH    float64
	bufferSize image.Point
	tabIndex   int
	cursor     surfacebridge.CursorStyle
}

// ID returns the surface's registration ID.
func (s *Surface) ID() string { return s.id }

// ScaledSize implements [surfacebridge.Surface].
func (s *Surface) ScaledSize() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scaledW, s.scaledH
}

// SetBufferSize implements [surfacebridge.Surface].
func (s *Surface) SetBufferSize(size image.Point) {
	s.mu.Lock()
	s.bufferSize = size
	s.mu.Unlock()
}

// BufferSize returns the last size set via SetBufferSize.
func (s *Surface) BufferSize() image.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bufferSize
}

// SetTabIndex implements [surfacebridge.Surface].
func (s *Surface) SetTabIndex(tabIndex int) {
	s.mu.Lock()
	s.tabIndex = tabIndex
	s.mu.Unlock()
}

// TabIndex returns the last tab index set via SetTabIndex.
func (s *Surface) TabIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabIndex
}

// SetCursor implements [surfacebridge.Surface].
func (s *Surface) SetCursor(style surfacebridge.CursorStyle) {
	s.mu.Lock()
	s.cursor = style
	s.mu.Unlock()
}

// Cursor returns the last cursor style set via SetCursor.
func (s *Surface) Cursor() surfacebridge.CursorStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// RequestPointerLock implements [surfacebridge.Surface]. The lock
// activates on a later loop turn, at which point a pointerlockchange
// event dispatches on the document. Requests after host close are
// dropped.
func (s *Surface) RequestPointerLock() {
	doc := s.host.document
	_, _ = s.host.Defer(func() {
		doc.setPointerLock(s)
	})
}

// RequestFullscreen implements [surfacebridge.Surface]. As with
// pointer lock, the transition resolves on a later loop turn with a
// fullscreenchange event on the document.
func (s *Surface) RequestFullscreen() {
	doc := s.host.document
	_, _ = s.host.Defer(func() {
		doc.setFullscreen(s)
	})
}

// IsPointerLockActive implements [surfacebridge.Surface].
func (s *Surface) IsPointerLockActive() bool {
	return s.host.document.pointerLockSurface() == s
}

// IsFullscreenActive implements [surfacebridge.Surface].
func (s *Surface) IsFullscreenActive() bool {
	return s.host.document.fullscreenSurface() == s
}

// Resize changes the surface's scaled size and synchronously
// dispatches a resize event on the host's window target, the way a
// layout change would.
func (s *Surface) Resize(width, height float64) {
	s.mu.Lock()
	s.scaledW, s.scaledH = width, height
	s.mu.Unlock()
	s.host.window.Dispatch(&surfacebridge.Event{Type: surfacebridge.EventResize})
}

// MouseMove dispatches a mousemove event carrying both the surface
// position and the relative motion delta; which one a consumer reads
// depends on pointer lock state.
func (s *Surface) MouseMove(offsetX, offsetY, movementX, movementY float64) {
	s.Dispatch(&surfacebridge.Event{
		Type: surfacebridge.EventMouseMove,
		Pointer: surfacebridge.PointerData{
			OffsetX:   offsetX,
			OffsetY:   offsetY,
			MovementX: movementX,
			MovementY: movementY,
		},
	})
}

// MouseDown dispatches a mousedown event for the given button ordinal.
func (s *Surface) MouseDown(button int) {
	s.Dispatch(&surfacebridge.Event{
		Type:    surfacebridge.EventMouseDown,
		Pointer: surfacebridge.PointerData{Button: button},
	})
}

// MouseUp dispatches a mouseup event for the given button ordinal.
func (s *Surface) MouseUp(button int) {
	s.Dispatch(&surfacebridge.Event{
		Type:    surfacebridge.EventMouseUp,
		Pointer: surfacebridge.PointerData{Button: button},
	})
}

// KeyDown dispatches a keydown event for the given physical key code.
func (s *Surface) KeyDown(code string) {
	s.Dispatch(&surfacebridge.Event{
		Type: surfacebridge.EventKeyDown,
		Key:  surfacebridge.KeyData{Code: code},
	})
}

// ContextMenu dispatches a contextmenu event and reports whether its
// default action survived (i.e. no listener called PreventDefault).
func (s *Surface) ContextMenu() bool {
	event := &surfacebridge.Event{Type: surfacebridge.EventContextMenu}
	s.Dispatch(event)
	return !event.DefaultPrevented()
}

// Document is the in-process [surfacebridge.Document]. Pointer lock and
// fullscreen state live here: at most one surface holds each at a time.
type Document struct {
	target

	host *Host

	mu         sync.Mutex
	title      string
	locked     *Surface
	fullscreen *Surface
}

// SetTitle implements [surfacebridge.Document].
func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

// Title returns the last title set via SetTitle.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// ExitPointerLock implements [surfacebridge.Document]. The release
// resolves on a later loop turn.
func (d *Document) ExitPointerLock() {
	_, _ = d.host.Defer(func() {
		d.setPointerLock(nil)
	})
}

// ExitFullscreen implements [surfacebridge.Document]. The exit resolves
// on a later loop turn.
func (d *Document) ExitFullscreen() {
	_, _ = d.host.Defer(func() {
		d.setFullscreen(nil)
	})
}

func (d *Document) pointerLockSurface() *Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}

func (d *Document) fullscreenSurface() *Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fullscreen
}

func (d *Document) setPointerLock(s *Surface) {
	d.mu.Lock()
	changed := d.locked != s
	d.locked = s
	d.mu.Unlock()
	if changed {
		d.Dispatch(&surfacebridge.Event{Type: surfacebridge.EventPointerLockChange})
	}
}

func (d *Document) setFullscreen(s *Surface) {
	d.mu.Lock()
	changed := d.fullscreen != s
	d.fullscreen = s
	d.mu.Unlock()
	if changed {
		d.Dispatch(&surfacebridge.Event{Type: surfacebridge.EventFullscreenChange})
	}
}
