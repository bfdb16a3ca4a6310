package surfacebridge

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"
)

type stubSub struct{}

func (stubSub) Cancel() {}

// stubTarget fails subscription for the configured event types.
type stubTarget struct {
	fail      map[EventType]error
	listeners map[EventType][]func(*Event)
}

func (t *stubTarget) Subscribe(typ EventType, listener func(*Event)) (Subscription, error) {
	if err := t.fail[typ]; err != nil {
		return nil, err
	}
	if t.listeners == nil {
		t.listeners = make(map[EventType][]func(*Event))
	}
	t.listeners[typ] = append(t.listeners[typ], listener)
	return stubSub{}, nil
}

func (t *stubTarget) dispatch(event *Event) {
	for _, listener := range t.listeners[event.Type] {
		listener(event)
	}
}

type stubSurface struct {
	stubTarget
}

func (s *stubSurface) ScaledSize() (float64, float64) { return 100, 100 }
func (s *stubSurface) SetBufferSize(image.Point)      {}
func (s *stubSurface) SetTabIndex(int)                {}
func (s *stubSurface) SetCursor(CursorStyle)          {}
func (s *stubSurface) RequestPointerLock()            {}
func (s *stubSurface) RequestFullscreen()             {}
func (s *stubSurface) IsPointerLockActive() bool      { return false }
func (s *stubSurface) IsFullscreenActive() bool       { return false }

type stubDocument struct {
	stubTarget
}

func (d *stubDocument) SetTitle(string)  {}
func (d *stubDocument) ExitPointerLock() {}
func (d *stubDocument) ExitFullscreen()  {}

type stubHost struct {
	surface  *stubSurface
	document *stubDocument
	window   *stubTarget
}

func (h *stubHost) SurfaceByID(id string) (Surface, error) { return h.surface, nil }
func (h *stubHost) Window() EventTarget                    { return h.window }
func (h *stubHost) Document() Document                     { return h.document }
func (h *stubHost) DevicePixelRatio() float64              { return 1 }

func (h *stubHost) RequestFrame(fn func()) (PendingOp, error) {
	return &fakeOp{}, nil
}

func (h *stubHost) Defer(fn func()) (PendingOp, error) {
	return &fakeOp{}, nil
}

type clickCounter struct {
	UnimplementedHandler[int]
	downs int
}

func (c *clickCounter) OnMouseButtonDown(*Helper[int], MouseButton) {
	c.downs++
}

func TestAttach_SubscriptionFailureDegradesFeature(t *testing.T) {
	host := &stubHost{
		surface:  &stubSurface{},
		document: &stubDocument{},
		window:   &stubTarget{},
	}
	host.surface.fail = map[EventType]error{
		EventKeyDown: errors.New("keydown not supported"),
	}

	var buf bytes.Buffer
	handler := &clickCounter{}
	bridge, err := Attach[int](host, "any", handler,
		func(image.Point, Surface) (Renderer, error) {
			return nopResizer{}, nil
		},
		WithLogger(newTestLogger(&buf)),
	)
	if err != nil {
		t.Fatalf("a failed subscription must not fail attach: %v", err)
	}
	if bridge.State() != StateRunning {
		t.Fatalf("state = %v", bridge.State())
	}
	if !strings.Contains(buf.String(), "feature degraded") {
		t.Errorf("expected degradation warning, got %q", buf.String())
	}

	// Other features keep working.
	host.surface.dispatch(&Event{Type: EventMouseDown, Pointer: PointerData{Button: 0}})
	if handler.downs != 1 {
		t.Fatalf("mouse down not routed, downs=%d", handler.downs)
	}
}

type nopResizer struct{}

func (nopResizer) Resize(image.Point) {}
