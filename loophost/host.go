// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package loophost

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	surfacebridge "github.com/joeycumines/go-surfacebridge"
	"github.com/joeycumines/logiface"
)

// ErrClosed is returned by scheduling operations after the host has
// been closed.
var ErrClosed = errors.New(`loophost: host closed`)

// pendingFunc is a cancelable queued callback. The done flag flips
// exactly once, on whichever of cancel or fire happens first.
type pendingFunc struct {
	fn   func()
	done atomic.Bool
}

func (p *pendingFunc) Cancel() {
	p.done.Store(true)
}

func (p *pendingFunc) call() {
	if p.done.CompareAndSwap(false, true) {
		p.fn()
	}
}

// hostOptions holds configuration options for Host creation.
type hostOptions struct {
	logger           *logiface.Logger[logiface.Event]
	devicePixelRatio float64
}

// Option configures a Host instance.
type Option interface {
	applyHost(*hostOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyHostFunc func(*hostOptions) error
}

func (o *optionImpl) applyHost(opts *hostOptions) error {
	return o.applyHostFunc(opts)
}

// WithDevicePixelRatio sets the host's initial device pixel ratio.
// Defaults to 1.0.
func WithDevicePixelRatio(ratio float64) Option {
	return &optionImpl{func(opts *hostOptions) error {
		opts.devicePixelRatio = ratio
		return nil
	}}
}

// WithLogger sets the structured logger used by the host. A nil logger
// disables logging entirely (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *hostOptions) error {
		opts.logger = logger
		return nil
	}}
}

func resolveHostOptions(opts []Option) (*hostOptions, error) {
	cfg := &hostOptions{
		devicePixelRatio: 1, // default
	}
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyHost(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Host is an in-process [surfacebridge.Host]. Scheduling methods are
// safe from any goroutine; queued callbacks only execute when the loop
// is pumped, from the pumping goroutine.
type Host struct {
	logger *logiface.Logger[logiface.Event]

	mu         sync.Mutex
	dpr        float64
	surfaces   map[string]*Surface
	window     target
	document   *Document
	immediates []*pendingFunc
	frames     []*pendingFunc
	wake       chan struct{}
	closed     bool
}

// New creates a Host with no surfaces. Register surfaces via
// [Host.AddSurface] before attaching bridges.
func New(opts ...Option) (*Host, error) {
	cfg, err := resolveHostOptions(opts)
	if err != nil {
		return nil, err
	}
	h := &Host{
		logger:   cfg.logger,
		dpr:      cfg.devicePixelRatio,
		surfaces: make(map[string]*Surface),
		wake:     make(chan struct{}, 1),
	}
	h.document = &Document{host: h}
	return h, nil
}

// AddSurface registers a surface under the given ID with the given
// scaled (CSS pixel) dimensions, replacing any previous surface with
// that ID.
func (h *Host) AddSurface(id string, width, height float64) *Surface {
	s := &Surface{host: h, id: id, scaledW: width, scaledH: height}
	h.mu.Lock()
	h.surfaces[id] = s
	h.mu.Unlock()
	return s
}

// SurfaceByID implements [surfacebridge.Host].
func (h *Host) SurfaceByID(id string) (surfacebridge.Surface, error) {
	h.mu.Lock()
	s, ok := h.surfaces[id]
	h.mu.Unlock()
	if !ok {
		return nil, surfacebridge.WrapError(`no surface with id `+id, surfacebridge.ErrSurfaceNotFound)
	}
	return s, nil
}

// Window implements [surfacebridge.Host]. Resize events dispatch here.
func (h *Host) Window() surfacebridge.EventTarget {
	return &h.window
}

// Document implements [surfacebridge.Host].
func (h *Host) Document() surfacebridge.Document {
	return h.document
}

// DevicePixelRatio implements [surfacebridge.Host].
func (h *Host) DevicePixelRatio() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dpr
}

// SetDevicePixelRatio changes the host's device pixel ratio. It does
// not dispatch a resize; callers model a browser zoom change by setting
// the ratio and then resizing the relevant surface.
func (h *Host) SetDevicePixelRatio(ratio float64) {
	h.mu.Lock()
	h.dpr = ratio
	h.mu.Unlock()
}

// RequestFrame implements [surfacebridge.Host]: fn runs during the next
// [Host.StepFrame], unless cancelled first.
func (h *Host) RequestFrame(fn func()) (surfacebridge.PendingOp, error) {
	return h.enqueue(&h.frames, fn)
}

// Defer implements [surfacebridge.Host]: fn runs on the next
// [Host.Drain], unless cancelled first.
func (h *Host) Defer(fn func()) (surfacebridge.PendingOp, error) {
	return h.enqueue(&h.immediates, fn)
}

func (h *Host) enqueue(queue *[]*pendingFunc, fn func()) (surfacebridge.PendingOp, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}
	p := &pendingFunc{fn: fn}
	*queue = append(*queue, p)
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
	return p, nil
}

// Drain runs deferred callbacks until the queue is empty, including
// callbacks queued by the callbacks themselves.
func (h *Host) Drain() {
	for {
		h.mu.Lock()
		batch := h.immediates
		h.immediates = nil
		h.mu.Unlock()
		if len(batch) == 0 {
			return
		}
		for _, p := range batch {
			p.call()
		}
	}
}

// StepFrame runs the frame callbacks pending at the time of the call.
// Frames requested during the step land in the next one, mirroring how
// a display refresh batches animation callbacks.
func (h *Host) StepFrame() {
	h.mu.Lock()
	batch := h.frames
	h.frames = nil
	h.mu.Unlock()
	for _, p := range batch {
		p.call()
	}
}

// Run pumps the loop until ctx is done: each wakeup drains deferred
// callbacks and steps any pending frame. Close is called on the way
// out.
func (h *Host) Run(ctx context.Context) error {
	defer h.Close()
	for {
		h.Drain()
		h.StepFrame()
		h.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.wake:
		}
	}
}

// Close rejects all future scheduling and drops queued callbacks
// without running them. Idempotent.
func (h *Host) Close() {
	h.mu.Lock()
	h.closed = true
	immediates, frames := h.immediates, h.frames
	h.immediates, h.frames = nil, nil
	h.mu.Unlock()
	for _, p := range immediates {
		p.Cancel()
	}
	for _, p := range frames {
		p.Cancel()
	}
	if h.logger != nil {
		h.logger.Debug().
			Log(`host closed`)
	}
}
