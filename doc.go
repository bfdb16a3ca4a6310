// Package surfacebridge attaches a drawing/event handler to a single
// on-screen rendering surface hosted by a browser-like environment,
// translating native input and lifecycle events into a normalized event
// vocabulary.
//
// # Architecture
//
// The package is built around a [Bridge], the composition root that owns
// the handler and wires together four stateful collaborators: a redraw
// scheduler that coalesces any number of [Helper.RequestRedraw] calls into
// at most one pending host frame callback, a user-event dispatcher that
// batches [UserEventSender.Send] calls into a single zero-delay
// deferred flush, a subscription registry that owns every native listener
// registered during setup and releases them all on termination, and a
// [Helper] facade through which handler callbacks manipulate the window
// (title, cursor, pointer capture, fullscreen).
//
// The hosting environment is abstracted behind the [Host], [Surface],
// [Document], and [EventTarget] interfaces. The loophost subpackage
// provides a portable single-goroutine host suitable for headless use and
// testing; the webhost subpackage binds the same contract to the browser
// DOM under GOOS=js.
//
// # Execution Model
//
// Everything is single-threaded and callback-driven: there is no blocking
// call anywhere in this package, and "suspension" is simulated by
// deferring work to a future turn of the host's callback queue (frame
// timing, zero-delay timers). Reentrancy is well-defined via a
// clear-before-notify rule: coalescing flags are cleared immediately
// before the corresponding handler notification is delivered, so a
// redraw requested from inside OnDraw schedules exactly one new frame.
//
// # Thread Safety
//
// Handler callbacks always execute on the host's callback turn, never
// concurrently. [UserEventSender] values are the one deliberate
// exception: they are safe to use from any goroutine, and delivery still
// happens on the host turn.
//
// # Ordering Guarantees
//
//   - Native events are routed in the order the host delivers them.
//   - User events within one flush preserve submission order; events
//     enqueued during a flush land in the next batch, never the current
//     one and never twice.
//   - A resize always triggers a draw in the same turn.
//
// # Termination
//
// Termination ([Helper.TerminateLoop]) is one-way. After it completes, no
// further redraw, flush, or native-event-triggered handler callback
// occurs; a native listener already in flight when termination began may
// fire once more inside the host, but its effects are suppressed before
// reaching the handler.
//
// # Usage
//
//	handler := &myHandler{} // implements surfacebridge.Handler[string]
//	bridge, err := surfacebridge.Attach[string](
//	    host, "drawing-canvas", handler, newRenderer,
//	    surfacebridge.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = bridge
package surfacebridge
