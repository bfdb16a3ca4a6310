package surfacebridge

import (
	"bytes"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// newTestLogger returns a generified logger writing JSON lines to buf,
// with the time field disabled for deterministic output.
func newTestLogger(buf *bytes.Buffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(buf),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelDebug),
	).Logger()
}

// fakeOp is a cancellation-recording PendingOp.
type fakeOp struct {
	cancelled bool
}

func (f *fakeOp) Cancel() {
	f.cancelled = true
}
