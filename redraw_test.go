package surfacebridge

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRedrawScheduler_Coalesces(t *testing.T) {
	r := newRedrawScheduler(nil)
	var requests int
	op := &fakeOp{}
	r.wire(func() (PendingOp, error) {
		requests++
		return op, nil
	})

	r.requestRedraw()
	r.requestRedraw()
	r.requestRedraw()
	if requests != 1 {
		t.Fatalf("expected 1 scheduled frame, got %d", requests)
	}

	// Once the pending token clears, the next request schedules again.
	r.clearPending()
	r.requestRedraw()
	if requests != 2 {
		t.Fatalf("expected 2 scheduled frames, got %d", requests)
	}
}

func TestRedrawScheduler_NotWired(t *testing.T) {
	var buf bytes.Buffer
	r := newRedrawScheduler(newTestLogger(&buf))
	r.requestRedraw()
	if !strings.Contains(buf.String(), "invalid state") {
		t.Errorf("expected warning about unwired scheduler, got %q", buf.String())
	}
}

func TestRedrawScheduler_RequestError(t *testing.T) {
	var buf bytes.Buffer
	r := newRedrawScheduler(newTestLogger(&buf))
	r.wire(func() (PendingOp, error) {
		return nil, errors.New("host refused")
	})
	r.requestRedraw()
	if !strings.Contains(buf.String(), "host refused") {
		t.Errorf("expected scheduling failure warning, got %q", buf.String())
	}
	// A failed request leaves nothing pending; the next request retries.
	var requests int
	r.wire(func() (PendingOp, error) {
		requests++
		return &fakeOp{}, nil
	})
	r.requestRedraw()
	if requests != 1 {
		t.Fatalf("expected retry to schedule, got %d", requests)
	}
}

func TestRedrawScheduler_Terminate(t *testing.T) {
	r := newRedrawScheduler(nil)
	op := &fakeOp{}
	var requests int
	r.wire(func() (PendingOp, error) {
		requests++
		return op, nil
	})
	r.requestRedraw()
	r.terminate()
	if !op.cancelled {
		t.Error("pending frame should be cancelled at termination")
	}
	r.requestRedraw()
	if requests != 1 {
		t.Errorf("requests after terminate must be dropped, got %d", requests)
	}
	// Idempotent.
	r.terminate()
}
