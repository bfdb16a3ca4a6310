package surfacebridge

import (
	"errors"
	"testing"
)

func TestUserEventDispatcher_BatchFIFO(t *testing.T) {
	var delivered []int
	d := newUserEventDispatcher[int](nil, func(event int) {
		delivered = append(delivered, event)
	})
	var scheduled int
	d.wire(func() (PendingOp, error) {
		scheduled++
		return &fakeOp{}, nil
	})

	for i := 1; i <= 3; i++ {
		if err := d.sendEvent(i); err != nil {
			t.Fatalf("sendEvent(%d): %v", i, err)
		}
	}
	if scheduled != 1 {
		t.Fatalf("expected a single pending flush, got %d", scheduled)
	}
	if len(delivered) != 0 {
		t.Fatal("delivery must be deferred, not synchronous")
	}

	d.flush()
	if len(delivered) != 3 || delivered[0] != 1 || delivered[1] != 2 || delivered[2] != 3 {
		t.Fatalf("unexpected delivery order: %v", delivered)
	}
}

func TestUserEventDispatcher_SendDuringFlush(t *testing.T) {
	var scheduled int
	d := newUserEventDispatcher[string](nil, nil)
	d.deliver = func(event string) {
		if event == "first" {
			// Lands in a new batch with a fresh flush.
			if err := d.sendEvent("second"); err != nil {
				t.Fatalf("sendEvent during flush: %v", err)
			}
		}
	}
	d.wire(func() (PendingOp, error) {
		scheduled++
		return &fakeOp{}, nil
	})

	if err := d.sendEvent("first"); err != nil {
		t.Fatal(err)
	}
	d.flush()
	if scheduled != 2 {
		t.Fatalf("send during flush should schedule a new flush, got %d", scheduled)
	}

	var delivered []string
	d.deliver = func(event string) { delivered = append(delivered, event) }
	d.flush()
	if len(delivered) != 1 || delivered[0] != "second" {
		t.Fatalf("expected the during-flush event in the next batch, got %v", delivered)
	}
}

func TestUserEventDispatcher_ScheduleFailureRollsBack(t *testing.T) {
	scheduleErr := errors.New("loop gone")
	d := newUserEventDispatcher[int](nil, func(int) {})
	d.wire(func() (PendingOp, error) {
		return nil, scheduleErr
	})
	err := d.sendEvent(7)
	if !errors.Is(err, scheduleErr) {
		t.Fatalf("expected wrapped schedule error, got %v", err)
	}
	// The rejected event must not linger and surface later.
	var delivered []int
	d.deliver = func(event int) { delivered = append(delivered, event) }
	d.wire(func() (PendingOp, error) { return &fakeOp{}, nil })
	if err := d.sendEvent(8); err != nil {
		t.Fatal(err)
	}
	d.flush()
	if len(delivered) != 1 || delivered[0] != 8 {
		t.Fatalf("rolled-back event leaked into delivery: %v", delivered)
	}
}

func TestUserEventDispatcher_Terminate(t *testing.T) {
	d := newUserEventDispatcher[int](nil, func(int) {
		t.Fatal("no delivery after terminate")
	})
	op := &fakeOp{}
	d.wire(func() (PendingOp, error) { return op, nil })
	if err := d.sendEvent(1); err != nil {
		t.Fatal(err)
	}
	d.terminate()
	if !op.cancelled {
		t.Error("pending flush should be cancelled at termination")
	}
	if err := d.sendEvent(2); !errors.Is(err, ErrTerminated) {
		t.Fatalf("expected ErrTerminated, got %v", err)
	}
	// A flush that fires anyway (e.g. cancellation raced the host) must
	// deliver nothing.
	d.flush()
	// Idempotent.
	d.terminate()
}

func TestUserEventSender_SharesDispatcher(t *testing.T) {
	var delivered []int
	d := newUserEventDispatcher[int](nil, func(event int) {
		delivered = append(delivered, event)
	})
	d.wire(func() (PendingOp, error) { return &fakeOp{}, nil })

	sender := UserEventSender[int]{dispatcher: d}
	clone := sender // senders are cheap copyable values
	if err := sender.Send(1); err != nil {
		t.Fatal(err)
	}
	if err := clone.Send(2); err != nil {
		t.Fatal(err)
	}
	d.flush()
	if len(delivered) != 2 {
		t.Fatalf("both senders should feed the same queue: %v", delivered)
	}
}
