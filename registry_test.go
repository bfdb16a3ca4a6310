package surfacebridge

import (
	"testing"
)

// fakeSubscription records cancellation order via a shared log.
type fakeSubscription struct {
	name string
	log  *[]string
}

func (f *fakeSubscription) Cancel() {
	*f.log = append(*f.log, f.name)
}

func TestSubscriptionRegistry_TerminateCancelsAllInOrder(t *testing.T) {
	var log []string
	var r subscriptionRegistry
	r.add(&fakeSubscription{name: "a", log: &log})
	r.add(&fakeSubscription{name: "b", log: &log})
	r.add(&fakeSubscription{name: "c", log: &log})

	r.terminate()
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("unexpected cancellation order: %v", log)
	}

	// Idempotent: no double cancellation.
	r.terminate()
	if len(log) != 3 {
		t.Fatalf("terminate must be idempotent: %v", log)
	}
}

func TestSubscriptionRegistry_AddAfterTerminate(t *testing.T) {
	var log []string
	var r subscriptionRegistry
	r.terminate()
	r.add(&fakeSubscription{name: "late", log: &log})
	if len(log) != 1 || log[0] != "late" {
		t.Fatalf("late additions must be cancelled immediately: %v", log)
	}
}
