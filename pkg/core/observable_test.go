package core

import "testing"

func TestObservable_ValueAndSet(t *testing.T) {
	obs := NewObservable(42)
	if obs.Value() != 42 {
		t.Fatalf("expected 42, got %d", obs.Value())
	}
	obs.Set(100)
	if obs.Value() != 100 {
		t.Errorf("expected 100, got %d", obs.Value())
	}
}

func TestObservable_ListenersInvokedInOrder(t *testing.T) {
	obs := NewObservable(0)
	var order []string
	obs.AddListener(func(int) { order = append(order, "first") })
	obs.AddListener(func(int) { order = append(order, "second") })

	obs.Set(1)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestObservable_EverySetNotifies(t *testing.T) {
	obs := NewObservable(5)
	calls := 0
	obs.AddListener(func(int) { calls++ })

	obs.Set(5)
	obs.Set(5)

	if calls != 2 {
		t.Errorf("expected notification on every Set, got %d", calls)
	}
}

func TestObservable_CancelStopsDelivery(t *testing.T) {
	obs := NewObservable(0)
	calls := 0
	cancel := obs.AddListener(func(int) { calls++ })

	obs.Set(1)
	cancel()
	obs.Set(2)

	if calls != 1 {
		t.Errorf("expected 1 call after cancel, got %d", calls)
	}
	if obs.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", obs.ListenerCount())
	}
}

func TestObservable_CancelIsIdempotent(t *testing.T) {
	obs := NewObservable(0)
	cancel := obs.AddListener(func(int) {})
	cancel()
	cancel()
	if obs.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", obs.ListenerCount())
	}
}

func TestObservable_CancelDuringFanOut_SkipsPendingDelivery(t *testing.T) {
	obs := NewObservable(0)
	var secondCancel func()
	secondCalls := 0

	// The first listener cancels the second mid-pass; the second must not
	// receive the in-flight notification.
	obs.AddListener(func(int) { secondCancel() })
	secondCancel = obs.AddListener(func(int) { secondCalls++ })

	obs.Set(1)

	if secondCalls != 0 {
		t.Errorf("cancelled listener received in-flight notification %d times", secondCalls)
	}
}

func TestObservable_Close(t *testing.T) {
	obs := NewObservable(1)
	calls := 0
	obs.AddListener(func(int) { calls++ })

	obs.Close()
	obs.Set(2)

	if calls != 0 {
		t.Errorf("expected no delivery after close, got %d", calls)
	}
	if obs.Value() != 1 {
		t.Errorf("final value should remain readable, got %d", obs.Value())
	}
	if cancel := obs.AddListener(func(int) {}); cancel == nil {
		t.Error("AddListener on closed observable should return a no-op cancel")
	}
}

func TestNotifier_NotifyAndCancel(t *testing.T) {
	n := NewNotifier()
	calls := 0
	cancel := n.AddListener(func() { calls++ })

	n.Notify()
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	cancel()
	n.Notify()
	if calls != 1 {
		t.Errorf("expected no call after cancel, got %d", calls)
	}
	if n.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners, got %d", n.ListenerCount())
	}
}

func TestNotifier_Close(t *testing.T) {
	n := NewNotifier()
	calls := 0
	n.AddListener(func() { calls++ })
	n.Close()
	n.Notify()
	if calls != 0 {
		t.Errorf("expected no delivery after close, got %d", calls)
	}
}
