package core

import "testing"

// mockDisposable for testing UseController.
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})

	if controller.disposed {
		t.Error("controller should not be disposed initially")
	}

	base.Dispose()

	if !controller.disposed {
		t.Error("controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)

	if notifier.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", notifier.ListenerCount())
	}

	base.Dispose()

	if notifier.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseObservable_Cleanup(t *testing.T) {
	base := &StateBase{}
	obs := NewObservable(0)

	UseObservable(base, obs)

	if obs.ListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", obs.ListenerCount())
	}

	base.Dispose()

	if obs.ListenerCount() != 0 {
		t.Errorf("expected 0 listeners after dispose, got %d", obs.ListenerCount())
	}
}

func TestManaged_SetTriggersRebuild(t *testing.T) {
	owner := NewBuildOwner()
	builds := 0

	var count *Managed[int]
	state := &testState{}
	state.buildFn = func(ctx BuildContext) Widget {
		builds++
		return nil
	}
	widget := testStatefulWidget{createStateFn: func() State { return state }}

	root := MountRoot(widget, owner)
	defer root.Unmount()

	count = NewManaged(state, 0)
	count.Set(5)
	owner.FlushBuild()

	if count.Value() != 5 {
		t.Errorf("expected value 5, got %d", count.Value())
	}
	if builds != 2 {
		t.Errorf("expected rebuild after Set, got %d builds", builds)
	}
}

func TestManaged_Update(t *testing.T) {
	base := &StateBase{}
	count := NewManaged(base, 10)
	count.Update(func(v int) int { return v * 2 })
	if count.Value() != 20 {
		t.Errorf("expected 20, got %d", count.Value())
	}
}

func TestOnDispose_RunsInReverseOrder(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	base.OnDispose(func() { order = append(order, 2) })

	base.Dispose()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected LIFO disposer order [2 1], got %v", order)
	}
}

func TestOnDispose_AfterDispose_RunsImmediately(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.OnDispose(func() { ran = true })

	if !ran {
		t.Error("disposer registered after dispose should run immediately")
	}
}

func TestOnDispose_Unregister(t *testing.T) {
	base := &StateBase{}
	ran := false
	unregister := base.OnDispose(func() { ran = true })
	unregister()
	base.Dispose()

	if ran {
		t.Error("unregistered disposer should not run")
	}
}
