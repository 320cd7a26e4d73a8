package bloc

import (
	"sync"

	"github.com/go-drift/bloc/pkg/core"
)

// Cubit is the reference Bloc implementation: a minimal producer that emits
// state transitions with Emit and fires discrete events with Fire. Embed a
// *Cubit in an application type to build a typed bloc:
//
//	type CounterCubit struct {
//	    *bloc.Cubit[int, CounterEvent]
//	}
//
//	func (c *CounterCubit) Increment() {
//	    c.Emit(c.State() + 1)
//	    c.Fire(Incremented)
//	}
//
// Emit and Fire are intended to run on the UI goroutine, like every other
// mutation in the cooperative scheduling model. Hand off to the scheduler's
// dispatch queue from background goroutines.
type Cubit[S, E any] struct {
	states *core.Observable[S]
	events *core.Observable[E]

	mu     sync.Mutex
	closed bool
}

// NewCubit creates a Cubit holding the given initial state and reports it to
// the global Observer.
func NewCubit[S, E any](initial S) *Cubit[S, E] {
	c := &Cubit[S, E]{
		states: core.NewObservable(initial),
		events: core.NewObservable(*new(E)),
	}
	observerOnCreate(c)
	return c
}

// State returns the current state.
func (c *Cubit[S, E]) State() S {
	return c.states.Value()
}

// Emit transitions to the next state and notifies state subscribers in
// subscription order. Every call is a transition; no equality filtering is
// applied. Emit on a closed cubit is a no-op.
func (c *Cubit[S, E]) Emit(next S) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	change := Change[S]{Current: c.states.Value(), Next: next}
	c.mu.Unlock()

	observerOnChange(c, change)
	c.states.Set(next)
}

// Fire broadcasts a discrete event to event subscribers in subscription
// order. Events do not touch state. Fire on a closed cubit is a no-op.
func (c *Cubit[S, E]) Fire(event E) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	observerOnEvent(c, event)
	c.events.Set(event)
}

// SubscribeStates registers a state-transition callback.
func (c *Cubit[S, E]) SubscribeStates(fn func(S)) (cancel func()) {
	return c.states.AddListener(fn)
}

// SubscribeEvents registers an event callback.
func (c *Cubit[S, E]) SubscribeEvents(fn func(E)) (cancel func()) {
	return c.events.AddListener(fn)
}

// Close cancels all subscriptions and makes further Emit/Fire calls no-ops.
// The final state remains readable. Close is idempotent.
func (c *Cubit[S, E]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	observerOnClose(c)
	c.states.Close()
	c.events.Close()
}

// IsClosed returns true once Close has been called.
func (c *Cubit[S, E]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
