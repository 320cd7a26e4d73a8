package bloc

import "github.com/go-drift/bloc/pkg/core"

// Bloc is the capability consumed by every binding widget in this package:
// a stateful object that holds a current state value and broadcasts two
// independent notification sequences, one for state transitions and one for
// discrete events.
//
// State changes are continuous ("what the UI shows"); events are fire-once
// notifications used for one-shot reactions such as navigation or transient
// messages. The two sequences never interleave through each other: firing an
// event does not touch state, and emitting state does not produce an event.
//
// Implementations must be comparable by identity (in practice, pointers).
// Two Bloc values are the same source exactly when they compare equal;
// binding widgets use that comparison to decide whether a rebind is needed.
//
// Blocs are created and closed entirely by the application. Binding widgets
// only attach and detach subscriptions; they never construct or close a Bloc.
type Bloc[S, E any] interface {
	// State returns the current state value.
	State() S

	// SubscribeStates registers a callback invoked on every state
	// transition, in transition order. The returned cancel function closes
	// the registration before returning: once it completes, the callback
	// is never invoked again.
	SubscribeStates(fn func(S)) (cancel func())

	// SubscribeEvents registers a callback invoked for every fired event,
	// in fired order, with the same cancellation contract as
	// SubscribeStates.
	SubscribeEvents(fn func(E)) (cancel func())
}

// Change describes one state transition of a bloc, reported to the global
// Observer.
type Change[S any] struct {
	// Current is the state before the transition.
	Current S
	// Next is the state after the transition.
	Next S
}

// Nestable is a widget that can receive its child after construction. It is
// implemented by Listener and Provider so MultiListener and MultiProvider
// can fold a shared child into a chain of wrappers.
type Nestable interface {
	core.Widget
	// WithChild returns a copy of the widget with the given child attached.
	WithChild(child core.Widget) core.Widget
}
