package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Listener invokes OnEvent for every event fired by a bloc while the widget
// is mounted. It renders Child unchanged; its only job is the side effect.
//
//	bloc.Listener[int, CounterEvent]{
//	    OnEvent: func(ctx core.BuildContext, b bloc.Bloc[int, CounterEvent], e CounterEvent) {
//	        // one-shot reaction: navigation, toast, ...
//	    },
//	    Child: body,
//	}
//
// The source is the Bloc field when set, otherwise the nearest matching
// Provider. While mounted the listener holds exactly one subscription to the
// source's event stream. When the effective source identity changes (the
// Bloc field is swapped between builds, or an ancestor Provider swaps its
// instance), the old subscription is cancelled before the new one is
// established, so no event is dropped or delivered twice across the rebind.
// Rebinding to the identical source is a no-op.
//
// Events dispatch in fired order. ListenWhen, when set, is evaluated exactly
// once per event at delivery time; a false result suppresses that dispatch
// and nothing else. A nil ListenWhen dispatches everything.
//
// A standalone Listener requires Child; constructing one without it (outside
// MultiListener, which injects the shared child) is a configuration error
// surfaced on first build.
type Listener[S, E any] struct {
	// Bloc is the explicit source. When nil, the source is resolved from
	// the nearest Provider[S, E].
	Bloc Bloc[S, E]
	// ListenWhen filters events. Called with the attached source and the
	// candidate event; return false to suppress dispatch. Nil means
	// dispatch always.
	ListenWhen func(b Bloc[S, E], event E) bool
	// OnEvent is the dispatch callback. Required.
	OnEvent func(ctx core.BuildContext, b Bloc[S, E], event E)
	// Child is the subtree rendered beneath this listener. Required unless
	// the listener is nested in a MultiListener.
	Child core.Widget
}

// CreateElement returns a StatefulElement hosting this listener.
func (l Listener[S, E]) CreateElement() core.Element {
	return core.NewStatefulElement()
}

// Key returns nil (no key).
func (l Listener[S, E]) Key() any {
	return nil
}

// CreateState creates the subscription-owning state.
func (l Listener[S, E]) CreateState() core.State {
	return &listenerState[S, E]{}
}

// WithChild returns a copy of the listener wrapping the given child.
func (l Listener[S, E]) WithChild(child core.Widget) core.Widget {
	l.Child = child
	return l
}

// listenerState owns the single event subscription for one Listener.
//
// Lifecycle: unattached until InitState, attached (possibly rebinding)
// while mounted, detached at Dispose. Detached is terminal.
type listenerState[S, E any] struct {
	core.StateBase
	bloc   Bloc[S, E]
	cancel func()
}

func (s *listenerState[S, E]) widget() Listener[S, E] {
	return s.Element().Widget().(Listener[S, E])
}

// effectiveSource resolves the source the listener should be bound to right
// now: the widget's explicit Bloc if present, otherwise the ambient one.
// Both update and dependency-change paths go through this single
// computation.
func (s *listenerState[S, E]) effectiveSource() Bloc[S, E] {
	w := s.widget()
	if w.Bloc != nil {
		return w.Bloc
	}
	return Of[S, E](s.Element())
}

func (s *listenerState[S, E]) InitState() {
	w := s.widget()
	if w.OnEvent == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Listener",
			Missing: "OnEvent",
			Hint:    "a listener with no dispatch callback has nothing to do",
		})
	}
	s.bloc = s.effectiveSource()
	s.subscribe()
}

func (s *listenerState[S, E]) subscribe() {
	s.cancel = s.bloc.SubscribeEvents(s.onEvent)
}

func (s *listenerState[S, E]) onEvent(event E) {
	// Read the current widget: filter and callback may have been replaced
	// since the subscription was established.
	w := s.widget()
	if w.ListenWhen != nil && !w.ListenWhen(s.bloc, event) {
		return
	}
	w.OnEvent(s.Element(), s.bloc, event)
}

// rebind re-resolves the effective source and, when its identity changed,
// atomically replaces the subscription: cancel first, then subscribe. Same
// identity is a no-op: no teardown, no duplicate delivery.
func (s *listenerState[S, E]) rebind() {
	if s.IsDisposed() {
		return
	}
	next := s.effectiveSource()
	if next == s.bloc {
		return
	}
	s.detach()
	s.bloc = next
	s.subscribe()
}

// detach cancels the active subscription. Idempotent.
func (s *listenerState[S, E]) detach() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *listenerState[S, E]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.rebind()
}

func (s *listenerState[S, E]) DidChangeDependencies() {
	s.rebind()
}

func (s *listenerState[S, E]) Dispose() {
	s.detach()
	s.StateBase.Dispose()
}

func (s *listenerState[S, E]) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	if w.Child == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Listener",
			Missing: "Child",
			Hint:    "a standalone listener must wrap a child; use MultiListener to share one child across listeners",
		})
	}
	return w.Child
}
