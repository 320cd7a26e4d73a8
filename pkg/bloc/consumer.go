package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Consumer combines a Listener and a Builder against the same source: events
// reach OnEvent, state transitions drive Builder, and both subscriptions
// always point at the same bloc instance.
//
// The two channels are independent. A transition suppressed by BuildWhen
// does not suppress event dispatch, and a filtered event does not prevent a
// rebuild. What Consumer adds over nesting the two widgets by hand is the
// shared rebind: when the effective source identity changes, both
// subscriptions move to the new source in one step, so the event stream and
// the rebuild baseline can never briefly disagree about which source is
// attached.
type Consumer[S, E any] struct {
	core.StatefulBase
	// Bloc is the explicit source. When nil, the source is resolved from
	// the nearest Provider[S, E].
	Bloc Bloc[S, E]
	// ListenWhen filters events, as in Listener.
	ListenWhen func(b Bloc[S, E], event E) bool
	// OnEvent is the event dispatch callback. Required.
	OnEvent func(ctx core.BuildContext, b Bloc[S, E], event E)
	// BuildWhen filters state transitions, as in Builder.
	BuildWhen func(prev, curr S) bool
	// Builder produces the subtree for a state. Required.
	Builder func(ctx core.BuildContext, state S) core.Widget
}

// CreateState creates the subscription-owning state.
func (c Consumer[S, E]) CreateState() core.State {
	return &consumerState[S, E]{}
}

// consumerState owns both subscriptions for one Consumer.
type consumerState[S, E any] struct {
	core.StateBase
	bloc         Bloc[S, E]
	cancelEvents func()
	cancelStates func()
	shown        S
	prev         S
}

func (s *consumerState[S, E]) widget() Consumer[S, E] {
	return s.Element().Widget().(Consumer[S, E])
}

func (s *consumerState[S, E]) effectiveSource() Bloc[S, E] {
	w := s.widget()
	if w.Bloc != nil {
		return w.Bloc
	}
	return Of[S, E](s.Element())
}

func (s *consumerState[S, E]) InitState() {
	w := s.widget()
	if w.OnEvent == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Consumer",
			Missing: "OnEvent",
			Hint:    "use bloc.Builder when only state-driven rebuilds are needed",
		})
	}
	if w.Builder == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Consumer",
			Missing: "Builder",
			Hint:    "use bloc.Listener when only event dispatch is needed",
		})
	}
	s.bloc = s.effectiveSource()
	s.shown = s.bloc.State()
	s.prev = s.shown
	s.attach()
}

// attach establishes both subscriptions on the current source.
func (s *consumerState[S, E]) attach() {
	s.cancelEvents = s.bloc.SubscribeEvents(s.onEvent)
	s.cancelStates = s.bloc.SubscribeStates(s.onState)
}

// detach cancels both subscriptions. Idempotent.
func (s *consumerState[S, E]) detach() {
	if s.cancelEvents != nil {
		s.cancelEvents()
		s.cancelEvents = nil
	}
	if s.cancelStates != nil {
		s.cancelStates()
		s.cancelStates = nil
	}
}

func (s *consumerState[S, E]) onEvent(event E) {
	w := s.widget()
	if w.ListenWhen != nil && !w.ListenWhen(s.bloc, event) {
		return
	}
	w.OnEvent(s.Element(), s.bloc, event)
}

func (s *consumerState[S, E]) onState(next S) {
	w := s.widget()
	rebuild := w.BuildWhen == nil || w.BuildWhen(s.prev, next)
	s.prev = next
	if rebuild {
		s.SetState(func() {
			s.shown = next
		})
	}
}

// rebind moves both subscriptions to the newly effective source in one
// step. Same identity is a no-op.
func (s *consumerState[S, E]) rebind() {
	if s.IsDisposed() {
		return
	}
	next := s.effectiveSource()
	if next == s.bloc {
		return
	}
	s.detach()
	s.bloc = next
	s.SetState(func() {
		s.shown = next.State()
		s.prev = s.shown
	})
	s.attach()
}

func (s *consumerState[S, E]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.rebind()
}

func (s *consumerState[S, E]) DidChangeDependencies() {
	s.rebind()
}

func (s *consumerState[S, E]) Dispose() {
	s.detach()
	s.StateBase.Dispose()
}

func (s *consumerState[S, E]) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Builder(ctx, s.shown)
}
