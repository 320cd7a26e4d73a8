package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Builder rebuilds a subtree from a bloc's state. The builder callback runs
// once at mount with the state the source held at that moment, then again
// for each state transition that passes BuildWhen.
//
// BuildWhen receives the previous and the candidate state. "Previous" means
// the previously *emitted* state: it advances on every transition whether or
// not that transition triggered a rebuild. A nil BuildWhen rebuilds on every
// transition. Suppressing a rebuild leaves the previously built output in
// place.
//
// Source resolution and rebinding follow the Listener contract. After a
// rebind both the rendered state and the BuildWhen baseline reset to the new
// source's current state and a rebuild is forced, so no comparison ever
// spans two different sources and no stale-source build survives the swap.
type Builder[S, E any] struct {
	core.StatefulBase
	// Bloc is the explicit source. When nil, the source is resolved from
	// the nearest Provider[S, E].
	Bloc Bloc[S, E]
	// BuildWhen filters state transitions. Nil rebuilds on every one.
	BuildWhen func(prev, curr S) bool
	// Builder produces the subtree for a state. Required.
	Builder func(ctx core.BuildContext, state S) core.Widget
}

// CreateState creates the subscription-owning state.
func (b Builder[S, E]) CreateState() core.State {
	return &builderState[S, E]{}
}

// builderState owns the state subscription for one Builder.
type builderState[S, E any] struct {
	core.StateBase
	bloc   Bloc[S, E]
	cancel func()
	shown  S // state the current output was built from
	prev   S // last emitted state, the BuildWhen baseline
}

func (s *builderState[S, E]) widget() Builder[S, E] {
	return s.Element().Widget().(Builder[S, E])
}

func (s *builderState[S, E]) effectiveSource() Bloc[S, E] {
	w := s.widget()
	if w.Bloc != nil {
		return w.Bloc
	}
	return Of[S, E](s.Element())
}

func (s *builderState[S, E]) InitState() {
	w := s.widget()
	if w.Builder == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Builder",
			Missing: "Builder",
		})
	}
	s.bloc = s.effectiveSource()
	s.shown = s.bloc.State()
	s.prev = s.shown
	s.subscribe()
}

func (s *builderState[S, E]) subscribe() {
	s.cancel = s.bloc.SubscribeStates(s.onState)
}

func (s *builderState[S, E]) onState(next S) {
	w := s.widget()
	rebuild := w.BuildWhen == nil || w.BuildWhen(s.prev, next)
	s.prev = next
	if rebuild {
		s.SetState(func() {
			s.shown = next
		})
	}
}

func (s *builderState[S, E]) rebind() {
	if s.IsDisposed() {
		return
	}
	next := s.effectiveSource()
	if next == s.bloc {
		return
	}
	s.detach()
	s.bloc = next
	// Baseline resets to the new source; any rebuild suppressed against the
	// old source is discarded in favor of a fresh build.
	s.SetState(func() {
		s.shown = next.State()
		s.prev = s.shown
	})
	s.subscribe()
}

func (s *builderState[S, E]) detach() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *builderState[S, E]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.rebind()
}

func (s *builderState[S, E]) DidChangeDependencies() {
	s.rebind()
}

func (s *builderState[S, E]) Dispose() {
	s.detach()
	s.StateBase.Dispose()
}

func (s *builderState[S, E]) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Builder(ctx, s.shown)
}
