package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Selector projects a bloc's state through Selector and rebuilds only when
// the projected value changes, comparing with ==. Use it to isolate a
// subtree from state transitions it does not care about:
//
//	bloc.Selector[Profile, ProfileEvent, string]{
//	    Selector: func(p Profile) string { return p.DisplayName },
//	    Builder:  func(ctx core.BuildContext, name string) core.Widget { ... },
//	}
//
// Source resolution and rebinding follow the Listener contract; a rebind
// re-projects the new source's current state and forces a rebuild.
type Selector[S, E any, T comparable] struct {
	core.StatefulBase
	// Bloc is the explicit source. When nil, the source is resolved from
	// the nearest Provider[S, E].
	Bloc Bloc[S, E]
	// Selector projects the state. Required.
	Selector func(state S) T
	// Builder produces the subtree for a projected value. Required.
	Builder func(ctx core.BuildContext, value T) core.Widget
}

// CreateState creates the subscription-owning state.
func (s Selector[S, E, T]) CreateState() core.State {
	return &selectorState[S, E, T]{}
}

type selectorState[S, E any, T comparable] struct {
	core.StateBase
	bloc     Bloc[S, E]
	cancel   func()
	selected T
}

func (s *selectorState[S, E, T]) widget() Selector[S, E, T] {
	return s.Element().Widget().(Selector[S, E, T])
}

func (s *selectorState[S, E, T]) effectiveSource() Bloc[S, E] {
	w := s.widget()
	if w.Bloc != nil {
		return w.Bloc
	}
	return Of[S, E](s.Element())
}

func (s *selectorState[S, E, T]) InitState() {
	w := s.widget()
	if w.Selector == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Selector",
			Missing: "Selector",
		})
	}
	if w.Builder == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.Selector",
			Missing: "Builder",
		})
	}
	s.bloc = s.effectiveSource()
	s.selected = w.Selector(s.bloc.State())
	s.subscribe()
}

func (s *selectorState[S, E, T]) subscribe() {
	s.cancel = s.bloc.SubscribeStates(s.onState)
}

func (s *selectorState[S, E, T]) onState(next S) {
	value := s.widget().Selector(next)
	if value == s.selected {
		return
	}
	s.SetState(func() {
		s.selected = value
	})
}

func (s *selectorState[S, E, T]) rebind() {
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
		s.selected = s.widget().Selector(next.State())
	})
	s.subscribe()
}

func (s *selectorState[S, E, T]) detach() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *selectorState[S, E, T]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.rebind()
}

func (s *selectorState[S, E, T]) DidChangeDependencies() {
	s.rebind()
}

func (s *selectorState[S, E, T]) Dispose() {
	s.detach()
	s.StateBase.Dispose()
}

func (s *selectorState[S, E, T]) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Builder(ctx, s.selected)
}
