package bloc

import (
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// MultiListener merges multiple listeners into one widget, equivalent to
// nesting each around the shared child with Listeners[0] outermost:
//
//	bloc.MultiListener{
//	    Listeners: []bloc.Nestable{
//	        bloc.Listener[int, AEvent]{Bloc: a, OnEvent: onA},
//	        bloc.Listener[int, BEvent]{Bloc: b, OnEvent: onB},
//	    },
//	    Child: body,
//	}
//
// Each listener keeps its own source, subscription, filter, and dispatch
// callback; nothing is shared between them, so events from one source reach
// only that source's listener. Cross-listener delivery order is not defined
// (the sources are causally independent); per-source order follows the
// Listener contract.
type MultiListener struct {
	core.StatelessBase
	// Listeners are the listeners to nest, outermost first. Their Child
	// fields are ignored; the shared Child is injected.
	Listeners []Nestable
	// Child is the single subtree rendered beneath all listeners. Required.
	Child core.Widget
}

// Build folds the listeners around the shared child.
func (m MultiListener) Build(ctx core.BuildContext) core.Widget {
	if m.Child == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.MultiListener",
			Missing: "Child",
		})
	}
	tree := m.Child
	for i := len(m.Listeners) - 1; i >= 0; i-- {
		tree = m.Listeners[i].WithChild(tree)
	}
	return tree
}
