package bloc

import (
	"fmt"
	"reflect"

	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// Provider exposes a bloc to all descendant widgets via ambient lookup.
// Descendants resolve it with Of or MaybeOf; binding widgets with no
// explicit Bloc field resolve through the nearest Provider of matching
// type automatically.
//
// Dependents are notified only when the bloc *identity* changes, that is,
// when the Provider's Bloc is swapped for a different instance. State
// transitions flow
// through the bloc's own subscription streams and never through the
// provider, so ambient identity tracking stays decoupled from state-driven
// rebuilds.
//
// Provider never constructs or closes the bloc it carries; ownership stays
// with the application.
type Provider[S, E any] struct {
	// Bloc is the instance scoped to this subtree. Required.
	Bloc Bloc[S, E]
	// Child is the subtree that can resolve the bloc.
	Child core.Widget
}

// CreateElement returns an InheritedElement hosting this provider.
func (p Provider[S, E]) CreateElement() core.Element {
	return core.NewInheritedElement()
}

// Key returns nil (no key).
func (p Provider[S, E]) Key() any {
	return nil
}

// ChildWidget returns the scoped subtree.
func (p Provider[S, E]) ChildWidget() core.Widget {
	return p.Child
}

// UpdateShouldNotify reports whether the bloc instance was swapped.
// Identity comparison only; two different blocs in equal states are still
// different sources.
func (p Provider[S, E]) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(Provider[S, E])
	if !ok {
		return true
	}
	return old.Bloc != p.Bloc
}

// WithChild returns a copy of the provider wrapping the given child.
func (p Provider[S, E]) WithChild(child core.Widget) core.Widget {
	p.Child = child
	return p
}

// Of resolves the nearest Provider[S, E] ancestor, registers the calling
// element for identity-change notification, and returns its bloc. It panics
// with a ConfigError when no provider of the requested type is in scope:
// an unresolvable source is a fatal configuration error, not a recoverable
// condition.
func Of[S, E any](ctx core.BuildContext) Bloc[S, E] {
	if b := MaybeOf[S, E](ctx); b != nil {
		return b
	}
	panic(&errors.ConfigError{
		Widget:  fmt.Sprintf("%T", Provider[S, E]{}),
		Missing: "an ancestor provider",
		Hint:    "wrap the subtree in a bloc.Provider carrying this bloc type, or pass the bloc explicitly",
	})
}

// MaybeOf is like Of but returns nil when no provider of the requested type
// is in scope or the provider carries a nil bloc.
func MaybeOf[S, E any](ctx core.BuildContext) Bloc[S, E] {
	inherited := ctx.DependOnInherited(reflect.TypeOf(Provider[S, E]{}))
	if inherited == nil {
		return nil
	}
	p, ok := inherited.(Provider[S, E])
	if !ok {
		return nil
	}
	return p.Bloc
}

// MultiProvider merges multiple providers into one widget, equivalent to
// nesting each around the child with Providers[0] outermost.
type MultiProvider struct {
	core.StatelessBase
	// Providers are the providers to nest, outermost first.
	Providers []Nestable
	// Child is the subtree scoped to all of them.
	Child core.Widget
}

// Build folds the providers around the child.
func (m MultiProvider) Build(ctx core.BuildContext) core.Widget {
	if m.Child == nil {
		panic(&errors.ConfigError{
			Widget:  "bloc.MultiProvider",
			Missing: "Child",
		})
	}
	tree := m.Child
	for i := len(m.Providers) - 1; i >= 0; i-- {
		tree = m.Providers[i].WithChild(tree)
	}
	return tree
}
