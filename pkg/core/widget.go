package core

import "reflect"

// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration objects that can be created frequently without
// performance concerns.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget across rebuilds. Widgets of the same type
	// with equal keys update in place; otherwise the old element is
	// unmounted and a fresh one inflated.
	Key() any
}

// StatelessWidget describes UI purely as a function of its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state hosted in a State object whose lifetime
// spans widget updates.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// InheritedWidget exposes a value to all descendant widgets. Descendants
// register via BuildContext.DependOnInherited and are notified when the
// widget is replaced and UpdateShouldNotify returns true.
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree the inherited value is scoped to.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be notified after
	// this widget replaced oldWidget at the same tree position.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// State holds mutable state for a StatefulWidget and receives lifecycle
// callbacks from its element.
type State interface {
	// InitState is called exactly once, after the element is mounted into
	// the tree and before the first build.
	InitState()
	// Build describes the subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the element's widget is replaced by a
	// new widget of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)
	// DidChangeDependencies is called when an inherited widget this state
	// depends on notifies a change.
	DidChangeDependencies()
	// Dispose releases resources. Called when the element is unmounted;
	// the state is never remounted afterwards.
	Dispose()
}

// BuildContext is the element-tree handle passed to build methods and
// callbacks. It supports ancestor lookups and inherited-widget dependencies.
type BuildContext interface {
	// DependOnInherited walks up the tree to the nearest InheritedWidget of
	// the given type, registers the caller as a dependent, and returns the
	// widget. Returns nil if no such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor returns the nearest ancestor element matching the
	// predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage lifecycle and identity.
type Element interface {
	BuildContext
	Widget() Widget
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
}

// Disposable is anything with resources to release.
type Disposable interface {
	Dispose()
}
