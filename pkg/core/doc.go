// Package core provides the widget and element framework interfaces and
// lifecycle that the bloc binding layer attaches to.
//
// This package defines the foundational types for a declarative UI tree:
// Widget, Element, State, and BuildContext. Widgets describe what the UI
// should look like; elements manage identity and lifecycle and schedule
// rebuilds through a BuildOwner. No rendering happens here; leaf widgets
// are opaque output slots filled in by a surrounding pipeline.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration objects that can be created frequently without
// performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage the lifecycle and identity of widgets.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) InitState() {
//	    // Initialize state here
//	}
//
// # Inherited Widgets
//
// InheritedWidget scopes a value to a subtree. Descendants resolve it with
// BuildContext.DependOnInherited, which also registers them for change
// notification: when the inherited widget is replaced and UpdateShouldNotify
// returns true, each dependent's State.DidChangeDependencies runs and the
// dependent rebuilds. This channel is how ambient lookups observe identity
// changes independently of ordinary state-driven rebuilds.
//
// # Reactive Values
//
// Observable provides thread-safe reactive values:
//
//	counter := core.NewObservable(0)
//	core.UseObservable(&s.StateBase, counter) // Subscribe to changes
//
// UseController, UseListenable, and UseObservable help manage resources
// and subscriptions with automatic cleanup on disposal.
package core
