// Package bloc binds reactive state containers to the widget tree.
//
// A bloc (see [Bloc]) holds a current state value and broadcasts two
// independent sequences: state transitions and discrete one-shot events.
// This package provides the widgets that attach to those sequences and
// manage the subscription lifecycle across the tree's own lifecycle:
//
//   - [Listener] dispatches events to a callback, optionally filtered.
//   - [Builder] rebuilds a subtree from state, optionally filtered.
//   - [Consumer] does both against one shared source and rebind.
//   - [Selector] rebuilds only when a projection of the state changes.
//   - [MultiListener] and [MultiProvider] flatten nesting.
//   - [Provider] scopes a bloc to a subtree for ambient resolution.
//
// Every binding widget resolves its source the same way: an explicit Bloc
// field wins, otherwise the nearest [Provider] of the matching type. While
// mounted, a binding owns exactly one subscription per stream it consumes.
// When the effective source identity changes, the binding cancels the old
// subscription before establishing the new one; rebinding to the identical
// instance does nothing. Events and states fired on a detached source never
// reach the binding, and none are delivered twice across a rebind.
//
// [Cubit] is the reference producer. [Observer] and [SetObserver] hook
// global instrumentation into every bloc's lifecycle.
//
// The package assumes the cooperative single-threaded scheduling model of
// the surrounding framework: emissions, builds, and dispatch callbacks all
// run on the UI goroutine.
package bloc
