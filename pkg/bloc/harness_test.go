package bloc_test

import (
	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
	"github.com/go-drift/bloc/pkg/errors"
)

// label is an inert leaf widget standing in for a render target.
type label struct {
	core.StatelessBase
	Text string
}

func (l label) Build(ctx core.BuildContext) core.Widget { return nil }

// host mounts a swappable subtree so tests can drive widget updates through
// the ordinary element-update path instead of remounting the tree.
type host struct {
	core.StatefulBase
	Ctrl *hostController
}

type hostController struct {
	initial core.Widget
	swap    func(core.Widget)
}

func newHostController(child core.Widget) *hostController {
	return &hostController{initial: child}
}

// Swap replaces the hosted subtree on the next pump.
func (c *hostController) Swap(child core.Widget) {
	c.swap(child)
}

func (h host) CreateState() core.State { return &hostState{} }

type hostState struct {
	core.StateBase
	child core.Widget
}

func (s *hostState) InitState() {
	ctrl := s.Element().Widget().(host).Ctrl
	s.child = ctrl.initial
	ctrl.swap = func(w core.Widget) {
		s.SetState(func() { s.child = w })
	}
}

func (s *hostState) Build(ctx core.BuildContext) core.Widget { return s.child }

// counterEvent is the discrete event type used across the tests.
type counterEvent string

const (
	incremented counterEvent = "Incremented"
	decremented counterEvent = "Decremented"
)

// counterCubit is a typical application bloc built on the embeddable Cubit.
type counterCubit struct {
	*bloc.Cubit[int, counterEvent]
}

func newCounterCubit(initial int) *counterCubit {
	return &counterCubit{Cubit: bloc.NewCubit[int, counterEvent](initial)}
}

func (c *counterCubit) Increment() {
	c.Emit(c.State() + 1)
	c.Fire(incremented)
}

func (c *counterCubit) Decrement() {
	c.Emit(c.State() - 1)
	c.Fire(decremented)
}

// fakeBloc counts subscription churn so rebind behaviour can be asserted
// directly.
type fakeBloc struct {
	states *core.Observable[int]
	events *core.Observable[string]

	eventSubscribes int
	eventCancels    int
	stateSubscribes int
	stateCancels    int
}

func newFakeBloc(initial int) *fakeBloc {
	return &fakeBloc{
		states: core.NewObservable(initial),
		events: core.NewObservable(""),
	}
}

func (f *fakeBloc) State() int { return f.states.Value() }

func (f *fakeBloc) SubscribeStates(fn func(int)) (cancel func()) {
	f.stateSubscribes++
	inner := f.states.AddListener(fn)
	return func() {
		f.stateCancels++
		inner()
	}
}

func (f *fakeBloc) SubscribeEvents(fn func(string)) (cancel func()) {
	f.eventSubscribes++
	inner := f.events.AddListener(fn)
	return func() {
		f.eventCancels++
		inner()
	}
}

func (f *fakeBloc) Emit(state int) { f.states.Set(state) }
func (f *fakeBloc) Fire(ev string) { f.events.Set(ev) }

// captureHandler records globally reported errors.
type captureHandler struct {
	errs        []*errors.BlocError
	panics      []*errors.PanicError
	buildErrors []*errors.BuildError
}

func (h *captureHandler) HandleError(err *errors.BlocError)       { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError)      { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleBuildError(err *errors.BuildError) { h.buildErrors = append(h.buildErrors, err) }
