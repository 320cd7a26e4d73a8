// Package testing provides a headless widget test harness.
//
// WidgetTester drives the same build phases as a real frame loop but with
// no rendering attached: mount a tree with PumpWidget, mutate state or
// emit on blocs, then Pump to flush rebuilds and inspect the tree with
// finders.
package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/bloc/pkg/core"
	blocerrors "github.com/go-drift/bloc/pkg/errors"
)

// ErrSettleTimeout is returned when Settle exceeds its frame budget.
var ErrSettleTimeout = errors.New("Settle exceeded frame budget: framework did not settle")

// settleFrameBudget bounds Settle against trees that dirty themselves on
// every build.
const settleFrameBudget = 1000

// WidgetTester provides isolated widget testing without real rendering.
// It owns a BuildOwner and a dispatch queue standing in for the engine's
// frame scheduler.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
}

// NewWidgetTester creates a tester with a fresh build owner.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using
// NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// PumpWidget mounts (or remounts) a widget and runs one frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner)
	t.Pump()
}

// Pump runs a single frame cycle: drains the dispatch queue, then flushes
// dirty elements. Dispatch callbacks run under the harness's top-level
// panic handler, mirroring the engine loop: a panicking callback is
// reported to the global error handler and the frame continues.
func (t *WidgetTester) Pump() {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		t.runDispatch(fn)
	}
	t.buildOwner.FlushBuild()
}

func (t *WidgetTester) runDispatch(fn func()) {
	defer blocerrors.Recover("testing.Pump")
	fn()
}

// Settle pumps frames until no work remains. Returns ErrSettleTimeout if
// the tree keeps scheduling work past the frame budget.
func (t *WidgetTester) Settle() error {
	for i := 0; i < settleFrameBudget; i++ {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame, mirroring the engine's
// cross-goroutine hand-off.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// BuildOwner returns the tester's build owner.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
