package bloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
	bloctest "github.com/go-drift/bloc/pkg/testing"
)

func isEven(v int) bool { return v%2 == 0 }

func TestSelector_RebuildsOnlyWhenProjectionChanges(t *testing.T) {
	tester := bloctest.NewWidgetTesterWithT(t)
	c := newCounterCubit(0)
	var builds []bool

	tester.PumpWidget(bloc.Selector[int, counterEvent, bool]{
		Bloc:     c,
		Selector: isEven,
		Builder: func(ctx core.BuildContext, even bool) core.Widget {
			builds = append(builds, even)
			return label{}
		},
	})

	c.Emit(2)
	tester.Pump()
	c.Emit(4)
	tester.Pump()
	c.Emit(5)
	tester.Pump()

	// 0 -> 2 -> 4 all project to true; only the flip to odd rebuilds.
	assert.Equal(t, []bool{true, false}, builds)
}

func TestSelector_Rebind_Reprojects(t *testing.T) {
	tester := bloctest.NewWidgetTesterWithT(t)
	a := newFakeBloc(1)
	b := newFakeBloc(4)
	var builds []bool
	makeWidget := func(src bloc.Bloc[int, string]) core.Widget {
		return bloc.Selector[int, string, bool]{
			Bloc:     src,
			Selector: isEven,
			Builder: func(ctx core.BuildContext, even bool) core.Widget {
				builds = append(builds, even)
				return label{}
			},
		}
	}

	ctrl := newHostController(makeWidget(a))
	tester.PumpWidget(host{Ctrl: ctrl})
	require.Equal(t, []bool{false}, builds)

	ctrl.Swap(makeWidget(b))
	tester.Pump()

	assert.Equal(t, []bool{false, true}, builds)
	assert.Equal(t, 1, a.stateCancels)
	assert.Equal(t, 1, b.stateSubscribes)
}

func TestSelector_MissingSelector_Panics(t *testing.T) {
	tester := bloctest.NewWidgetTesterWithT(t)
	c := newCounterCubit(0)

	require.PanicsWithError(t, "bloc.Selector is missing Selector", func() {
		tester.PumpWidget(bloc.Selector[int, counterEvent, bool]{
			Bloc:    c,
			Builder: func(ctx core.BuildContext, even bool) core.Widget { return label{} },
		})
	})
}

func TestSelector_MissingBuilder_Panics(t *testing.T) {
	tester := bloctest.NewWidgetTesterWithT(t)
	c := newCounterCubit(0)

	require.PanicsWithError(t, "bloc.Selector is missing Builder", func() {
		tester.PumpWidget(bloc.Selector[int, counterEvent, bool]{
			Bloc:     c,
			Selector: isEven,
		})
	})
}
