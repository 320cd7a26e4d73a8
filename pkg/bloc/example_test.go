package bloc_test

import (
	"fmt"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
	bloctest "github.com/go-drift/bloc/pkg/testing"
)

func ExampleCubit() {
	counter := bloc.NewCubit[int, string](0)
	cancel := counter.SubscribeStates(func(s int) {
		fmt.Println("state:", s)
	})
	defer cancel()

	counter.Emit(1)
	counter.Emit(2)

	// Output:
	// state: 1
	// state: 2
}

func ExampleListener() {
	tester := bloctest.NewWidgetTester()
	defer tester.Cleanup()

	counter := bloc.NewCubit[int, string](0)
	tester.PumpWidget(bloc.Listener[int, string]{
		Bloc: counter,
		OnEvent: func(ctx core.BuildContext, b bloc.Bloc[int, string], e string) {
			fmt.Println("event:", e)
		},
		Child: label{Text: "body"},
	})

	counter.Fire("saved")

	// Output:
	// event: saved
}

func ExampleBuilder() {
	tester := bloctest.NewWidgetTester()
	defer tester.Cleanup()

	counter := bloc.NewCubit[int, string](0)
	tester.PumpWidget(bloc.Provider[int, string]{
		Bloc: counter,
		Child: bloc.Builder[int, string]{
			Builder: func(ctx core.BuildContext, state int) core.Widget {
				fmt.Println("build:", state)
				return nil
			},
		},
	})

	counter.Emit(1)
	tester.Pump()

	// Output:
	// build: 0
	// build: 1
}
