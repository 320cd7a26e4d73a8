// Command counter is a headless demo of the bloc binding widgets. It mounts
// a small tree around a counter bloc, pumps a few transitions through the
// build owner, and logs everything with the structured observer.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/go-drift/bloc/pkg/bloc"
	"github.com/go-drift/bloc/pkg/core"
)

type counterCubit struct {
	*bloc.Cubit[int, string]
}

func (c *counterCubit) Increment() {
	c.Emit(c.State() + 1)
	c.Fire("incremented")
}

type text struct {
	core.StatelessBase
	Value string
}

func (t text) Build(ctx core.BuildContext) core.Widget { return nil }

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	bloc.SetObserver(bloc.NewLogObserver(logger))

	counter := &counterCubit{Cubit: bloc.NewCubit[int, string](0)}
	defer counter.Close()

	owner := core.NewBuildOwner()
	root := core.MountRoot(bloc.Provider[int, string]{
		Bloc: counter,
		Child: bloc.Consumer[int, string]{
			OnEvent: func(ctx core.BuildContext, b bloc.Bloc[int, string], e string) {
				logger.Info().Str("event", e).Msg("dispatched")
			},
			Builder: func(ctx core.BuildContext, state int) core.Widget {
				return text{Value: fmt.Sprintf("count: %d", state)}
			},
		},
	}, owner)
	defer root.Unmount()

	for i := 0; i < 3; i++ {
		counter.Increment()
		owner.FlushBuild()
	}
}
