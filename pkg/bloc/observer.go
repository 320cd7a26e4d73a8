package bloc

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Observer receives lifecycle notifications for every bloc in the process.
// Register one with SetObserver to instrument state transitions and events
// globally (logging, analytics, devtools).
//
// Arguments are typed any because a single observer spans blocs of many
// generic instantiations.
type Observer interface {
	// OnCreate is called when a bloc is created.
	OnCreate(b any)
	// OnChange is called for every state transition with a Change[S] value.
	OnChange(b any, change any)
	// OnEvent is called for every fired event.
	OnEvent(b any, event any)
	// OnClose is called when a bloc is closed.
	OnClose(b any)
}

var (
	observerMu     sync.RWMutex
	globalObserver Observer
)

// SetObserver installs the global Observer. Pass nil to remove it.
func SetObserver(o Observer) {
	observerMu.Lock()
	defer observerMu.Unlock()
	globalObserver = o
}

func currentObserver() Observer {
	observerMu.RLock()
	defer observerMu.RUnlock()
	return globalObserver
}

func observerOnCreate(b any) {
	if o := currentObserver(); o != nil {
		o.OnCreate(b)
	}
}

func observerOnChange(b any, change any) {
	if o := currentObserver(); o != nil {
		o.OnChange(b, change)
	}
}

func observerOnEvent(b any, event any) {
	if o := currentObserver(); o != nil {
		o.OnEvent(b, event)
	}
}

func observerOnClose(b any) {
	if o := currentObserver(); o != nil {
		o.OnClose(b)
	}
}

// LogObserver is an Observer that writes structured transition and event
// logs with zerolog.
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates a LogObserver scoped with a "component" field.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{
		logger: logger.With().Str("component", "bloc").Logger(),
	}
}

// OnCreate logs bloc creation.
func (o *LogObserver) OnCreate(b any) {
	o.logger.Debug().
		Str("bloc", fmt.Sprintf("%T", b)).
		Msg("bloc created")
}

// OnChange logs a state transition.
func (o *LogObserver) OnChange(b any, change any) {
	o.logger.Debug().
		Str("bloc", fmt.Sprintf("%T", b)).
		Str("change", fmt.Sprintf("%+v", change)).
		Msg("state changed")
}

// OnEvent logs a fired event.
func (o *LogObserver) OnEvent(b any, event any) {
	o.logger.Debug().
		Str("bloc", fmt.Sprintf("%T", b)).
		Str("event", fmt.Sprintf("%+v", event)).
		Msg("event fired")
}

// OnClose logs bloc closure.
func (o *LogObserver) OnClose(b any) {
	o.logger.Debug().
		Str("bloc", fmt.Sprintf("%T", b)).
		Msg("bloc closed")
}
