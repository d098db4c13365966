package hsm

import (
	"log/slog"
	"sync"
)

// traceState is the process-wide, advisory debug trace configuration,
// the Go equivalent of the original firmware's global signal_filter /
// print_signal pair. It is purely diagnostic: the engine's behavior never
// depends on its value.
var traceState struct {
	mu      sync.RWMutex
	enabled bool
	filter  map[Signal]bool
}

// EnableTrace turns process-wide dispatch tracing on or off. Disabled by
// default.
func EnableTrace(enabled bool) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.enabled = enabled
}

// SetTraceFilter replaces the set of signals suppressed from the trace
// log. By default SignalSilent is filtered, since it fires on every
// bubble step and dominates the log otherwise.
func SetTraceFilter(signals ...Signal) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.filter = make(map[Signal]bool, len(signals))
	for _, s := range signals {
		traceState.filter[s] = true
	}
}

func init() {
	SetTraceFilter(SignalSilent)
}

// traceDispatch logs a single handler invocation at debug level when
// tracing is enabled and the event's signal is not filtered.
func traceDispatch(handlerName string, e *Event, result HandlerResult) {
	traceState.mu.RLock()
	enabled := traceState.enabled
	filtered := traceState.filter[e.Signal]
	traceState.mu.RUnlock()
	if !enabled || filtered {
		return
	}
	slog.Default().Debug("hsm dispatch",
		"handler", handlerName,
		"signal", e.Signal.String(),
		"result", result.String(),
	)
}
