package hsm

import "fmt"

// Signal identifies the kind of an Event. Values below SignalUser are
// reserved for the engine itself; application signals start at SignalUser
// and are defined by the embedding application.
type Signal uint

const (
	// SignalNone is the zero value of Signal; never dispatched.
	SignalNone Signal = iota
	// SignalSilent is the hierarchy-discovery probe: every non-root
	// handler must answer it with Superstate(parent).
	SignalSilent
	// SignalEntry is delivered when a state becomes active.
	SignalEntry
	// SignalExit is delivered when a state stops being active.
	SignalExit
	// SignalInitial is delivered to let a composite state drill into its
	// default child.
	SignalInitial
	// SignalUser is the first signal value available to applications.
	SignalUser
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "NONE"
	case SignalSilent:
		return "SILENT"
	case SignalEntry:
		return "ENTRY"
	case SignalExit:
		return "EXIT"
	case SignalInitial:
		return "INITIAL"
	default:
		return fmt.Sprintf("SIGNAL(%d)", uint(s))
	}
}

// reserved reports whether s is below SignalUser: SignalNone or one of
// the four engine-owned control signals.
func (s Signal) reserved() bool {
	return s <= SignalInitial
}
