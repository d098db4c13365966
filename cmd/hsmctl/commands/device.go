package commands

import (
	"log/slog"

	hsm "github.com/devicesmith/jcpm-hsm"
)

// Device signals, starting at SignalUser per the reserved-range contract.
const (
	SigOpen hsm.Signal = hsm.SignalUser + iota
	SigClose
	SigBake
	SigOff
)

// device is the demo's extended state: how many times the door has been
// opened, and where to log entry/exit actions. It re-expresses the
// teacher's oven_test.go scenario in the handler-function idiom: states
// are ordinary functions rather than builder-attached closures, and
// entry/exit side effects log through slog instead of fmt.Println.
type device struct {
	log    *slog.Logger
	opened int
}

// handlers builds the demo hierarchy:
//
//	root
//	 `- doorClosed     (initial: off)
//	     `- baking
//	     `- off
//	 `- doorOpen
//
// Call this exactly once per device. The four returned handlers are
// closures over d, and Handler identity depends on each one being a single,
// stable function value; a factory invoked twice for the same device would
// produce two code-identical-but-distinct closures the engine could
// legitimately confuse (see Handler's doc comment). One device, one call.
func (d *device) handlers() (doorClosed, baking, off, doorOpen hsm.Handler) {
	doorClosed = func(si *hsm.StateInstance, e *hsm.Event) hsm.HandlerResult {
		switch e.Signal {
		case hsm.SignalInitial:
			return hsm.ChangeState(si, off)
		case SigOpen:
			if d.opened >= 100 {
				d.log.Warn("door mechanism worn out, refusing to open")
				return hsm.Handled
			}
			return hsm.ChangeState(si, doorOpen)
		default:
			return hsm.Superstate(si, hsm.RootHandler)
		}
	}

	baking = func(si *hsm.StateInstance, e *hsm.Event) hsm.HandlerResult {
		switch e.Signal {
		case hsm.SignalEntry:
			d.log.Info("heating on")
			return hsm.Handled
		case hsm.SignalExit:
			d.log.Info("heating off")
			return hsm.Handled
		case SigOff:
			return hsm.ChangeState(si, off)
		default:
			return hsm.Superstate(si, doorClosed)
		}
	}

	off = func(si *hsm.StateInstance, e *hsm.Event) hsm.HandlerResult {
		switch e.Signal {
		case SigBake:
			return hsm.ChangeState(si, baking)
		default:
			return hsm.Superstate(si, doorClosed)
		}
	}

	doorOpen = func(si *hsm.StateInstance, e *hsm.Event) hsm.HandlerResult {
		switch e.Signal {
		case hsm.SignalEntry:
			d.opened++
			d.log.Info("light on", "times_opened", d.opened)
			return hsm.Handled
		case hsm.SignalExit:
			d.log.Info("light off")
			return hsm.Handled
		case SigClose:
			// The teacher's oven demo restores whichever of baking/off was
			// active before the door opened, via shallow history. History
			// isn't part of this engine's data model (spec.md has no
			// per-state "last active child" slot), so the demo always
			// returns to the composite's own default child instead.
			return hsm.ChangeState(si, doorClosed)
		default:
			return hsm.Superstate(si, hsm.RootHandler)
		}
	}

	return doorClosed, baking, off, doorOpen
}
