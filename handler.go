package hsm

import (
	"reflect"
	"runtime"
)

// Handler is an application state function: a pure function of the owning
// StateInstance and the event being dispatched, returning one of the four
// HandlerResult values. Handlers are value-equal when their function
// identity is equal (see sameHandler); there is no separate state id,
// the handler function itself is the state's identity.
//
// Each state needs a function of its own: a top-level named function, the
// way the original firmware has one C function per state, or a function
// literal written for that state alone. Closures produced from one literal
// (e.g. a loop building N handlers from one literal, or a factory called
// twice) share that literal's code pointer, which makes them compare equal
// under sameHandler.
type Handler func(si *StateInstance, e *Event) HandlerResult

// sameHandler reports whether a and b are the same handler function.
// Go func values only compare with == against nil, so identity is
// established via the function's entry-point pointer instead.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// handlerName returns a human-readable name for h, for use in trace
// output; it is never used for identity comparison.
func handlerName(h Handler) string {
	if h == nil {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer()); fn != nil {
		return fn.Name()
	}
	return "<unknown>"
}

// ChangeState records target as the next active handler and returns
// Changed. Equivalent to the original firmware's CHANGE_STATE macro.
func ChangeState(si *StateInstance, target Handler) HandlerResult {
	si.SetHandler(target)
	return Changed
}

// Superstate records parent as the delegate handler and returns
// DoSuperstate. Equivalent to the original firmware's HANDLE_SUPER_STATE
// macro.
func Superstate(si *StateInstance, parent Handler) HandlerResult {
	si.SetHandler(parent)
	return DoSuperstate
}

// RootHandler is the predefined top of every state hierarchy. It ignores
// every event, including SignalSilent, the contract's way of saying
// "there is no parent beyond here" (spec.md §4.3: SILENT at the root
// returns Ignored, not Superstate).
func RootHandler(si *StateInstance, e *Event) HandlerResult {
	return Ignored
}
