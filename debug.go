//go:build hsmdebug

package hsm

import "fmt"

// debugAssert panics with a formatted message when cond is false. It is
// compiled only under the hsmdebug build tag; release builds use the
// no-op in debug_release.go instead. This mirrors the original firmware's
// assert-in-debug-builds convention for handler contract violations (a
// CHANGED or DO_SUPERSTATE result that leaves no handler installed, a
// DO_SUPERSTATE from the predefined root).
func debugAssert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
