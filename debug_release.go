//go:build !hsmdebug

package hsm

// debugAssert is a no-op outside hsmdebug builds.
func debugAssert(cond bool, format string, args ...any) {}
