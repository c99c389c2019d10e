// Package stack estimates how much of the reserved call-stack region has
// never been used.
//
// At startup, Init fills the whole unused stack region with a sentinel
// byte (Pattern). At any later point, Unused walks the region from its
// deep end and counts how many bytes still hold the sentinel: bytes the
// program has never touched. The count is a cheap, always-available
// estimate for sizing stack reservations without a debugger or extra RAM.
//
// The region bounds come from the target's linker configuration; on builds
// without a supported target binding, Unused reports 0 and Supported
// reports false. The mechanism does not detect or prevent stack overflow.
package stack

// Init paints the target's stack region with Pattern.
//
// The surrounding build must arrange for Init to run exactly once, as
// early as possible in the startup sequence: before main and before any
// code that allocates stack frames. Calling it later destroys live stack
// data. On an unsupported target Init is a no-op.
func Init() {
	if !supported {
		return
	}
	targetRegion().Paint()
}

// Unused returns the estimated number of stack bytes never written since
// Init ran. It is side-effect free and callable any number of times. On an
// unsupported target it always returns 0, indistinguishable from a stack
// at maximum extent; callers know from the build whether the estimate is
// live.
func Unused() uintptr {
	if !supported {
		return 0
	}

	return targetRegion().Probe()
}

// Supported reports whether this build carries a target binding for the
// stack region. It is a compile-time fact, surfaced for callers that want
// to tell the degenerate zero estimate apart from a real one.
func Supported() bool {
	return supported
}
