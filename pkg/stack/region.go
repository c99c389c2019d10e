package stack

import (
	"unsafe"
)

// Region is a contiguous raw byte range [low, high) reserved for the call
// stack. The bounds are plain addresses supplied by the build (linker
// symbols on a real target, a heap-backed buffer in the simulator); the
// region performs no validation against the current stack pointer.
//
// The stack grows downward: high is where the stack pointer starts, low is
// the deepest address it may legally reach, adjacent to static data.
type Region struct {
	low  uintptr
	high uintptr
}

// NewRegion builds a region over [low, high). An inverted range is clamped
// to an empty region.
func NewRegion(low, high uintptr) Region {
	if high < low {
		high = low
	}

	return Region{low: low, high: high}
}

// Size returns the total region size in bytes.
func (r Region) Size() uintptr {
	return r.high - r.low
}

// Paint overwrites every byte of the region with Pattern, walking from the
// high end toward the low end, the same direction the stack grows.
//
// It must run exactly once, before any code that could have written real
// data into the region: painting a live stack erases legitimate frames.
// That precondition is documented, not checked. Repainting a still-pristine
// region is harmless.
//
// Paint allocates nothing and calls nothing, so it is safe to run on the
// region that is about to become the caller's own stack. nosplit keeps the
// runtime from growing the stack under it; noinline keeps the stores as
// real memory traffic.
//
//go:nosplit
//go:noinline
func (r Region) Paint() {
	for p := r.high; p > r.low; {
		p--
		*(*byte)(unsafe.Pointer(p)) = Pattern
	}
}

// Probe returns the number of bytes at the low end of the region that
// still hold Pattern, scanning from low toward high and stopping at the
// first mismatch. A full-match scan returns Size; a mismatch on the very
// first byte returns 0.
//
// The result is an estimate of how many stack bytes have never been
// written since Paint ran. It can over-report if program code happened to
// write the Pattern value to an unused location, which in practice is rare
// and bounded to a couple of bytes. Probe never writes, so it is safe to
// call from anywhere at any time, including interrupt context.
//
//go:nosplit
//go:noinline
func (r Region) Probe() uintptr {
	var n uintptr
	for p := r.low; p < r.high; p++ {
		if *(*byte)(unsafe.Pointer(p)) != Pattern {
			break
		}
		n++
	}

	return n
}
