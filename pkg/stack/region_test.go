package stack_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/maxgio92/stackmark/pkg/stack"
)

// heldBuffers pins every test buffer to the heap. A Region carries raw
// addresses the runtime cannot see; a stack-allocated buffer could move
// when the goroutine stack grows, leaving the bounds pointing into the
// stale copy.
var heldBuffers [][]byte

// regionOver builds a Region over a heap-backed buffer, standing in for
// the linker-provided bounds of a real target.
func regionOver(buf []byte) stack.Region {
	heldBuffers = append(heldBuffers, buf)
	low := uintptr(unsafe.Pointer(&buf[0]))

	return stack.NewRegion(low, low+uintptr(len(buf)))
}

func TestNewRegion_Inverted(t *testing.T) {
	r := stack.NewRegion(0x2000, 0x1000)
	require.Zero(t, r.Size())
	require.Zero(t, r.Probe())
}

func TestPaint_Fill(t *testing.T) {
	buf := make([]byte, 128)
	r := regionOver(buf)

	r.Paint()
	for i := range buf {
		require.Equal(t, stack.Pattern, buf[i], "byte %d not painted", i)
	}

	// Repainting a pristine region is idempotent.
	r.Paint()
	r.Paint()
	for i := range buf {
		require.Equal(t, stack.Pattern, buf[i], "byte %d lost after repaint", i)
	}
}

func TestProbe_FullMatch(t *testing.T) {
	buf := make([]byte, 256)
	r := regionOver(buf)

	r.Paint()
	require.Equal(t, uintptr(len(buf)), r.Probe())
}

func TestProbe_ImmediateMismatch(t *testing.T) {
	buf := make([]byte, 64)
	r := regionOver(buf)

	r.Paint()
	buf[0] = ^stack.Pattern
	require.Zero(t, r.Probe())
}

func TestProbe_StopsAtFirstMismatch(t *testing.T) {
	const size = 32
	for k := 0; k < size; k++ {
		buf := make([]byte, size)
		r := regionOver(buf)

		r.Paint()
		buf[k] = ^stack.Pattern
		require.Equal(t, uintptr(k), r.Probe(), "mismatch at byte %d", k)
	}
}

func TestProbe_MonotonicConsumption(t *testing.T) {
	const size = 96
	buf := make([]byte, size)
	r := regionOver(buf)

	r.Paint()

	// Consume the region one byte at a time from the high end, the way a
	// deepening call chain would, and watch the estimate walk down.
	prev := r.Probe()
	require.Equal(t, uintptr(size), prev)
	for used := 1; used <= size; used++ {
		buf[size-used] = 0x00
		got := r.Probe()
		require.LessOrEqual(t, got, prev, "estimate grew while consuming")
		require.Equal(t, uintptr(size-used), got)
		prev = got
	}
	require.Zero(t, prev)
}

func TestProbe_SentinelCollision(t *testing.T) {
	// 64-byte region, 10 bytes consumed from the high end: 54 bytes have
	// never been touched.
	buf := make([]byte, 64)
	r := regionOver(buf)

	r.Paint()
	for i := 54; i < 64; i++ {
		buf[i] = 0x00
	}
	require.Equal(t, uintptr(54), r.Probe())

	// A stray Pattern byte above the first mismatch cannot inflate the
	// count: the scan has already terminated.
	buf[57] = stack.Pattern
	require.Equal(t, uintptr(54), r.Probe())

	// A consumed byte that happens to hold the Pattern value is
	// indistinguishable from never-used. The estimate stays at 54 even
	// though only 53 bytes physically remain untouched.
	buf[53] = stack.Pattern
	require.Equal(t, uintptr(54), r.Probe())
}

// deepen forces the goroutine stack to grow, and likely move, between a
// Paint and a Probe. The region bounds must keep pointing at the painted
// bytes regardless.
//
//go:noinline
func deepen(n int) int {
	var pad [512]byte
	if n == 0 {
		return int(pad[0])
	}
	pad[n%len(pad)] = byte(n)

	return deepen(n-1) + int(pad[n%len(pad)])
}

func TestProbe_SurvivesStackGrowth(t *testing.T) {
	buf := make([]byte, 64)
	r := regionOver(buf)

	r.Paint()
	deepen(256)
	require.Equal(t, uintptr(64), r.Probe())
	require.Equal(t, stack.Pattern, buf[0])
}

func TestRegion_SingleByte(t *testing.T) {
	// Pins the boundary convention: a size-1 region paints exactly one
	// byte and probes to 1 while it survives.
	buf := make([]byte, 1)
	r := regionOver(buf)
	require.Equal(t, uintptr(1), r.Size())

	r.Paint()
	require.Equal(t, stack.Pattern, buf[0])
	require.Equal(t, uintptr(1), r.Probe())

	buf[0] = 0x00
	require.Zero(t, r.Probe())
}
