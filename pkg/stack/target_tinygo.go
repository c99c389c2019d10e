//go:build tinygo

package stack

import (
	_ "unsafe"
)

const supported = true

// The TinyGo runtime learns the memory layout from linker symbols and
// keeps it in package-level variables. On bare-metal targets the stack
// starts at stackTop and grows down toward the end of the heap, so
// [heapEnd, stackTop) is exactly the region the stack may ever occupy.

//go:linkname stackLow runtime.heapEnd
var stackLow uintptr

//go:linkname stackHigh runtime.stackTop
var stackHigh uintptr

func targetRegion() Region {
	return NewRegion(stackLow, stackHigh)
}
