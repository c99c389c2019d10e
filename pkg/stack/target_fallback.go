//go:build !tinygo

package stack

// No target binding: the host runtime manages its own growable stacks and
// there is no fixed linker-defined region to scan. Unused degrades to 0.

const supported = false

func targetRegion() Region {
	return Region{}
}
