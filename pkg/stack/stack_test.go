package stack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxgio92/stackmark/pkg/stack"
)

func TestUnused_HostBuild(t *testing.T) {
	// Host builds carry no target binding: Init is a no-op and Unused
	// reports the documented "no estimate available" zero.
	require.False(t, stack.Supported())

	stack.Init()
	require.Zero(t, stack.Unused())
	require.Zero(t, stack.Unused())
}
