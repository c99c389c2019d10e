package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	log "github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testOptions() *Options {
	return NewOptions(
		WithContext(context.Background()),
		WithLogger(log.New(log.ConsoleWriter{Out: os.Stderr})),
	)
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(testOptions())
	require.NotNil(t, cmd)
	require.Equal(t, "stackmark", cmd.Name())
	require.Contains(t, cmd.Short, "stack high-water mark")
	require.True(t, cmd.HasSubCommands())
	require.True(t, cmd.DisableAutoGenTag)
}

func TestCommandSubcommands(t *testing.T) {
	cmd := NewCommand(testOptions())

	subcommands := make([]string, 0)
	for _, subCmd := range cmd.Commands() {
		subcommands = append(subcommands, subCmd.Name())
	}

	require.Contains(t, subcommands, "sim")
	require.Contains(t, subcommands, "watch")
}

func TestCommandFlags(t *testing.T) {
	cmd := NewCommand(testOptions())

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	require.Equal(t, "string", flag.Value.Type())
	require.Equal(t, "info", flag.DefValue)
	require.Contains(t, flag.Usage, "log level")
}

func TestCommandHelp(t *testing.T) {
	cmd := NewCommand(testOptions())

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	helpOutput := output.String()
	require.Contains(t, helpOutput, "stackmark")
	require.Contains(t, helpOutput, "Available Commands:")
	require.Contains(t, helpOutput, "sim")
	require.Contains(t, helpOutput, "watch")
}

func TestCommandInvalidFlag(t *testing.T) {
	cmd := NewCommand(testOptions())

	var output bytes.Buffer
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--invalid-flag"})

	require.Error(t, cmd.Execute())
	require.Contains(t, output.String(), "unknown flag")
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions()
	require.NotNil(t, opts)
	require.NotNil(t, opts.CommonOptions)

	ctx := context.Background()
	opts = NewOptions(WithContext(ctx))
	require.Equal(t, ctx, opts.Ctx)
}
