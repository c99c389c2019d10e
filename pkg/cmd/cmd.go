package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxgio92/stackmark/internal/settings"
	"github.com/maxgio92/stackmark/pkg/cmd/sim"
	"github.com/maxgio92/stackmark/pkg/cmd/watch"
)

const logLevelInfo = "info"

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:               settings.CmdName,
		Short:             settings.CmdName + " is a stack high-water mark estimator",
		Long:              settings.CmdName + ` estimates how much of a reserved stack region has never been used, by painting the region with a sentinel byte at startup and counting the surviving run. On the host it drives the paint/probe engine over a synthetic stack region.`,
		DisableAutoGenTag: true,
	}
	cmd.AddCommand(sim.NewCommand(sim.NewOptions(
		sim.WithContext(o.Ctx),
		sim.WithLogger(o.Logger),
	)))
	cmd.AddCommand(watch.NewCommand(watch.NewOptions(
		watch.WithContext(o.Ctx),
		watch.WithLogger(o.Logger),
	)))
	cmd.PersistentFlags().String("log-level", logLevelInfo, "Set the log level (trace, debug, info, warn, error, fatal, panic)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	logger := log.New(
		log.ConsoleWriter{Out: os.Stderr},
	).With().Timestamp().Logger()

	go func() {
		<-ctx.Done()
		cancel()
	}()

	opts := NewOptions(
		WithContext(ctx),
		WithLogger(logger),
	)

	if err := NewCommand(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
