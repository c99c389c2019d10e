package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxgio92/stackmark/internal/output"
	"github.com/maxgio92/stackmark/pkg/simulate"
	"github.com/maxgio92/stackmark/pkg/stack"
)

const CmdName = "watch"

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:               CmdName,
		Short:             "Watch the stack estimate live while a simulated workload runs",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE:              o.Run,
	}

	cmd.Flags().IntVar(&o.regionSize, "region-size", simulate.DefaultRegionSize, "Synthetic stack region size in bytes")
	cmd.Flags().IntVar(&o.steps, "steps", simulate.DefaultSteps, "Number of workload steps")
	cmd.Flags().IntVar(&o.maxFrame, "max-frame", simulate.DefaultMaxFrame, "Maximum bytes consumed by a single step")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "Workload PRNG seed")
	cmd.Flags().DurationVar(&o.refreshRate, "refresh-rate", 200*time.Millisecond, "Status line refresh rate")

	return cmd
}

func (o *Options) Run(cmd *cobra.Command, _ []string) error {
	var err error
	o.LogLevel, err = cmd.Flags().GetString("log-level")
	if err != nil {
		return errors.Wrap(err, "failed to get log level")
	}

	logLevel, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		o.Logger.Fatal().Err(err).Msg("invalid log level")
	}
	o.Logger = o.Logger.Level(logLevel).With().Str("component", CmdName).Logger()

	session := simulate.NewSession(
		simulate.WithRegionSize(o.regionSize),
		simulate.WithSteps(o.steps),
		simulate.WithMaxFrame(o.maxFrame),
		simulate.WithSeed(o.seed),
		simulate.WithLogger(&o.Logger),
	)
	if err := session.Init(); err != nil {
		return errors.Wrap(err, "failed to init session")
	}

	ctx, cancel := context.WithCancel(o.Ctx)
	defer cancel()

	// One workload step per tick, redrawn in place.
	var last simulate.Sample
	steps := 0
	output.StatusBar(ctx, o.refreshRate, func() {
		if steps >= o.steps {
			cancel()
			return
		}
		last = session.Step()
		steps++
		output.PrintRight(output.PrettyWatchStatus(o.regionSize, last.Used, last.Estimate))
	})
	fmt.Println()

	if err := o.Ctx.Err(); err != nil {
		return errors.Wrap(err, "watch interrupted")
	}

	o.Logger.Info().
		Int("region_size", o.regionSize).
		Int("max_used", last.Used).
		Int("estimated_unused", last.Estimate).
		Msg("watch complete")

	// On a build with a live target binding the process's own reserved
	// stack region can be probed too.
	if stack.Supported() {
		o.Logger.Info().
			Uint64("live_estimated_unused", uint64(stack.Unused())).
			Msg("live stack estimate")
	}

	return nil
}
