package sim

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxgio92/stackmark/internal/settings"
	"github.com/maxgio92/stackmark/pkg/simulate"
)

const (
	CmdName = "sim"

	reportFile = settings.CmdName + "-report.json"
)

func NewCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:               CmdName,
		Short:             "Run a simulated stack session over a synthetic region",
		Long:              `Paint a synthetic stack region with the sentinel byte, consume it step by step like a deepening call chain, and report the estimated never-used stack after each step.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE:              o.Run,
	}

	cmd.Flags().IntVar(&o.regionSize, "region-size", simulate.DefaultRegionSize, "Synthetic stack region size in bytes")
	cmd.Flags().IntVar(&o.steps, "steps", simulate.DefaultSteps, "Number of workload steps")
	cmd.Flags().IntVar(&o.maxFrame, "max-frame", simulate.DefaultMaxFrame, "Maximum bytes consumed by a single step")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "Workload PRNG seed")
	cmd.Flags().BoolVar(&o.report, "report", false, fmt.Sprintf("Write the session report as JSON (%s)", reportFile))
	cmd.Flags().BoolVar(&o.table, "table", true, "Render the session report as a table")

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

	report, err := session.Run(o.Ctx)
	if err != nil {
		return errors.Wrap(err, "failed to run session")
	}

	if o.table {
		if err := report.RenderTable(os.Stdout); err != nil {
			return errors.Wrap(err, "failed to render report table")
		}
	}
	if o.report {
		f, err := os.Create(reportFile)
		if err != nil {
			return errors.Wrap(err, "failed to create report file")
		}
		defer f.Close()
		if err := report.WriteReport(f); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
		o.Logger.Info().Str("path", reportFile).Msg("report written")
	}

	o.Logger.Info().
		Int("region_size", report.RegionSize).
		Int("max_used", report.MaxUsed).
		Int("estimated_unused", report.FinalEstimate).
		Float64("headroom_pct", report.HeadroomPct).
		Msg("session complete")

	return nil
}
