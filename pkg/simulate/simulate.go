// Package simulate drives the stack paint/probe engine over a synthetic,
// heap-backed stack region, standing in for a target device. A Session
// paints the region, then consumes it step by step the way a deepening
// call chain would, probing the surviving sentinel run after each step.
package simulate

import (
	"context"
	"math/rand"
	"os"
	"runtime"
	"unsafe"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/stackmark/pkg/stack"
)

const (
	DefaultRegionSize = 4096
	DefaultSteps      = 32
	DefaultMaxFrame   = 128
)

// Sample is the observable state of the session after one workload step.
type Sample struct {
	Step     int `json:"step"`
	Used     int `json:"used_bytes"`
	Estimate int `json:"estimated_unused_bytes"`
}

type Session struct {
	buf     []byte
	region  stack.Region
	rnd     *rand.Rand
	used    int
	samples []Sample
	*SessionOptions
}

func NewSession(opts ...SessionOption) *Session {
	session := &Session{
		SessionOptions: &SessionOptions{
			regionSize: DefaultRegionSize,
			steps:      DefaultSteps,
			maxFrame:   DefaultMaxFrame,
		},
	}
	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Init validates the options, allocates the backing region and paints it.
func (s *Session) Init() error {
	if err := s.validate(); err != nil {
		return err
	}
	if s.logger == nil {
		logger := log.New(log.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		s.logger = &logger
	}

	s.buf = make([]byte, s.regionSize)
	low := uintptr(unsafe.Pointer(&s.buf[0]))
	s.region = stack.NewRegion(low, low+uintptr(s.regionSize))
	s.region.Paint()

	s.rnd = rand.New(rand.NewSource(s.seed))
	s.used = 0
	s.samples = s.samples[:0]

	s.logger.Debug().
		Int("region_size", s.regionSize).
		Int("steps", s.steps).
		Int("max_frame", s.maxFrame).
		Int64("seed", s.seed).
		Msg("painted synthetic stack region")

	return nil
}

func (s *Session) validate() error {
	if s.regionSize <= 0 {
		return ErrRegionSizeZero
	}
	if s.steps <= 0 {
		return ErrStepsZero
	}
	if s.maxFrame <= 0 {
		return ErrFrameSizeZero
	}
	if s.maxFrame > s.regionSize {
		return ErrFrameTooLarge
	}

	return nil
}

// Step deepens the simulated call chain by one pseudo-random frame,
// dirtying the newly consumed bytes from the high end down, then probes
// the region and records the sample. The chain never unwinds: once
// consumed, a byte stays dirty, like a real stack after the frame pops.
func (s *Session) Step() Sample {
	frame := 1 + s.rnd.Intn(s.maxFrame)
	depth := s.used + frame
	if depth > s.regionSize {
		depth = s.regionSize
	}

	for i := s.regionSize - depth; i < s.regionSize-s.used; i++ {
		b := byte(s.rnd.Intn(256))
		// Collisions with the fill pattern are an engine concern, not a
		// workload one. Keep the dirt honest.
		if b == stack.Pattern {
			b = ^stack.Pattern
		}
		s.buf[i] = b
	}
	s.used = depth

	sample := Sample{
		Step:     len(s.samples) + 1,
		Used:     s.used,
		Estimate: int(s.region.Probe()),
	}
	s.samples = append(s.samples, sample)

	return sample
}

// Run executes the configured number of steps, or fewer if the context is
// canceled, and returns the session report.
func (s *Session) Run(ctx context.Context) (*WatermarkReport, error) {
	if s.buf == nil {
		return nil, ErrNotInitialized
	}

	for i := 0; i < s.steps; i++ {
		select {
		case <-ctx.Done():
			s.logger.Debug().Int("step", i).Msg("session canceled")
			return s.report(), ctx.Err()
		default:
		}

		sample := s.Step()
		s.logger.Debug().
			Int("step", sample.Step).
			Int("used", sample.Used).
			Int("estimate", sample.Estimate).
			Msg("probed synthetic stack")
	}

	report := s.report()
	runtime.KeepAlive(s.buf)

	return report, nil
}

// Samples returns the samples recorded so far.
func (s *Session) Samples() []Sample {
	return s.samples
}

func (s *Session) report() *WatermarkReport {
	report := NewReport(
		WithReportRegionSize(s.regionSize),
		WithReportSamples(s.samples),
	)

	return report
}
