package simulate

import (
	log "github.com/rs/zerolog"
)

type SessionOptions struct {
	regionSize int
	steps      int
	maxFrame   int
	seed       int64

	logger *log.Logger
}

type SessionOption func(*Session)

func WithRegionSize(size int) SessionOption {
	return func(s *Session) {
		s.regionSize = size
	}
}

func WithSteps(steps int) SessionOption {
	return func(s *Session) {
		s.steps = steps
	}
}

func WithMaxFrame(size int) SessionOption {
	return func(s *Session) {
		s.maxFrame = size
	}
}

func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.seed = seed
	}
}

func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}
