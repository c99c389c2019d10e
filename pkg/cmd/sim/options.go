package sim

import (
	"context"

	log "github.com/rs/zerolog"

	"github.com/maxgio92/stackmark/pkg/cmd/options"
)

type Options struct {
	regionSize int
	steps      int
	maxFrame   int
	seed       int64

	report bool
	table  bool

	*options.CommonOptions
}

type Option func(o *Options)

func NewOptions(opts ...Option) *Options {
	o := new(Options)
	o.CommonOptions = new(options.CommonOptions)

	for _, f := range opts {
		f(o)
	}

	return o
}

func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
