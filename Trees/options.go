package Trees

import (
	"io"
	"log/slog"
)

type options struct {
	dynamic bool
	verify  bool
	logger  *slog.Logger
	degree  int
}

// Option configures tree construction.
type Option func(*options)

// WithDynamic builds a tree that supports DeleteTop.
func WithDynamic() Option {
	return func(o *options) {
		o.dynamic = true
	}
}

// WithVerify checks the invariants of the tree right after building it, in O(n).
// A failed check is a bug in the tree and panics. Meant for tests.
func WithVerify() Option {
	return func(o *options) {
		o.verify = true
	}
}

// WithLogger sets the logger used for construction events. Pass nil to discard them, which is
// also the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDegree sets the degree of the B-tree backing a Builder. Values below 2 mean the default.
func WithDegree(d int) Option {
	return func(o *options) {
		o.degree = d
	}
}

func makeOptions(opts []Option) options {
	o := options{degree: 32}
	for _, f := range opts {
		f(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.degree < 2 {
		o.degree = 32
	}
	return o
}
