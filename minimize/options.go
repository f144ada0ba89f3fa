// SPDX-License-Identifier: MIT
package minimize

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/wta/matrix"
)

// ErrUnsolvableProjection indicates that Step III found no solution within
// tolerance, i.e. F and B are inconsistent.
var ErrUnsolvableProjection = errors.New("minimize: projection has no solution within tolerance")

// Option configures a minimization call.
type Option func(*Options)

// Options holds the resolved configuration shared by all three steps.
type Options struct {
	Epsilon float64
	Logger  *slog.Logger
}

// DefaultOptions returns ε = matrix.DefaultEpsilon and slog.Default().
func DefaultOptions() Options {
	return Options{Epsilon: matrix.DefaultEpsilon, Logger: slog.Default()}
}

// WithEpsilon sets the numerical rank tolerance.
// Panics if eps is not finite and positive.
func WithEpsilon(eps float64) Option {
	eps = matrix.MustEpsilon(eps)

	return func(o *Options) { o.Epsilon = eps }
}

// WithLogger routes step diagnostics to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("minimize: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = o.Logger.With(slog.String("component", "minimize"))

	return o
}
