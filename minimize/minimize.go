// SPDX-License-Identifier: MIT
package minimize

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/wta/automaton"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"
)

const tracerName = "github.com/katalvlaran/wta/minimize"

// Minimize returns an automaton with the fewest states computing the same
// weight as a on every tree. a is not modified.
func Minimize(a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	return MinimizeContext(context.Background(), a, opts...)
}

// MinimizeContext is Minimize with tracing: ctx parents one span for the
// whole call and one per step. The computation itself is not interruptible.
//
// Implementation:
//   - Stage 1: Forward, span minimize.Forward with the forward rank.
//   - Stage 2: Backward, span minimize.Backward with the context count and rank.
//   - Stage 3: Project, span minimize.Project with the new state count.
//
// A failing step records its error on both its span and the parent span.
//
// Errors:
//   - ErrUnsolvableProjection, automaton.ErrDimensionMismatch and
//     matrix.ErrFactorization from the steps, unwrapped by errors.Is.
func MinimizeContext(ctx context.Context, a *automaton.Automaton, opts ...Option) (*automaton.Automaton, error) {
	o := resolve(opts)
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "minimize.Minimize",
		trace.WithAttributes(
			attribute.Int("states", a.NumStates()),
			attribute.Int("symbols", len(a.Symbols())),
			attribute.Float64("epsilon", o.Epsilon),
		))
	defer span.End()

	f, err := step(ctx, tracer, "minimize.Forward", func(s trace.Span) (*mat.Dense, error) {
		basis, err := forward(a, o)
		if err != nil {
			return nil, err
		}
		s.SetAttributes(attribute.Int("rank", basis.Len()))
		return basis.Matrix(), nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	b, err := step(ctx, tracer, "minimize.Backward", func(s trace.Span) (*mat.Dense, error) {
		b, contexts, err := backward(a, f, o)
		if err != nil {
			return nil, err
		}
		s.SetAttributes(attribute.Int("contexts", contexts), attribute.Int("rank", filledColumns(b)))
		return b, nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	out, err := step(ctx, tracer, "minimize.Project", func(s trace.Span) (*automaton.Automaton, error) {
		out, err := project(a, f, b, o)
		if err != nil {
			return nil, err
		}
		s.SetAttributes(attribute.Int("states", out.NumStates()))
		return out, nil
	})
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("minimized_states", out.NumStates()))
	o.Logger.Debug("minimized",
		slog.Int("states", a.NumStates()),
		slog.Int("minimized_states", out.NumStates()))

	return out, nil
}

// step runs fn inside a child span named name.
func step[T any](ctx context.Context, tracer trace.Tracer, name string, fn func(trace.Span) (T, error)) (T, error) {
	_, span := tracer.Start(ctx, name)
	defer span.End()

	out, err := fn(span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name+" failed")
	}

	return out, err
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "minimize failed")

	return err
}

// filledColumns counts the leading non-zero columns of a saturated basis.
func filledColumns(b *mat.Dense) int {
	_, c := b.Dims()
	for j := 0; j < c; j++ {
		if mat.Norm(b.ColView(j), 2) == 0 {
			return j
		}
	}

	return c
}
