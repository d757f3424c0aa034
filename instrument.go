// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/pulse/clock"
	"github.com/xmidt-org/sallust"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerName is the instrumentation name used for pulse spans.
const TracerName = "github.com/xmidt-org/pulse"

// InstrumentOption represents a configurable option for instrumenting an Interface
type InstrumentOption func(*instrumented)

// WithLogger sets the zap logger for pulse outcomes.  If nil, sallust.Default() is used.
func WithLogger(l *zap.Logger) InstrumentOption {
	return func(i *instrumented) {
		if l != nil {
			i.logger = l
		} else {
			i.logger = sallust.Default()
		}
	}
}

// WithMeasures sets the metrics recorded for each pulse.
func WithMeasures(m Measures) InstrumentOption {
	return func(i *instrumented) {
		i.measures = m
	}
}

// WithTracer sets the tracer that produces one span per pulse.  If nil, the tracer
// is obtained from the global otel TracerProvider.
func WithTracer(t trace.Tracer) InstrumentOption {
	return func(i *instrumented) {
		if t != nil {
			i.tracer = t
		} else {
			i.tracer = otel.Tracer(TracerName)
		}
	}
}

// WithStopwatch sets the clock used to measure elapsed pulse time.  If nil, the system clock is used.
func WithStopwatch(c clock.Interface) InstrumentOption {
	return func(i *instrumented) {
		if c != nil {
			i.clock = c
		} else {
			i.clock = clock.System()
		}
	}
}

// Instrument decorates an Interface with logging, metrics, and tracing.  Each pulse is assigned
// a unique id, which appears in both the log entries and the span.  The decorated Interface
// receives a context carrying the enriched logger, retrievable via sallust.Get.
func Instrument(next Interface, o ...InstrumentOption) Interface {
	i := &instrumented{
		next:     next,
		logger:   sallust.Default(),
		measures: NewMeasures(provider.NewDiscardProvider()),
		tracer:   otel.Tracer(TracerName),
		clock:    clock.System(),
	}

	for _, f := range o {
		f(i)
	}

	return i
}

type instrumented struct {
	next     Interface
	logger   *zap.Logger
	measures Measures
	tracer   trace.Tracer
	clock    clock.Interface
}

func (i *instrumented) Emit(ctx context.Context, s Sender, d time.Duration) error {
	id := ksuid.New().String()
	ctx, span := i.tracer.Start(ctx, "pulse.Emit",
		trace.WithAttributes(
			attribute.String("pulse.id", id),
			attribute.Int64("pulse.duration_ms", d.Milliseconds()),
		),
	)

	defer span.End()

	logger := i.logger.With(zap.String("pulseID", id), zap.Duration("duration", d))
	logger.Debug("pulse starting")

	i.measures.InFlight.Add(1.0)
	start := i.clock.Now()
	err := i.next.Emit(sallust.With(ctx, logger), s, d)
	elapsed := clock.Since(i.clock, start)
	i.measures.InFlight.Add(-1.0)

	outcome := Outcome(err)
	i.measures.Elapsed.Observe(elapsed.Seconds())
	i.measures.Pulses.With(OutcomeLabel, outcome).Add(1.0)
	span.SetAttributes(attribute.String("pulse.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("pulse failed",
			zap.String("outcome", outcome),
			zap.Bool("dangling", Dangling(err)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
	} else {
		span.SetStatus(codes.Ok, "")
		logger.Info("pulse complete", zap.Duration("elapsed", elapsed))
	}

	return err
}
