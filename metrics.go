// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"errors"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/pulse/xmetrics"
)

const (
	PulseCounter       = "pulse_count"
	InFlightGauge      = "pulse_in_flight"
	ElapsedHistogram   = "pulse_elapsed_seconds"
	OutcomeLabel       = "outcome"
	SuccessOutcome     = "success"
	InvalidOutcome     = "invalid"
	RisingOutcome      = "rising_failure"
	FallingOutcome     = "falling_failure"
	InterruptedOutcome = "interrupted"
	ErrorOutcome       = "error"
)

// Metrics is the pulse module function that adds default pulse metrics
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       PulseCounter,
			Type:       xmetrics.CounterType,
			Help:       "The number of pulses emitted, by outcome",
			LabelNames: []string{OutcomeLabel},
		},
		{
			Name: InFlightGauge,
			Type: xmetrics.GaugeType,
			Help: "The number of pulses currently in progress",
		},
		{
			Name:    ElapsedHistogram,
			Type:    xmetrics.HistogramType,
			Help:    "The wall clock time taken by each pulse, including backpressure",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	}
}

// Measures holds the pulse metric objects for runtime consumption.
type Measures struct {
	Pulses   metrics.Counter
	InFlight xmetrics.Adder
	Elapsed  xmetrics.Observer
}

// NewMeasures constructs a Measures given a go-kit metrics Provider
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Pulses:   p.NewCounter(PulseCounter),
		InFlight: p.NewGauge(InFlightGauge),
		Elapsed:  p.NewHistogram(ElapsedHistogram, 10),
	}
}

// Outcome classifies an error returned by an Interface into one of the outcome label values.
func Outcome(err error) string {
	var (
		ie *InterruptedError
		se *SendError
	)

	switch {
	case err == nil:
		return SuccessOutcome
	case errors.Is(err, ErrNegativeDuration):
		return InvalidOutcome
	case errors.As(err, &ie):
		return InterruptedOutcome
	case errors.As(err, &se):
		if se.HighSent() {
			return FallingOutcome
		}

		return RisingOutcome
	default:
		return ErrorOutcome
	}
}
