// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/pulse/xmetrics"
	"go.uber.org/zap"
)

func TestMetrics(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	r, err := xmetrics.NewRegistry(nil, Metrics)
	require.NoError(err)
	require.NotNil(r)

	m := NewMeasures(r)
	assert.NotNil(m.Pulses)
	assert.NotNil(m.InFlight)
	assert.NotNil(m.Elapsed)

	m.Pulses.With(OutcomeLabel, SuccessOutcome).Add(1.0)
	m.InFlight.Add(1.0)
	m.Elapsed.Observe(0.1)
}

func TestMeasuresInFlight(t *testing.T) {
	var (
		assert = assert.New(t)

		inFlight = generic.NewGauge(InFlightGauge)
		elapsed  = generic.NewHistogram(ElapsedHistogram, 10)
		observed []float64

		emitter = Instrument(
			New(),
			WithLogger(zap.NewNop()),
			WithMeasures(Measures{
				Pulses:   generic.NewCounter(PulseCounter),
				InFlight: inFlight,
				Elapsed:  elapsed,
			}),
		)
	)

	err := emitter.Emit(
		context.Background(),
		SenderFunc(func(context.Context, Level) error {
			observed = append(observed, inFlight.Value())
			return nil
		}),
		time.Millisecond,
	)

	assert.NoError(err)
	assert.Equal([]float64{1.0, 1.0}, observed)
	assert.Zero(inFlight.Value())
	assert.GreaterOrEqual(elapsed.Quantile(0.99), time.Millisecond.Seconds())
}

func TestOutcome(t *testing.T) {
	testData := []struct {
		err      error
		expected string
	}{
		{nil, SuccessOutcome},
		{fmt.Errorf("%w: -1s", ErrNegativeDuration), InvalidOutcome},
		{&SendError{Phase: PhaseRising, Err: ErrClosed}, RisingOutcome},
		{&SendError{Phase: PhaseFalling, Err: ErrClosed}, FallingOutcome},
		{&InterruptedError{Err: context.Canceled}, InterruptedOutcome},
		{&InterruptedError{Err: context.Canceled, Settle: &SendError{Phase: PhaseFalling}}, InterruptedOutcome},
		{context.Canceled, ErrorOutcome},
		{errors.New("unrelated"), ErrorOutcome},
	}

	for _, record := range testData {
		t.Run(record.expected, func(t *testing.T) {
			assert.Equal(t, record.expected, Outcome(record.err))
		})
	}
}
