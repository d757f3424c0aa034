// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("rising", PhaseRising.String())
	assert.Equal("falling", PhaseFalling.String())
	assert.Equal("Phase(9)", Phase(9).String())
}

func TestSendError(t *testing.T) {
	var (
		assert = assert.New(t)
		cause  = errors.New("expected")
		rising = &SendError{Phase: PhaseRising, Level: High, Err: cause}
	)

	assert.ErrorIs(rising, cause)
	assert.Contains(rising.Error(), "HIGH")
	assert.Contains(rising.Error(), "rising")
	assert.Contains(rising.Error(), "expected")
	assert.False(rising.HighSent())

	falling := &SendError{Phase: PhaseFalling, Level: Low, Err: cause}
	assert.True(falling.HighSent())
}

func TestInterruptedError(t *testing.T) {
	t.Run("Dangling", func(t *testing.T) {
		assert := assert.New(t)
		ie := &InterruptedError{Err: context.Canceled}

		assert.ErrorIs(ie, context.Canceled)
		assert.Contains(ie.Error(), "high")
		assert.True(Dangling(ie))
	})

	t.Run("Settled", func(t *testing.T) {
		assert := assert.New(t)
		ie := &InterruptedError{Err: context.DeadlineExceeded, Settled: true}

		assert.ErrorIs(ie, context.DeadlineExceeded)
		assert.Contains(ie.Error(), "settled")
		assert.False(Dangling(ie))
	})

	t.Run("SettleFailed", func(t *testing.T) {
		assert := assert.New(t)
		ie := &InterruptedError{
			Err:    context.Canceled,
			Settle: &SendError{Phase: PhaseFalling, Level: Low, Err: ErrClosed},
		}

		assert.ErrorIs(ie, context.Canceled)
		assert.ErrorIs(ie, ErrClosed)
		assert.Contains(ie.Error(), "LOW")
		assert.True(Dangling(ie))
	})
}

func TestDangling(t *testing.T) {
	assert := assert.New(t)

	assert.False(Dangling(nil))
	assert.False(Dangling(errors.New("unrelated")))
	assert.False(Dangling(ErrNegativeDuration))
	assert.True(Dangling(fmt.Errorf("wrapped: %w", &SendError{Phase: PhaseFalling, Err: ErrClosed})))
	assert.False(Dangling(fmt.Errorf("wrapped: %w", &SendError{Phase: PhaseRising, Err: ErrClosed})))
}
