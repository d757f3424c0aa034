// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gpiosink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/pulse"
	"periph.io/x/conn/v3/gpio"
)

type mockPin struct {
	mock.Mock
}

func (m *mockPin) Out(l gpio.Level) error {
	return m.Called(l).Error(0)
}

func (m *mockPin) Halt() error {
	return m.Called().Error(0)
}

func TestLevel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(gpio.High, Level(pulse.High))
	assert.Equal(gpio.Low, Level(pulse.Low))
}

func testSenderPulse(t *testing.T) {
	var (
		require = require.New(t)
		pin     = new(mockPin)
	)

	high := pin.On("Out", gpio.High).Return(nil).Once()
	pin.On("Out", gpio.Low).Return(nil).Once().NotBefore(high)

	require.NoError(pulse.Emit(context.Background(), New(pin), 0))
	pin.AssertExpectations(t)
}

func testSenderPinError(t *testing.T) {
	var (
		assert = assert.New(t)
		pin    = new(mockPin)
		cause  = errors.New("expected")
	)

	pin.On("Out", gpio.High).Return(nil).Once()
	pin.On("Out", gpio.Low).Return(cause).Once()

	err := pulse.Emit(context.Background(), New(pin), 0)
	assert.ErrorIs(err, cause)
	assert.True(pulse.Dangling(err))
	pin.AssertExpectations(t)
}

func testSenderClosed(t *testing.T) {
	var (
		assert = assert.New(t)
		pin    = new(mockPin)
		s      = New(pin)
	)

	pin.On("Halt").Return(nil).Once()
	assert.NoError(s.Close())
	assert.NoError(s.Close())

	err := pulse.Emit(context.Background(), s, 0)
	assert.ErrorIs(err, pulse.ErrClosed)
	assert.False(pulse.Dangling(err))
	pin.AssertExpectations(t)
	pin.AssertNotCalled(t, "Out", mock.Anything)
}

func TestSender(t *testing.T) {
	t.Run("Pulse", testSenderPulse)
	t.Run("PinError", testSenderPinError)
	t.Run("Closed", testSenderClosed)
}
