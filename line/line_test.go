// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package line

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/pulse"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(DefaultCapacity, New(0).Cap())
	assert.Equal(DefaultCapacity, New(-1).Cap())
	assert.Equal(3, New(3).Cap())
}

func testSendReceive(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		l       = New(2)
	)

	require.NoError(l.Send(context.Background(), pulse.High))
	require.NoError(l.Send(context.Background(), pulse.Low))
	assert.Equal(2, l.Len())

	lv, err := l.Receive(context.Background())
	require.NoError(err)
	assert.Equal(pulse.High, lv)

	lv, ok := l.TryReceive()
	assert.True(ok)
	assert.Equal(pulse.Low, lv)

	_, ok = l.TryReceive()
	assert.False(ok)
	assert.Zero(l.Len())
}

func testSendFullCanceled(t *testing.T) {
	var (
		assert      = assert.New(t)
		require     = require.New(t)
		l           = New(1)
		ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	)

	defer cancel()
	require.NoError(l.Send(ctx, pulse.High))
	assert.ErrorIs(l.Send(ctx, pulse.Low), context.DeadlineExceeded)
	assert.Equal([]pulse.Level{pulse.High}, l.Drain())
}

func testSendAlreadyCanceled(t *testing.T) {
	var (
		assert      = assert.New(t)
		l           = New(0)
		ctx, cancel = context.WithCancel(context.Background())
	)

	cancel()
	for i := 0; i < 1000; i++ {
		assert.ErrorIs(l.Send(ctx, pulse.High), context.Canceled)
	}

	assert.Zero(l.Len())
}

func testSendBackpressure(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		l       = New(1)
		result  = make(chan error, 1)
	)

	require.NoError(l.Send(context.Background(), pulse.High))
	go func() {
		result <- l.Send(context.Background(), pulse.Low)
	}()

	select {
	case <-result:
		assert.Fail("Send should block while the line is full")
	case <-time.After(20 * time.Millisecond):
	}

	assert.Equal([]pulse.Level{pulse.High}, l.Drain())

	select {
	case err := <-result:
		assert.NoError(err)
	case <-time.After(5 * time.Second):
		assert.Fail("Send did not complete once the line was drained")
	}

	assert.Equal([]pulse.Level{pulse.Low}, l.Drain())
}

func testSendClosed(t *testing.T) {
	var (
		assert = assert.New(t)
		l      = New(1)
	)

	assert.NoError(l.Close())
	assert.ErrorIs(l.Close(), pulse.ErrClosed)
	assert.ErrorIs(l.Send(context.Background(), pulse.High), pulse.ErrClosed)

	select {
	case <-l.Closed():
	default:
		assert.Fail("The closed channel should be closed")
	}
}

func testSendBlockedThenClosed(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		l       = New(1)
		result  = make(chan error, 1)
	)

	require.NoError(l.Send(context.Background(), pulse.High))
	go func() {
		result <- l.Send(context.Background(), pulse.Low)
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(l.Close())

	select {
	case err := <-result:
		assert.ErrorIs(err, pulse.ErrClosed)
	case <-time.After(5 * time.Second):
		assert.Fail("A blocked Send was not released by Close")
	}
}

func TestSend(t *testing.T) {
	t.Run("Receive", testSendReceive)
	t.Run("FullCanceled", testSendFullCanceled)
	t.Run("AlreadyCanceled", testSendAlreadyCanceled)
	t.Run("Backpressure", testSendBackpressure)
	t.Run("Closed", testSendClosed)
	t.Run("BlockedThenClosed", testSendBlockedThenClosed)
}

func TestReceive(t *testing.T) {
	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := New(1).Receive(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Closed", func(t *testing.T) {
		l := New(1)
		l.Close()

		_, err := l.Receive(context.Background())
		assert.ErrorIs(t, err, pulse.ErrClosed)

		_, ok := l.TryReceive()
		assert.False(t, ok)
	})
}
