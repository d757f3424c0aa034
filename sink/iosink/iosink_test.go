// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package iosink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/pulse"
)

type errWriter struct {
	err error
}

func (ew errWriter) Write([]byte) (int, error) {
	return 0, ew.err
}

func testSenderPulse(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer
	)

	require.NoError(pulse.Emit(context.Background(), New(&output), 0))
	assert.Equal([]byte{49, 48}, output.Bytes())
}

func testSenderClosedPipe(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		r, w    = io.Pipe()
	)

	require.NoError(r.Close())

	err := pulse.Emit(context.Background(), New(w), 0)
	assert.ErrorIs(err, pulse.ErrClosed)
	assert.ErrorIs(err, io.ErrClosedPipe)
	assert.False(pulse.Dangling(err))
}

func testSenderOtherError(t *testing.T) {
	var (
		assert = assert.New(t)
		cause  = errors.New("expected")
		err    = New(errWriter{cause}).Send(context.Background(), pulse.High)
	)

	assert.ErrorIs(err, cause)
	assert.NotErrorIs(err, pulse.ErrClosed)
}

func testSenderCanceled(t *testing.T) {
	var (
		assert      = assert.New(t)
		output      bytes.Buffer
		ctx, cancel = context.WithCancel(context.Background())
	)

	cancel()
	assert.ErrorIs(New(&output).Send(ctx, pulse.High), context.Canceled)
	assert.Zero(output.Len())
}

func TestSender(t *testing.T) {
	t.Run("Pulse", testSenderPulse)
	t.Run("ClosedPipe", testSenderClosedPipe)
	t.Run("OtherError", testSenderOtherError)
	t.Run("Canceled", testSenderCanceled)
}

func TestOpen(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		name    = filepath.Join(t.TempDir(), "value")
	)

	_, err := Open(name)
	assert.ErrorIs(err, os.ErrNotExist)

	require.NoError(os.WriteFile(name, nil, 0o600))
	f, err := Open(name)
	require.NoError(err)
	assert.Equal(name, f.Name())

	require.NoError(pulse.Emit(context.Background(), f, 0))
	require.NoError(f.Close())
	assert.ErrorIs(f.Send(context.Background(), pulse.High), pulse.ErrClosed)

	contents, err := os.ReadFile(name)
	require.NoError(err)
	assert.Equal("10", string(contents))
}
