// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewTestLogger(t *testing.T) {
	assert := assert.New(t)

	logger := NewTestLogger(nil, t)
	assert.True(logger.Core().Enabled(zapcore.DebugLevel))
	logger.Debug("visible in verbose test output")

	logger = NewTestLogger(&Options{Level: "WARN"}, t)
	assert.False(logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(logger.Core().Enabled(zapcore.WarnLevel))
}
