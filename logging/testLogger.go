// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// NewTestLogger produces a Logger which delegates to the supplied testing log.  A nil Options
// logs everything at DEBUG and above, since tests usually want to see all output.
func NewTestLogger(o *Options, t zaptest.TestingT) *zap.Logger {
	level := zap.DebugLevel
	if o != nil {
		level = o.level()
	}

	return zaptest.NewLogger(t, zaptest.Level(level))
}
