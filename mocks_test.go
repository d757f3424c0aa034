// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/pulse"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, l pulse.Level) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockSender) OnSend(l pulse.Level, err error) *mock.Call {
	return m.On("Send", mock.Anything, l).Return(err)
}

type mockInterface struct {
	mock.Mock
}

func (m *mockInterface) Emit(ctx context.Context, s pulse.Sender, d time.Duration) error {
	return m.Called(ctx, s, d).Error(0)
}
