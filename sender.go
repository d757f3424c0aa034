// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"errors"
)

// ErrClosed indicates that the receiving side of a line is gone.  Sender implementations
// return this error, possibly wrapped, once nothing can be delivered anymore.
var ErrClosed = errors.New("the line has been closed")

// Sender is the send capability of an output line.
type Sender interface {
	// Send delivers a single marker.  Send may block while the line is at capacity.  Implementations
	// that can block should honor the context.  Once the receiving side is gone, Send must
	// return an error for which errors.Is(err, ErrClosed) is true.
	Send(context.Context, Level) error
}

// SenderFunc is a function type that implements Sender
type SenderFunc func(context.Context, Level) error

func (sf SenderFunc) Send(ctx context.Context, l Level) error {
	return sf(ctx, l)
}
