// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"time"
)

// Exclusive decorates an Interface so that only one pulse at a time runs through the returned
// decorator.  Use one Exclusive per shared line, so that concurrent callers never interleave
// their markers.
//
// A caller whose context is canceled while waiting for its turn gets ctx.Err(), and nothing
// is sent on the line.
func Exclusive(next Interface) Interface {
	return &exclusive{
		next: next,
		turn: make(chan struct{}, 1),
	}
}

type exclusive struct {
	next Interface
	turn chan struct{}
}

func (x *exclusive) Emit(ctx context.Context, s Sender, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case x.turn <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	defer func() { <-x.turn }()
	return x.next.Emit(ctx, s, d)
}
