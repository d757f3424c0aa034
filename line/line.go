// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package line provides an in-memory, capacity-bounded output line for pulses.  A Line is the
handoff point between a pulse.Emitter and whatever consumes the markers: a driver goroutine,
a test harness, or a logger.
*/
package line

import (
	"context"
	"sync/atomic"

	"github.com/xmidt-org/pulse"
)

// DefaultCapacity is the number of markers a line buffers when no capacity is given.
const DefaultCapacity = 8

const (
	stateOpen   int32 = 0
	stateClosed int32 = 1
)

// Line is a bounded queue of markers.  Senders block while the line is full.  Closing a line
// models the receiver going away:  every pending and subsequent Send fails with pulse.ErrClosed.
//
// A Line is safe for concurrent use.
type Line struct {
	markers chan pulse.Level

	state  int32
	closed chan struct{}
}

var _ pulse.Sender = (*Line)(nil)

// New creates a Line that buffers up to capacity markers.  A nonpositive capacity
// results in DefaultCapacity.
func New(capacity int) *Line {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Line{
		markers: make(chan pulse.Level, capacity),
		closed:  make(chan struct{}),
	}
}

func (l *Line) checkClosed() bool {
	return atomic.LoadInt32(&l.state) == stateClosed
}

// Send queues a marker, blocking while the line is full.  If the line is closed,
// pulse.ErrClosed is returned.  If the context is canceled first, ctx.Err() is returned.
func (l *Line) Send(ctx context.Context, lv pulse.Level) error {
	if l.checkClosed() {
		return pulse.ErrClosed
	}

	// select picks randomly among ready cases, so a done context must be checked first
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case l.markers <- lv:
		if l.checkClosed() {
			return pulse.ErrClosed
		}

		return nil

	case <-ctx.Done():
		return ctx.Err()

	case <-l.closed:
		return pulse.ErrClosed
	}
}

// Receive blocks until a marker is available, the context is canceled, or the line is closed.
func (l *Line) Receive(ctx context.Context) (pulse.Level, error) {
	if l.checkClosed() {
		return 0, pulse.ErrClosed
	}

	select {
	case lv := <-l.markers:
		return lv, nil

	case <-ctx.Done():
		return 0, ctx.Err()

	case <-l.closed:
		return 0, pulse.ErrClosed
	}
}

// TryReceive returns the next marker without blocking.  The boolean is false if the line is
// empty or closed.
func (l *Line) TryReceive() (pulse.Level, bool) {
	if l.checkClosed() {
		return 0, false
	}

	select {
	case lv := <-l.markers:
		return lv, true
	default:
		return 0, false
	}
}

// Drain removes and returns every marker currently buffered, without blocking.
func (l *Line) Drain() (drained []pulse.Level) {
	for {
		lv, ok := l.TryReceive()
		if !ok {
			return
		}

		drained = append(drained, lv)
	}
}

// Len is the number of buffered markers.
func (l *Line) Len() int {
	return len(l.markers)
}

// Cap is the maximum number of buffered markers.
func (l *Line) Cap() int {
	return cap(l.markers)
}

// Close shuts down the receiving side.  Blocked senders are released with pulse.ErrClosed.  Close
// is idempotent; calls after the first return pulse.ErrClosed without modifying the line.
func (l *Line) Close() error {
	if atomic.CompareAndSwapInt32(&l.state, stateOpen, stateClosed) {
		close(l.closed)
		return nil
	}

	return pulse.ErrClosed
}

// Closed returns a channel that is closed when this line has been closed.
func (l *Line) Closed() <-chan struct{} {
	return l.closed
}
