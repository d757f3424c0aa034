// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"context"
	"fmt"
	"time"

	"github.com/xmidt-org/pulse/clock"
)

// Interface is the behavior shared by an Emitter and its decorators.
type Interface interface {
	// Emit sends HIGH, waits for the duration, then sends LOW.
	Emit(ctx context.Context, s Sender, d time.Duration) error
}

// Request describes a single pulse.
type Request struct {
	// Sender is the line to pulse.  The line is not owned by the request.
	Sender Sender

	// Duration is how long the line stays HIGH.  Zero is legal.
	Duration time.Duration
}

// Option represents a configuration option for an Emitter
type Option func(*Emitter)

// WithClock sets the clock used to time the HIGH phase.  If nil, the system clock is used.
func WithClock(c clock.Interface) Option {
	return func(e *Emitter) {
		if c != nil {
			e.clock = c
		} else {
			e.clock = clock.System()
		}
	}
}

// WithSettle controls what happens when the context is canceled while the line is HIGH.  By default,
// the pulse is abandoned and the line stays HIGH.  When settle is true, LOW is sent right away
// using a context that is detached from the cancellation.
func WithSettle(settle bool) Option {
	return func(e *Emitter) {
		e.settle = settle
	}
}

// Emitter drives pulses.  An Emitter holds no per-pulse state, so a single instance may
// be used concurrently against any number of lines.
type Emitter struct {
	clock  clock.Interface
	settle bool
}

var _ Interface = (*Emitter)(nil)

// New constructs an Emitter.  With no options, the Emitter uses the system clock and
// does not settle interrupted pulses.
func New(o ...Option) *Emitter {
	e := &Emitter{
		clock: clock.System(),
	}

	for _, f := range o {
		f(e)
	}

	return e
}

var defaultEmitter = New()

// Emit sends a pulse using a default Emitter.
func Emit(ctx context.Context, s Sender, d time.Duration) error {
	return defaultEmitter.Emit(ctx, s, d)
}

// Do emits the pulse described by a Request.
func (e *Emitter) Do(ctx context.Context, r Request) error {
	return e.Emit(ctx, r.Sender, r.Duration)
}

// Emit sends HIGH on s, waits at least d, then sends LOW.
//
// A negative d returns ErrNegativeDuration without touching the line.  A failed send returns
// a *SendError and nothing further is sent.  If ctx is canceled during the wait, an
// *InterruptedError is returned.
func (e *Emitter) Emit(ctx context.Context, s Sender, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDuration, d)
	}

	if err := s.Send(ctx, High); err != nil {
		return &SendError{Phase: PhaseRising, Level: High, Err: err}
	}

	if err := e.wait(ctx, d); err != nil {
		return e.interrupted(ctx, s, err)
	}

	if err := s.Send(ctx, Low); err != nil {
		return &SendError{Phase: PhaseFalling, Level: Low, Err: err}
	}

	return nil
}

// wait blocks for d, returning early only when ctx is done.
func (e *Emitter) wait(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return nil
	}

	t := e.clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Emitter) interrupted(ctx context.Context, s Sender, cause error) error {
	ie := &InterruptedError{Err: cause}
	if !e.settle {
		return ie
	}

	if err := s.Send(context.WithoutCancel(ctx), Low); err != nil {
		ie.Settle = &SendError{Phase: PhaseFalling, Level: Low, Err: err}
	} else {
		ie.Settled = true
	}

	return ie
}
