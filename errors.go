// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"errors"
	"fmt"
)

// ErrNegativeDuration is returned when a pulse is requested with a negative duration.  This is
// a caller bug, and nothing is sent on the line when it happens.
var ErrNegativeDuration = errors.New("the pulse duration cannot be negative")

// Phase identifies the edge of a pulse being sent when a failure occurred.
type Phase int

const (
	// PhaseRising is the HIGH marker.  A failure here leaves nothing on the line.
	PhaseRising Phase = iota

	// PhaseFalling is the LOW marker.  A failure here leaves the line HIGH.
	PhaseFalling
)

func (p Phase) String() string {
	switch p {
	case PhaseRising:
		return "rising"
	case PhaseFalling:
		return "falling"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SendError is returned when a marker could not be sent.
type SendError struct {
	// Phase is the edge that failed
	Phase Phase

	// Level is the marker that could not be sent
	Level Level

	// Err is the error returned by the Sender
	Err error
}

func (se *SendError) Error() string {
	return fmt.Sprintf("unable to send %s marker on %s edge: %s", se.Level, se.Phase, se.Err)
}

func (se *SendError) Unwrap() error {
	return se.Err
}

// HighSent tests if the HIGH marker reached the line before this error occurred.
func (se *SendError) HighSent() bool {
	return se.Phase == PhaseFalling
}

// InterruptedError is returned when a pulse's context is canceled while the line is HIGH.
type InterruptedError struct {
	// Err is the context error that interrupted the wait
	Err error

	// Settled indicates that the LOW marker was sent after the interruption
	Settled bool

	// Settle is the failure from attempting to send LOW after the interruption, if any
	Settle *SendError
}

func (ie *InterruptedError) Error() string {
	switch {
	case ie.Settled:
		return fmt.Sprintf("pulse interrupted and settled low: %s", ie.Err)
	case ie.Settle != nil:
		return fmt.Sprintf("pulse interrupted: %s; %s", ie.Err, ie.Settle)
	default:
		return fmt.Sprintf("pulse interrupted with the line high: %s", ie.Err)
	}
}

func (ie *InterruptedError) Unwrap() []error {
	if ie.Settle != nil {
		return []error{ie.Err, ie.Settle}
	}

	return []error{ie.Err}
}

// Dangling tests if the given error, as returned by an Emitter, left the line HIGH.
func Dangling(err error) bool {
	var ie *InterruptedError
	if errors.As(err, &ie) {
		return !ie.Settled
	}

	var se *SendError
	if errors.As(err, &se) {
		return se.HighSent()
	}

	return false
}
