// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Interface is the source of time used by pulse emitters.  Timers produced by an Interface
// must measure elapsed time monotonically, so that wall clock adjustments never shorten a wait.
type Interface interface {
	// Now returns the current time.  For the system clock, the returned value carries
	// a monotonic reading.
	Now() time.Time

	// NewTimer creates a Timer that fires once after at least the given duration.
	NewTimer(time.Duration) Timer
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}

// Since returns the time elapsed since t, as measured by the given clock.  A nil clock
// is treated as the system clock.
func Since(c Interface, t time.Time) time.Duration {
	if c == nil {
		return time.Since(t)
	}

	return c.Now().Sub(t)
}

// Timer fires once on its channel after its duration elapses.  It is the analog of time.Timer.
type Timer interface {
	C() <-chan time.Time

	// Stop prevents the timer from firing, returning false if the timer had already
	// expired or been stopped.
	Stop() bool
}

type systemTimer struct {
	*time.Timer
}

func (st systemTimer) C() <-chan time.Time {
	return st.Timer.C
}
