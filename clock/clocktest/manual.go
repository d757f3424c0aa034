// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/xmidt-org/pulse/clock"
)

// Manual is a clock.Interface whose time only moves when a test calls Add or Set.  Timers
// created from a Manual clock fire when the clock is moved to or past their deadline.
//
// A Manual clock is safe for concurrent use.
type Manual struct {
	lock   sync.Mutex
	now    time.Time
	timers []*manualTimer
}

var _ clock.Interface = (*Manual)(nil)

// NewManual creates a Manual clock positioned at the given start time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.now
}

func (m *Manual) NewTimer(d time.Duration) clock.Timer {
	m.lock.Lock()
	defer m.lock.Unlock()

	t := &manualTimer{
		owner: m,
		c:     make(chan time.Time, 1),
	}

	m.timers = append(m.timers, t)
	t.arm(m.now, d)
	return t
}

// Add moves the clock forward by d, firing any timers whose deadlines have been reached.
func (m *Manual) Add(d time.Duration) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.advance(m.now.Add(d))
}

// Set moves the clock to t.  Moving backwards is permitted, but never fires timers.
func (m *Manual) Set(t time.Time) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.advance(t)
}

// Timers returns the number of timers that are armed and have not yet fired.
func (m *Manual) Timers() (n int) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for _, t := range m.timers {
		if t.active {
			n++
		}
	}

	return
}

// WaitForTimers blocks until at least n timers are armed, returning false if that does not
// happen within the timeout.  Tests use this to know that code under test has started waiting.
func (m *Manual) WaitForTimers(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for m.Timers() < n {
		if time.Now().After(deadline) {
			return false
		}

		time.Sleep(time.Millisecond)
	}

	return true
}

// advance must be called under the lock
func (m *Manual) advance(now time.Time) {
	m.now = now
	remaining := m.timers[:0]
	for _, t := range m.timers {
		if t.active && !t.deadline.After(now) {
			t.fire(now)
		}

		if t.active {
			remaining = append(remaining, t)
		}
	}

	// drop references to fired or stopped timers
	for i := len(remaining); i < len(m.timers); i++ {
		m.timers[i] = nil
	}

	m.timers = remaining
}

type manualTimer struct {
	owner    *Manual
	c        chan time.Time
	deadline time.Time
	active   bool
}

// arm must be called under the owner's lock
func (t *manualTimer) arm(now time.Time, d time.Duration) {
	t.deadline = now.Add(d)
	t.active = true
	if d <= 0 {
		t.fire(now)
	}
}

// fire must be called under the owner's lock
func (t *manualTimer) fire(now time.Time) {
	t.active = false
	select {
	case t.c <- now:
	default:
	}
}

func (t *manualTimer) C() <-chan time.Time {
	return t.c
}

func (t *manualTimer) Stop() bool {
	t.owner.lock.Lock()
	defer t.owner.lock.Unlock()

	wasActive := t.active
	t.active = false
	return wasActive
}
