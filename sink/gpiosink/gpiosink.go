// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package gpiosink drives a GPIO pin with pulse markers, using periph.io.
package gpiosink

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/xmidt-org/pulse"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// ErrPinNotFound is returned by Open when no pin is registered under the requested name.
var ErrPinNotFound = errors.New("no such GPIO pin")

// Pin is the subset of gpio.PinOut used to drive a line.  Any gpio.PinIO satisfies this interface.
type Pin interface {
	Out(gpio.Level) error
}

// halter is implemented by periph.io pins, which can be returned to their default state
type halter interface {
	Halt() error
}

// Sender drives a pin HIGH or LOW for each marker.
type Sender struct {
	pin    Pin
	closed int32
}

var _ pulse.Sender = (*Sender)(nil)

// New creates a Sender for an already resolved pin.
func New(p Pin) *Sender {
	return &Sender{pin: p}
}

// Open initializes the periph.io host drivers and resolves the pin by name, e.g. "GPIO17".
func Open(name string) (*Sender, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPinNotFound, name)
	}

	return New(p), nil
}

// Level converts a marker into the periph.io pin level.
func Level(l pulse.Level) gpio.Level {
	if l.Bool() {
		return gpio.High
	}

	return gpio.Low
}

func (s *Sender) Send(ctx context.Context, l pulse.Level) error {
	if atomic.LoadInt32(&s.closed) != 0 {
		return pulse.ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.pin.Out(Level(l))
}

// Close releases the pin.  Subsequent sends return pulse.ErrClosed.  The pin is halted if it
// supports halting.  Close is idempotent.
func (s *Sender) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil
	}

	if h, ok := s.pin.(halter); ok {
		return h.Halt()
	}

	return nil
}
