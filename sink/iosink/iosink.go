// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package iosink writes pulse markers to an io.Writer, one byte per marker.
package iosink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"

	"github.com/xmidt-org/pulse"
)

// Sender writes each marker's wire byte to an io.Writer.  Writes that fail because the
// writer was closed, locally or by a peer, are reported as pulse.ErrClosed.
type Sender struct {
	w io.Writer
}

var _ pulse.Sender = (*Sender)(nil)

// New creates a Sender for the given writer.
func New(w io.Writer) *Sender {
	return &Sender{w: w}
}

func (s *Sender) Send(ctx context.Context, l pulse.Level) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.w.Write([]byte{l.Byte()})
	if err != nil && closed(err) {
		return fmt.Errorf("%w: %w", pulse.ErrClosed, err)
	}

	return err
}

func closed(err error) bool {
	return errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.EPIPE)
}

// File is a Sender that owns the file it writes to.
type File struct {
	*Sender
	file *os.File
}

// Open opens the named file for writing, e.g. a serial device or /sys/class/gpio/gpio17/value.
// The file is not truncated or created.
func Open(name string) (*File, error) {
	f, err := os.OpenFile(name, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}

	return &File{
		Sender: New(f),
		file:   f,
	}, nil
}

// Name returns the name of the underlying file.
func (f *File) Name() string {
	return f.file.Name()
}

// Close closes the underlying file.  Subsequent sends return pulse.ErrClosed.
func (f *File) Close() error {
	return f.file.Close()
}
