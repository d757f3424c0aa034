// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xmidt-org/pulse"
	"github.com/xmidt-org/pulse/sink/gpiosink"
	"github.com/xmidt-org/pulse/sink/iosink"
	"github.com/xmidt-org/pulse/sink/wssink"
)

const (
	filePrefix = "file:"
	gpioPrefix = "gpio:"
)

var errUnsupportedTarget = errors.New("unsupported target")

// Target is a line that markers can be sent on, and which must be released when done.
type Target interface {
	pulse.Sender
	io.Closer
}

type writerTarget struct {
	*iosink.Sender
}

func (writerTarget) Close() error {
	return nil
}

// openTarget interprets a target string.  The stdout target writes to the supplied writer, which
// is never closed.
func openTarget(ctx context.Context, target string, stdout io.Writer) (Target, error) {
	switch {
	case len(target) == 0 || target == DefaultTarget:
		return writerTarget{iosink.New(stdout)}, nil

	case strings.HasPrefix(target, filePrefix) && len(target) > len(filePrefix):
		f, err := iosink.Open(strings.TrimPrefix(target, filePrefix))
		return opened(f, err)

	case strings.HasPrefix(target, gpioPrefix) && len(target) > len(gpioPrefix):
		s, err := gpiosink.Open(strings.TrimPrefix(target, gpioPrefix))
		return opened(s, err)

	case strings.HasPrefix(target, "ws://") || strings.HasPrefix(target, "wss://"):
		s, err := wssink.Dial(ctx, target, nil)
		return opened(s, err)

	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedTarget, target)
	}
}

// opened keeps a failed open from producing a non-nil Target holding a nil pointer
func opened[T Target](t T, err error) (Target, error) {
	if err != nil {
		return nil, err
	}

	return t, nil
}
