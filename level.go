// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package pulse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned when a byte or string does not denote a Level.
var ErrInvalidLevel = errors.New("invalid signal level")

// Level is the signal level carried by a single marker.  The underlying value is the
// marker's wire byte.
type Level byte

const (
	// Low is transmitted as the ASCII character '0'
	Low Level = '0'

	// High is transmitted as the ASCII character '1'
	High Level = '1'
)

// ParseLevel converts a wire byte into a Level.
func ParseLevel(b byte) (Level, error) {
	switch l := Level(b); l {
	case Low, High:
		return l, nil
	default:
		return 0, fmt.Errorf("%w: byte %d", ErrInvalidLevel, b)
	}
}

// Byte returns the wire encoding of this level.
func (l Level) Byte() byte {
	return byte(l)
}

// Bool returns true for High.
func (l Level) Bool() bool {
	return l == High
}

func (l Level) String() string {
	switch l {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	default:
		return fmt.Sprintf("Level(%d)", byte(l))
	}
}

// MarshalText emits the same text as String, and fails for values other than High or Low.
func (l Level) MarshalText() ([]byte, error) {
	if l != High && l != Low {
		return nil, fmt.Errorf("%w: byte %d", ErrInvalidLevel, byte(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText accepts "high"/"low" in any case as well as "1"/"0".
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case "HIGH", "1":
		*l = High
	case "LOW", "0":
		*l = Low
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, text)
	}

	return nil
}
