// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package pulse emits timed binary pulses onto an output line.

A pulse drives a line HIGH, waits for a fixed duration, then drives the line LOW:

	err := pulse.Emit(ctx, sender, 100*time.Millisecond)

The line itself is anything that implements Sender: an in-memory channel, a serial device,
a GPIO pin, or a websocket.  On the wire, HIGH is the byte '1' (49) and LOW is the byte '0' (48).

An Emitter never retries.  A failure after HIGH has been sent leaves the line HIGH, and the
returned error says so.  Use Dangling to find out whether a failed pulse needs to be corrected.
*/
package pulse
