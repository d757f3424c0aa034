// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package sink is the parent of the transport adapters that carry pulse markers to the outside world.
Each subpackage exposes a pulse.Sender over one kind of transport:

	iosink   - any io.Writer: serial devices, sysfs GPIO value files, pipes, stdout
	gpiosink - a periph.io GPIO pin
	wssink   - a websocket connection, one binary message per marker
*/
package sink
