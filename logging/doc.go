// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds zap loggers from configuration, writing either to stdout or to
a rolling lumberjack file.
*/
package logging
