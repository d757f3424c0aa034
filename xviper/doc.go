// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper provides the conventions pulse commands follow when loading configuration with viper:
standard search paths, command-line selection of the file, environment overrides, and the decode
hooks needed for durations and text-encoded values.
*/
package xviper
