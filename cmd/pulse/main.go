// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
