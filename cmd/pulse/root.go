// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
	"github.com/xmidt-org/pulse/xviper"
)

const applicationName = "pulse"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   applicationName,
		Short: "Emits timed binary pulses on a line.",
		Long: `pulse sends a HIGH marker, waits for a duration, then sends a LOW marker. ` +
			`Targets include stdout, files and devices, GPIO pins, and websocket endpoints.`,
		SilenceUsage: true,
	}

	xviper.AddFlags(root.PersistentFlags())
	root.AddCommand(newEmitCommand(), newServeCommand())
	return root
}

// execute runs the command tree against the given arguments and returns the process exit code
func execute(arguments []string) int {
	root := newRootCommand()
	root.SetArgs(arguments)
	if err := root.Execute(); err != nil {
		return 1
	}

	return 0
}
