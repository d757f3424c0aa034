// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Configer is the subset of Viper behavior dealing with configuration paths and locations
type Configer interface {
	AddConfigPath(string)
	SetConfigName(string)
	SetConfigFile(string)
}

// AddStandardConfigPaths adds the standard *nix-style configuration paths: /etc/<app>, $HOME/<app>, and
// the working directory.
func AddStandardConfigPaths(c Configer, applicationName string) {
	c.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	c.AddConfigPath(fmt.Sprintf("$HOME/%s", applicationName))
	c.AddConfigPath(".")
}

// FlagLookup is the behavior expected of a pflag.FlagSet to lookup individual flags by longhand name.
type FlagLookup interface {
	Lookup(string) *pflag.Flag
}

// flagValue returns the string value of a flag, or the empty string if the flag doesn't exist
func flagValue(fl FlagLookup, flag string) string {
	if f := fl.Lookup(flag); f != nil {
		return f.Value.String()
	}

	return ""
}

// BindConfigName passes a nonempty flag value to c.SetConfigName, overriding the name of
// the file viper searches for.  The return indicates whether a name was bound.
func BindConfigName(c Configer, fl FlagLookup, flag string) bool {
	if configName := flagValue(fl, flag); len(configName) > 0 {
		c.SetConfigName(configName)
		return true
	}

	return false
}

// BindConfigFile passes a nonempty flag value to c.SetConfigFile, which makes viper skip its
// search paths entirely.  The return indicates whether a file was bound.
func BindConfigFile(c Configer, fl FlagLookup, flag string) bool {
	if configFile := flagValue(fl, flag); len(configFile) > 0 {
		c.SetConfigFile(configFile)
		return true
	}

	return false
}

// BindConfig prefers an explicit file over a name.  It returns true if either was bound.
func BindConfig(c Configer, fl FlagLookup, fileFlag, nameFlag string) bool {
	return BindConfigFile(c, fl, fileFlag) || BindConfigName(c, fl, nameFlag)
}
