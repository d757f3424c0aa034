// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultNameFlag = "name"
	DefaultFileFlag = "file"
)

// AddFlags registers the --file and --name flags that New consults.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP(DefaultFileFlag, "f", "", "the fully qualified path of the configuration file")
	fs.String(DefaultNameFlag, "", "the configuration file name, without extension, searched for in the standard paths")
}

// New produces a Viper for the given application.  Configuration is searched for in the
// standard paths under the application's name unless the flagset selects a file or name.
// Environment variables prefixed with the upper-cased application name override file values,
// with dots in keys replaced by underscores.  The flagset, if supplied, is bound as well.
//
// A missing configuration file is only an error when one was explicitly requested with --file.
func New(applicationName string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	AddStandardConfigPaths(v, applicationName)
	v.SetConfigName(applicationName)
	v.SetEnvPrefix(strings.ToUpper(applicationName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("unable to bind flags: %w", err)
		}

		BindConfig(v, fs, DefaultFileFlag, DefaultNameFlag)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}

	return v, nil
}
