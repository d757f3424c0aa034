// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DecodeHook is the hook chain used when unmarshaling configuration.  Strings decode into
// time.Duration and into any type implementing encoding.TextUnmarshaler, and comma-separated
// strings decode into slices.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

type unmarshaler interface {
	Unmarshal(interface{}, ...viper.DecoderConfigOption) error
}

// Unmarshal decodes configuration into each of the given values in order using DecodeHook,
// stopping at the first error.
func Unmarshal(u unmarshaler, v ...interface{}) error {
	var err error
	for i := 0; err == nil && i < len(v); i++ {
		err = u.Unmarshal(v[i], viper.DecodeHook(DecodeHook()))
	}

	return err
}

type defaulter interface {
	SetDefault(string, interface{})
}

// Defaults maps configuration keys onto their default values
type Defaults map[string]interface{}

// ApplyDefaults registers each default with the given defaulter
func ApplyDefaults(d defaulter, v Defaults) {
	for key, value := range v {
		d.SetDefault(key, value)
	}
}
