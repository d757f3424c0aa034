// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/pulse/logging"
	"github.com/xmidt-org/pulse/xmetrics"
	"github.com/xmidt-org/pulse/xviper"
)

const (
	DefaultTarget   = "stdout"
	DefaultDuration = 100 * time.Millisecond
	DefaultAddress  = ":8080"
)

// TraceConfig selects the span exporter.  "stdout" writes spans to standard output;
// anything else disables tracing.
type TraceConfig struct {
	Exporter string
}

// Config is the full set of options for both emit and serve.  Every key may be set in the
// configuration file, by a PULSE_ environment variable, or by the matching flag.  Log is
// read from the log subkey of the configuration file.
type Config struct {
	Target   string
	Duration time.Duration
	Settle   bool
	Address  string
	Trace    TraceConfig
	Log      logging.Options `mapstructure:"-"`
	Metrics  xmetrics.Options
}

func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v, err := xviper.New(applicationName, fs)
	if err != nil {
		return nil, err
	}

	xviper.ApplyDefaults(v, xviper.Defaults{
		"target":         DefaultTarget,
		"duration":       DefaultDuration,
		"address":        DefaultAddress,
		"trace.exporter": "none",
		"log.level":      "INFO",
	})

	cfg := new(Config)
	if err := xviper.Unmarshal(v, cfg); err != nil {
		return nil, err
	}

	lo, err := logging.FromViper(logging.Sub(v))
	if err != nil {
		return nil, err
	}

	cfg.Log = *lo
	return cfg, nil
}

func addPulseFlags(fs *pflag.FlagSet, settle bool) {
	fs.StringP("target", "t", DefaultTarget, "where markers are sent: stdout, file:<path>, gpio:<pin>, ws://... or wss://...")
	fs.Bool("settle", settle, "send LOW immediately if the pulse is interrupted, rather than leaving the line HIGH")
}
