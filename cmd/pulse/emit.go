// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xmidt-org/pulse"
	"github.com/xmidt-org/pulse/logging"
	"go.uber.org/zap"
)

func newEmitCommand() *cobra.Command {
	emit := &cobra.Command{
		Use:   "emit",
		Short: "Emits a single pulse on the target.",
		Args:  cobra.NoArgs,
		RunE:  runEmit,
	}

	addPulseFlags(emit.Flags(), false)
	emit.Flags().DurationP("duration", "d", DefaultDuration, "how long the line is held HIGH")
	return emit
}

func runEmit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// log output would interleave with markers on stdout
	logger := logging.New(&cfg.Log)
	if cfg.Target == DefaultTarget && len(cfg.Log.File) == 0 {
		logger = zap.NewNop()
	}

	defer logger.Sync()

	tp, shutdown, err := newTracerProvider(cfg.Trace, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	defer shutdown(context.Background())

	target, err := openTarget(ctx, cfg.Target, cmd.OutOrStdout())
	if err != nil {
		logger.Error("unable to open target", zap.String("target", cfg.Target), zap.Error(err))
		return err
	}

	defer target.Close()

	emitter := pulse.Instrument(
		pulse.New(pulse.WithSettle(cfg.Settle)),
		pulse.WithLogger(logger),
		pulse.WithTracer(tp.Tracer(pulse.TracerName)),
	)

	return emitter.Emit(ctx, target, cfg.Duration)
}
