// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/xmidt-org/pulse"
	"github.com/xmidt-org/pulse/logging"
	"github.com/xmidt-org/pulse/xmetrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serves an HTTP API that emits pulses on the target.",
		Long: `serve exposes POST /pulse?duration=<duration>, which emits one pulse on the configured ` +
			`target, and GET /metrics.  Concurrent requests are serialized so pulses never overlap.  ` +
			`A client that disconnects mid-pulse interrupts it, and LOW is sent right away unless ` +
			`--settle=false, in which case the target is left HIGH.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	addPulseFlags(serve.Flags(), true)
	serve.Flags().DurationP("duration", "d", DefaultDuration, "the pulse duration used when a request doesn't supply one")
	serve.Flags().StringP("address", "a", DefaultAddress, "the listen address of the HTTP API")
	return serve
}

// requestLogging places a request-scoped logger in each request's context and logs each request once it completes
func requestLogging(logger *zap.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			var (
				start         = time.Now()
				requestLogger = logger.With(
					zap.String("method", request.Method),
					zap.String("path", request.URL.Path),
					zap.String("remoteAddr", request.RemoteAddr),
				)
			)

			next.ServeHTTP(response, request.WithContext(logging.With(request.Context(), requestLogger)))
			requestLogger.Debug("request complete", zap.Duration("elapsed", time.Since(start)))
		})
	}
}

func tracing(tp trace.TracerProvider) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, applicationName, otelhttp.WithTracerProvider(tp))
	}
}

func newRouter(logger *zap.Logger, tp trace.TracerProvider, gatherer prometheus.Gatherer, pulses http.Handler) http.Handler {
	router := mux.NewRouter()
	router.Handle("/pulse", pulses).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return alice.New(tracing(tp), requestLogging(logger)).Then(router)
}

// newServeHandler assembles the emitter stack and HTTP routes around an open target
func newServeHandler(cfg *Config, logger *zap.Logger, tp trace.TracerProvider, registry xmetrics.Registry, target pulse.Sender) http.Handler {
	emitter := pulse.Exclusive(
		pulse.Instrument(
			pulse.New(pulse.WithSettle(cfg.Settle)),
			pulse.WithLogger(logger),
			pulse.WithMeasures(pulse.NewMeasures(registry)),
			pulse.WithTracer(tp.Tracer(pulse.TracerName)),
		),
	)

	return newRouter(logger, tp, registry, &pulseHandler{
		emitter:  emitter,
		target:   target,
		duration: cfg.Duration,
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(&cfg.Log)
	defer logger.Sync()

	tp, shutdownTracing, err := newTracerProvider(cfg.Trace, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	defer shutdownTracing(context.Background())

	registry, err := xmetrics.NewRegistry(&cfg.Metrics, pulse.Metrics)
	if err != nil {
		logger.Error("unable to create metrics registry", zap.Error(err))
		return err
	}

	target, err := openTarget(ctx, cfg.Target, cmd.OutOrStdout())
	if err != nil {
		logger.Error("unable to open target", zap.String("target", cfg.Target), zap.Error(err))
		return err
	}

	defer target.Close()

	server := &http.Server{
		Addr:              cfg.Address,
		Handler:           newServeHandler(cfg, logger, tp, registry, target),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	logger.Info("serving pulses", zap.String("address", cfg.Address), zap.String("target", cfg.Target))

	select {
	case err = <-serverErr:
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
	}

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	return err
}
