package main

import (
	"carlot/internal/api"
	"carlot/internal/config"
	"carlot/internal/garage"
	"carlot/pkg/logger"
	"carlot/pkg/metrics"
	"carlot/pkg/plate"
	"carlot/pkg/storage"
	"carlot/pkg/storage/memory"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// setupGarage builds the in-memory store, seeds it unless disabled and
// returns the garage serving it.
func setupGarage(ctx context.Context, cfg *config.Config, m *metrics.Metrics, tp trace.TracerProvider) garage.Garage {
	policy, err := storage.ParsePolicy(cfg.Store.Uniqueness)
	if err != nil {
		logger.Fatal(ctx, "invalid store configuration", zap.Error(err))
	}

	strg := memory.New(memory.Options{Policy: policy})
	plates := plate.NewSwedish()

	if !cfg.Store.SkipSeed {
		if err := memory.Seed(ctx, strg, plates); err != nil {
			logger.Fatal(ctx, "could not seed store", zap.Error(err))
		}
	}

	g, err := garage.New(garage.Deps{
		Storage:        strg,
		Plates:         plates,
		MeterProvider:  m.MeterProvider,
		TracerProvider: tp,
	}, garage.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create garage", zap.Error(err))
	}

	logger.Info(ctx, "garage ready", zap.String("uniqueness", policy.Name()), zap.Int("cars", strg.Len()))

	return g
}

func setupServer(ctx context.Context, cfg *config.Config, g garage.Garage, m *metrics.Metrics) *http.Server {
	server, err := api.NewServer(api.Deps{
		Garage:        g,
		Gatherer:      m.Registry,
		MeterProvider: m.MeterProvider,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	return server
}

// listenUntilDone serves until ctx is done, then shuts the server down
// gracefully within shutdownTimeout. A listener failure (e.g. the address is
// in use) is returned right away.
func listenUntilDone(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	failed := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		return fmt.Errorf("could not start webserver: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "stopping webserver...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not stop webserver: %w", err)
	}

	return nil
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the GraphQL and REST API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, err := metrics.New()
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}
			defer func() {
				if err := m.MeterProvider.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
				}
			}()

			// spans are sampled so trace IDs in logs correlate one request's
			// operations; no exporter is configured.
			tp := sdktrace.NewTracerProvider()
			otel.SetTracerProvider(tp)
			defer func() {
				if err := tp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not stop tracer provider", zap.Error(err))
				}
			}()

			server := setupServer(ctx, a.cfg, setupGarage(ctx, a.cfg, m, tp), m)

			return listenUntilDone(ctx, server, a.cfg.GracefulShutdownTimeout)
		},
	}

	return cmd
}
