// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command throttlecrab-server runs the rate-limiting service: one
// single-writer GCRA engine behind any combination of the native binary,
// HTTP, gRPC, and Redis transports.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"throttlecrab/internal/ratelimiter/config"
	"throttlecrab/internal/ratelimiter/server"
	"throttlecrab/internal/ratelimiter/telemetry"
	"throttlecrab/internal/ratelimiter/transport"
	"throttlecrab/pkg/gcra"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.ListEnvVars {
		fmt.Print(config.EnvVarHelp())
		return
	}

	log := newLogger(cfg.LogLevel)

	metrics := telemetry.New()
	actor := server.NewActor(buildStore(cfg.Store), cfg.QueueDepth, metrics)
	actor.Start()
	handle := actor.Handle()

	log.Info().
		Str("store", string(cfg.Store.Type)).
		Int("capacity", cfg.Store.Capacity).
		Int("queue_depth", cfg.QueueDepth).
		Msg("starting throttlecrab server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var transports []transport.Transport
	if cfg.Native.Enabled {
		transports = append(transports,
			transport.NewNativeTransport(cfg.Native.Host, cfg.Native.Port, handle, metrics, log))
	}
	if cfg.HTTP.Enabled {
		transports = append(transports,
			transport.NewHTTPTransport(cfg.HTTP.Host, cfg.HTTP.Port, handle, metrics, log))
	}
	if cfg.GRPC.Enabled {
		transports = append(transports,
			transport.NewGRPCTransport(cfg.GRPC.Host, cfg.GRPC.Port, handle, metrics, log))
	}
	if cfg.Redis.Enabled {
		transports = append(transports,
			transport.NewRedisTransport(cfg.Redis.Host, cfg.Redis.Port, handle, metrics, log))
	}

	errCh := make(chan error, len(transports)+1)
	for _, t := range transports {
		t := t
		go func() {
			if err := t.Serve(ctx); err != nil {
				errCh <- fmt.Errorf("%s transport: %w", t.Name(), err)
				return
			}
			errCh <- nil
		}()
	}

	if cfg.Metrics.Enabled {
		go func() {
			errCh <- serveMetrics(ctx, cfg.Metrics, metrics, log)
		}()
	}

	exitCode := 0
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("transport failed")
			exitCode = 1
		}
	}

	stop()
	actor.Stop()
	log.Info().Msg("server stopped")
	os.Exit(exitCode)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func buildStore(cfg config.StoreConfig) gcra.Store {
	switch cfg.Type {
	case config.StoreProbabilistic:
		return gcra.NewProbabilisticStoreWith(cfg.Capacity, cfg.CleanupProbability)
	case config.StoreAdaptive:
		return gcra.NewAdaptiveStoreWith(gcra.AdaptiveConfig{
			Capacity:      cfg.Capacity,
			MinInterval:   time.Duration(cfg.MinIntervalSecs) * time.Second,
			MaxInterval:   time.Duration(cfg.MaxIntervalSecs) * time.Second,
			MaxOperations: cfg.MaxOperations,
		})
	default:
		return gcra.NewPeriodicStoreWith(cfg.Capacity, time.Duration(cfg.CleanupIntervalSecs)*time.Second)
	}
}

func serveMetrics(ctx context.Context, cfg config.TransportConfig, metrics *telemetry.Metrics, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("metrics endpoint listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
