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

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"throttlecrab/internal/ratelimiter/server"
	"throttlecrab/internal/ratelimiter/telemetry"
	"throttlecrab/pkg/gcra"
)

// throttleRequestJSON is the POST /throttle body. Quantity defaults to 1 and
// timestamp (unix seconds) to the server clock when omitted.
type throttleRequestJSON struct {
	Key            string `json:"key"`
	MaxBurst       int64  `json:"max_burst"`
	CountPerPeriod int64  `json:"count_per_period"`
	Period         int64  `json:"period"`
	Quantity       *int64 `json:"quantity"`
	Timestamp      *int64 `json:"timestamp"`
}

type throttleResponseJSON struct {
	Allowed    bool  `json:"allowed"`
	Limit      int64 `json:"limit"`
	Remaining  int64 `json:"remaining"`
	ResetAfter int64 `json:"reset_after"`
	RetryAfter int64 `json:"retry_after"`
}

// HTTPTransport serves the JSON surface: POST /throttle and GET /health.
type HTTPTransport struct {
	addr    string
	limiter *server.Handle
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// NewHTTPTransport returns an HTTP transport bound to host:port.
func NewHTTPTransport(host string, port int, limiter *server.Handle, metrics *telemetry.Metrics, log zerolog.Logger) *HTTPTransport {
	return &HTTPTransport{
		addr:    joinHostPort(host, port),
		limiter: limiter,
		metrics: metrics,
		log:     log.With().Str("transport", telemetry.TransportHTTP).Logger(),
	}
}

// Name implements Transport.
func (t *HTTPTransport) Name() string { return telemetry.TransportHTTP }

// Serve implements Transport.
func (t *HTTPTransport) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/throttle", t.handleThrottle)
	mux.HandleFunc("/health", handleHealth)

	srv := &http.Server{
		Addr:         t.addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	t.log.Info().Str("addr", t.addr).Msg("http transport listening")
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (t *HTTPTransport) handleThrottle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body throttleRequestJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	quantity := int64(1)
	if body.Quantity != nil {
		quantity = *body.Quantity
	}
	timestamp := time.Now()
	if body.Timestamp != nil {
		timestamp = time.Unix(*body.Timestamp, 0)
	}

	start := time.Now()
	resp, err := t.limiter.Throttle(r.Context(), server.ThrottleRequest{
		Key:            body.Key,
		MaxBurst:       body.MaxBurst,
		CountPerPeriod: body.CountPerPeriod,
		Period:         body.Period,
		Quantity:       quantity,
		Timestamp:      timestamp,
	})
	if err != nil {
		t.metrics.RecordError(telemetry.TransportHTTP, time.Since(start))
		status := http.StatusInternalServerError
		var nq *gcra.NegativeQuantityError
		if errors.Is(err, gcra.ErrInvalidRateLimit) || errors.As(err, &nq) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	t.metrics.RecordRequest(telemetry.TransportHTTP, time.Since(start), resp.Allowed)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(throttleResponseJSON{
		Allowed:    resp.Allowed,
		Limit:      resp.Limit,
		Remaining:  resp.Remaining,
		ResetAfter: resp.ResetAfter,
		RetryAfter: resp.RetryAfter,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
