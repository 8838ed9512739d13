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
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"throttlecrab/internal/ratelimiter/server"
	"throttlecrab/internal/ratelimiter/telemetry"
	"throttlecrab/internal/ratelimiter/transport/throttlepb"
	"throttlecrab/pkg/gcra"
)

// GRPCTransport serves the single-method RateLimiter gRPC service.
type GRPCTransport struct {
	addr    string
	limiter *server.Handle
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// NewGRPCTransport returns a gRPC transport bound to host:port.
func NewGRPCTransport(host string, port int, limiter *server.Handle, metrics *telemetry.Metrics, log zerolog.Logger) *GRPCTransport {
	return &GRPCTransport{
		addr:    joinHostPort(host, port),
		limiter: limiter,
		metrics: metrics,
		log:     log.With().Str("transport", telemetry.TransportGRPC).Logger(),
	}
}

// Name implements Transport.
func (t *GRPCTransport) Name() string { return telemetry.TransportGRPC }

// Serve implements Transport.
func (t *GRPCTransport) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	throttlepb.RegisterRateLimiterServer(srv, &rateLimiterService{
		limiter: t.limiter,
		metrics: t.metrics,
	})

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	t.log.Info().Str("addr", t.addr).Msg("grpc transport listening")
	return srv.Serve(listener)
}

// RegisterOn exposes the service on an externally managed grpc.Server, used
// by in-process tests.
func (t *GRPCTransport) RegisterOn(srv *grpc.Server) {
	throttlepb.RegisterRateLimiterServer(srv, &rateLimiterService{
		limiter: t.limiter,
		metrics: t.metrics,
	})
}

type rateLimiterService struct {
	throttlepb.UnimplementedRateLimiterServer
	limiter *server.Handle
	metrics *telemetry.Metrics
}

func (s *rateLimiterService) Throttle(ctx context.Context, req *throttlepb.ThrottleRequest) (*throttlepb.ThrottleResponse, error) {
	if req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "key is required")
	}

	quantity := req.GetQuantity()
	if quantity == 0 {
		quantity = 1
	}
	timestamp := time.Now()
	if req.GetTimestamp() != 0 {
		timestamp = time.Unix(0, req.GetTimestamp())
	}

	start := time.Now()
	resp, err := s.limiter.Throttle(ctx, server.ThrottleRequest{
		Key:            req.GetKey(),
		MaxBurst:       req.GetMaxBurst(),
		CountPerPeriod: req.GetCountPerPeriod(),
		Period:         req.GetPeriod(),
		Quantity:       quantity,
		Timestamp:      timestamp,
	})
	if err != nil {
		s.metrics.RecordError(telemetry.TransportGRPC, time.Since(start))
		var nq *gcra.NegativeQuantityError
		if errors.Is(err, gcra.ErrInvalidRateLimit) || errors.As(err, &nq) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	s.metrics.RecordRequest(telemetry.TransportGRPC, time.Since(start), resp.Allowed)

	return &throttlepb.ThrottleResponse{
		Allowed:    resp.Allowed,
		Limit:      resp.Limit,
		Remaining:  resp.Remaining,
		RetryAfter: resp.RetryAfter,
		ResetAfter: resp.ResetAfter,
	}, nil
}
