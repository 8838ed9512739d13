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
	"io"
	"net"
	"time"

	"github.com/rs/zerolog"

	"throttlecrab/internal/ratelimiter/server"
	"throttlecrab/internal/ratelimiter/telemetry"
)

// NativeTransport serves the fixed-layout binary protocol over TCP. Clients
// keep the connection open and pipeline requests; any malformed frame closes
// the connection.
type NativeTransport struct {
	addr    string
	limiter *server.Handle
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// NewNativeTransport returns a native transport bound to host:port.
func NewNativeTransport(host string, port int, limiter *server.Handle, metrics *telemetry.Metrics, log zerolog.Logger) *NativeTransport {
	return &NativeTransport{
		addr:    joinHostPort(host, port),
		limiter: limiter,
		metrics: metrics,
		log:     log.With().Str("transport", telemetry.TransportNative).Logger(),
	}
}

// Name implements Transport.
func (t *NativeTransport) Name() string { return telemetry.TransportNative }

// Serve implements Transport.
func (t *NativeTransport) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		return err
	}
	closeOnDone(ctx, listener)
	t.log.Info().Str("addr", t.addr).Msg("native transport listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go t.handleConn(ctx, conn)
	}
}

func (t *NativeTransport) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	t.metrics.ConnOpened(telemetry.TransportNative)
	defer t.metrics.ConnClosed(telemetry.TransportNative)
	t.log.Debug().Str("peer", conn.RemoteAddr().String()).Msg("connection opened")

	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}

	header := make([]byte, RequestHeaderSize)
	keyBuf := make([]byte, MaxKeyLength)
	writeBuf := make([]byte, 0, ResponseSize)

	for {
		// cmd + key_len first: the command byte gates everything else.
		if _, err := io.ReadFull(conn, header[:2]); err != nil {
			if !errors.Is(err, io.EOF) {
				t.log.Debug().Err(err).Msg("read failed")
			}
			return
		}

		if header[0] != CmdThrottle {
			t.log.Warn().Uint8("cmd", header[0]).Msg("unknown command")
			return
		}

		if _, err := io.ReadFull(conn, header[2:RequestHeaderSize]); err != nil {
			t.log.Debug().Err(err).Msg("short request header")
			return
		}

		frame, keyLen, err := DecodeRequestHeader(header)
		if err != nil {
			t.log.Warn().Err(err).Msg("bad request header")
			return
		}

		key := keyBuf[:keyLen]
		if _, err := io.ReadFull(conn, key); err != nil {
			t.log.Debug().Err(err).Msg("short key read")
			return
		}
		if err := DecodeRequestKey(&frame, key); err != nil {
			t.log.Warn().Err(err).Msg("invalid key")
			return
		}

		start := time.Now()
		resp, err := t.limiter.Throttle(ctx, server.ThrottleRequest{
			Key:            frame.Key,
			MaxBurst:       frame.MaxBurst,
			CountPerPeriod: frame.CountPerPeriod,
			Period:         frame.Period,
			Quantity:       frame.Quantity,
			Timestamp:      time.Unix(0, frame.TimestampNanos),
		})

		var out ResponseFrame
		if err != nil {
			t.log.Error().Err(err).Msg("rate limit decision failed")
			t.metrics.RecordError(telemetry.TransportNative, time.Since(start))
			// ok=0 is reserved for decision-engine errors; the connection
			// stays usable.
		} else {
			t.metrics.RecordRequest(telemetry.TransportNative, time.Since(start), resp.Allowed)
			out = ResponseFrame{
				OK:             true,
				Allowed:        resp.Allowed,
				Limit:          resp.Limit,
				Remaining:      resp.Remaining,
				RetryAfterSecs: resp.RetryAfter,
				ResetAfterSecs: resp.ResetAfter,
			}
		}

		writeBuf = AppendResponse(writeBuf[:0], &out)
		if _, err := conn.Write(writeBuf); err != nil {
			t.log.Debug().Err(err).Msg("write failed")
			return
		}
	}
}
