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
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"throttlecrab/internal/ratelimiter/server"
	"throttlecrab/internal/ratelimiter/telemetry"
)

// Per-connection limits for the Redis transport.
const (
	redisMaxBufferSize = 64 * 1024
	redisIdleTimeout   = 5 * time.Minute
	redisReadChunk     = 1024
)

// RedisTransport serves a RESP subset so standard Redis clients can talk to
// the rate limiter:
//
//	THROTTLE key max_burst count_per_period period [quantity]
//	PING
//	QUIT
//
// THROTTLE answers with a 5-element integer array: allowed, limit,
// remaining, reset_after (s), retry_after (s).
type RedisTransport struct {
	addr    string
	limiter *server.Handle
	metrics *telemetry.Metrics
	log     zerolog.Logger
}

// NewRedisTransport returns a Redis transport bound to host:port.
func NewRedisTransport(host string, port int, limiter *server.Handle, metrics *telemetry.Metrics, log zerolog.Logger) *RedisTransport {
	return &RedisTransport{
		addr:    joinHostPort(host, port),
		limiter: limiter,
		metrics: metrics,
		log:     log.With().Str("transport", telemetry.TransportRedis).Logger(),
	}
}

// Name implements Transport.
func (t *RedisTransport) Name() string { return telemetry.TransportRedis }

// Serve implements Transport.
func (t *RedisTransport) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		return err
	}
	closeOnDone(ctx, listener)
	t.log.Info().Str("addr", t.addr).Msg("redis transport listening")

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

func (t *RedisTransport) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	t.metrics.ConnOpened(telemetry.TransportRedis)
	defer t.metrics.ConnClosed(telemetry.TransportRedis)

	var (
		parser  RespParser
		buffer  []byte
		chunk   = make([]byte, redisReadChunk)
		outBuf  []byte
	)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(redisIdleTimeout))
		n, err := conn.Read(chunk)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				t.log.Debug().Str("peer", conn.RemoteAddr().String()).Msg("idle connection timed out")
			}
			return
		}
		buffer = append(buffer, chunk[:n]...)

		if len(buffer) > redisMaxBufferSize {
			t.log.Warn().Str("peer", conn.RemoteAddr().String()).Msg("unparsed buffer limit exceeded")
			return
		}

		for {
			value, consumed, err := parser.Parse(buffer)
			if err != nil {
				t.log.Warn().Err(err).Msg("RESP parse error")
				return
			}
			if consumed == 0 {
				break
			}
			buffer = buffer[consumed:]

			response, quit := t.processCommand(ctx, value)
			outBuf = AppendRespValue(outBuf[:0], response)
			if _, err := conn.Write(outBuf); err != nil {
				return
			}
			if quit {
				return
			}
		}
	}
}

// processCommand executes one decoded command array. The second return is
// true when the connection should close (QUIT).
func (t *RedisTransport) processCommand(ctx context.Context, value RespValue) (RespValue, bool) {
	if value.Kind != RespArray || len(value.Elems) == 0 {
		return respErr("ERR expected a command array"), false
	}

	name, ok := bulkArg(value.Elems[0])
	if !ok {
		return respErr("ERR invalid command format"), false
	}

	switch strings.ToUpper(name) {
	case "PING":
		return RespValue{Kind: RespSimpleString, Str: "PONG"}, false
	case "QUIT":
		return RespValue{Kind: RespSimpleString, Str: "OK"}, true
	case "THROTTLE":
		return t.handleThrottle(ctx, value.Elems[1:]), false
	default:
		return respErr(fmt.Sprintf("ERR unknown command '%s'", name)), false
	}
}

func (t *RedisTransport) handleThrottle(ctx context.Context, args []RespValue) RespValue {
	if len(args) < 4 || len(args) > 5 {
		return respErr("ERR wrong number of arguments for 'THROTTLE'")
	}

	key, ok := bulkArg(args[0])
	if !ok {
		return respErr("ERR invalid key")
	}

	nums := make([]int64, 0, 4)
	for _, arg := range args[1:] {
		s, ok := bulkArg(arg)
		if !ok {
			return respErr("ERR value is not an integer or out of range")
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return respErr("ERR value is not an integer or out of range")
		}
		nums = append(nums, n)
	}
	quantity := int64(1)
	if len(nums) == 4 {
		quantity = nums[3]
	}

	start := time.Now()
	resp, err := t.limiter.Throttle(ctx, server.ThrottleRequest{
		Key:            key,
		MaxBurst:       nums[0],
		CountPerPeriod: nums[1],
		Period:         nums[2],
		Quantity:       quantity,
		Timestamp:      time.Now(),
	})
	if err != nil {
		t.metrics.RecordError(telemetry.TransportRedis, time.Since(start))
		return respErr("ERR " + err.Error())
	}
	t.metrics.RecordRequest(telemetry.TransportRedis, time.Since(start), resp.Allowed)

	allowed := int64(0)
	if resp.Allowed {
		allowed = 1
	}
	return RespValue{Kind: RespArray, Elems: []RespValue{
		{Kind: RespInteger, Int: allowed},
		{Kind: RespInteger, Int: resp.Limit},
		{Kind: RespInteger, Int: resp.Remaining},
		{Kind: RespInteger, Int: resp.ResetAfter},
		{Kind: RespInteger, Int: resp.RetryAfter},
	}}
}

// bulkArg extracts a command argument; clients send them as bulk strings,
// inline commands may arrive as simple strings.
func bulkArg(v RespValue) (string, bool) {
	switch v.Kind {
	case RespBulkString, RespSimpleString:
		return v.Str, true
	default:
		return "", false
	}
}

func respErr(msg string) RespValue {
	return RespValue{Kind: RespError, Str: msg}
}
