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

// Package client is a minimal client for the native binary protocol. It
// keeps one TCP connection open and reuses it for every request. Each call
// writes one frame and waits for its response before returning, so requests
// are not pipelined. A Client is not safe for concurrent use.
package client

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"throttlecrab/internal/ratelimiter/transport"
)

// Result is the quota state returned for a throttle call. Durations are
// whole seconds, as carried on the wire.
type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter int64
	ResetAfter int64
}

// ErrServerError is returned when the server answers ok=0: the decision
// engine failed internally. The connection remains usable.
var ErrServerError = errors.New("server reported an internal error")

// Client is one native-protocol connection.
type Client struct {
	conn     net.Conn
	writeBuf []byte
	readBuf  [transport.ResponseSize]byte
}

// Dial connects to a native transport at addr.
func Dial(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}
	return &Client{conn: conn}, nil
}

// Throttle asks whether key may consume quantity tokens under the policy,
// stamped with the local clock.
func (c *Client) Throttle(key string, maxBurst, countPerPeriod, period, quantity int64) (Result, error) {
	return c.ThrottleAt(key, maxBurst, countPerPeriod, period, quantity, time.Now())
}

// ThrottleAt is Throttle with an explicit timestamp.
func (c *Client) ThrottleAt(key string, maxBurst, countPerPeriod, period, quantity int64, at time.Time) (Result, error) {
	frame := transport.RequestFrame{
		Cmd:            transport.CmdThrottle,
		Key:            key,
		MaxBurst:       maxBurst,
		CountPerPeriod: countPerPeriod,
		Period:         period,
		Quantity:       quantity,
		TimestampNanos: at.UnixNano(),
	}

	var err error
	c.writeBuf, err = transport.AppendRequest(c.writeBuf[:0], &frame)
	if err != nil {
		return Result{}, err
	}
	if _, err := c.conn.Write(c.writeBuf); err != nil {
		return Result{}, fmt.Errorf("write request: %w", err)
	}

	if _, err := io.ReadFull(c.conn, c.readBuf[:]); err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	resp, err := transport.DecodeResponse(c.readBuf[:])
	if err != nil {
		return Result{}, err
	}
	if !resp.OK {
		return Result{}, ErrServerError
	}

	return Result{
		Allowed:    resp.Allowed,
		Limit:      resp.Limit,
		Remaining:  resp.Remaining,
		RetryAfter: resp.RetryAfterSecs,
		ResetAfter: resp.ResetAfterSecs,
	}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
