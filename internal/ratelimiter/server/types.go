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

// Package server wires the GCRA decision engine behind a single-writer
// owner goroutine. Transports construct ThrottleRequests and submit them
// through a Handle; the owner serializes them against the store.
package server

import (
	"time"

	"throttlecrab/pkg/gcra"
)

// ThrottleRequest is one decision to make: may this caller consume Quantity
// tokens against Key under the given policy, as of Timestamp.
type ThrottleRequest struct {
	Key            string
	MaxBurst       int64
	CountPerPeriod int64
	Period         int64 // seconds
	Quantity       int64
	Timestamp      time.Time
}

// ThrottleResponse carries the verdict and quota state back to a transport.
// Durations are whole seconds, truncated, matching every external surface.
type ThrottleResponse struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAfter int64 // seconds
	RetryAfter int64 // seconds
}

func responseFrom(allowed bool, res gcra.RateLimitResult) ThrottleResponse {
	return ThrottleResponse{
		Allowed:    allowed,
		Limit:      res.Limit,
		Remaining:  res.Remaining,
		ResetAfter: int64(res.ResetAfter / time.Second),
		RetryAfter: int64(res.RetryAfter / time.Second),
	}
}
