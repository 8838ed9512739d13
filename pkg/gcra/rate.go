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

// Package gcra implements the Generic Cell Rate Algorithm for rate limiting.
//
// GCRA stores a single timestamp per key, the theoretical arrival time (TAT)
// of the next conforming request, instead of a token bucket. It is
// arithmetically equivalent to a leaky bucket with controllable burst while
// needing only one compare-and-swap per decision.
//
// The package provides the decision engine ([RateLimiter]) and three
// interchangeable in-memory stores that differ only in when they reclaim
// expired entries: [PeriodicStore], [ProbabilisticStore], and
// [AdaptiveStore].
package gcra

import "math"

const nanosPerSecond int64 = 1_000_000_000

// EmissionInterval converts a rate of countPerPeriod requests every
// periodSeconds into the duration between successive token emissions, in
// nanoseconds.
//
// Non-positive inputs yield math.MaxInt64, an effectively infinite interval
// under which every request is denied. A computed interval of zero (more than
// one emission per nanosecond) is clamped to 1 ns so that downstream
// divisions by the interval are always defined.
func EmissionInterval(countPerPeriod, periodSeconds int64) int64 {
	if countPerPeriod <= 0 || periodSeconds <= 0 {
		return math.MaxInt64
	}
	interval := satMul64(periodSeconds, nanosPerSecond) / countPerPeriod
	if interval == 0 {
		interval = 1
	}
	return interval
}
