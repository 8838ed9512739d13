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

package gcra

import (
	"fmt"
	"time"
)

// maxCASRetries bounds the update loop. With a single writer the retry never
// fires; the bound defends against a store that reclaims an entry between
// Get and CompareAndSwap (e.g. a future sharded implementation).
const maxCASRetries = 10

// RateLimitResult describes the quota state after a decision.
type RateLimitResult struct {
	// Limit is the maximum number of requests allowed in a burst.
	Limit int64
	// Remaining is the number of whole further emissions available before
	// the limit is hit.
	Remaining int64
	// ResetAfter is the time until the bucket fully refills.
	ResetAfter time.Duration
	// RetryAfter is the wait until the next request would be allowed; zero
	// if this request was allowed.
	RetryAfter time.Duration
}

// RateLimiter is the GCRA decision engine. It owns its store by reference
// for the life of the process; nothing else may mutate the store.
type RateLimiter struct {
	store Store
}

// NewRateLimiter returns a rate limiter backed by store.
func NewRateLimiter(store Store) *RateLimiter {
	return &RateLimiter{store: store}
}

// Store exposes the backing store for introspection (entry counts, eviction
// totals). Callers must not mutate through it.
func (l *RateLimiter) Store() Store { return l.store }

// RateLimit answers whether key may consume quantity tokens right now under
// the policy (maxBurst, countPerPeriod, period seconds), and updates the
// stored TAT when the answer is yes.
//
// The returned bool is the verdict; the RateLimitResult is valid whenever
// the error is nil. Validation errors (*NegativeQuantityError,
// ErrInvalidRateLimit) leave the store untouched.
func (l *RateLimiter) RateLimit(key string, maxBurst, countPerPeriod, period, quantity int64, now time.Time) (bool, RateLimitResult, error) {
	if quantity < 0 {
		return false, RateLimitResult{}, &NegativeQuantityError{Quantity: quantity}
	}
	if maxBurst <= 0 || countPerPeriod <= 0 || period <= 0 {
		return false, RateLimitResult{}, ErrInvalidRateLimit
	}

	interval := EmissionInterval(countPerPeriod, period)
	tolerance := satMul64(interval, maxBurst-1)

	nowNS, err := nanosSinceEpoch(now, period)
	if err != nil {
		return false, RateLimitResult{}, err
	}

	retries := 0
	for {
		stored, found := l.store.Get(key, now)

		// A fresh key starts one emission interval in the past so the first
		// request is allowed and consumes exactly its quantity; a returning
		// key is clamped so long-idle keys reconstitute full burst credit.
		var tat int64
		if found {
			tat = stored
			if floor := satSub64(nowNS, tolerance); tat < floor {
				tat = floor
			}
		} else {
			tat = satSub64(nowNS, interval)
		}

		newTAT := satAdd64(tat, satMul64(interval, quantity))
		allowAt := satSub64(newTAT, tolerance)
		allowed := nowNS >= allowAt

		if allowed {
			// The entry self-expires once it would next grant a full burst.
			ttl := time.Duration(satAdd64(satSub64(newTAT, nowNS), tolerance))

			var updated bool
			if found {
				updated = l.store.CompareAndSwap(key, stored, newTAT, ttl, now)
			} else {
				updated = l.store.SetIfNotExists(key, newTAT, ttl, now)
			}
			if !updated {
				retries++
				if retries >= maxCASRetries {
					return false, RateLimitResult{}, &InternalError{Reason: "max update retries exceeded"}
				}
				continue
			}
		}

		effectiveTAT := tat
		if allowed {
			effectiveTAT = newTAT
		}

		tatFromNow := satSub64(effectiveTAT, nowNS)
		var remaining int64
		if tatFromNow < tolerance {
			remaining = satSub64(tolerance, tatFromNow) / interval
		}

		resetAfter := clampNonNegative(satAdd64(satSub64(effectiveTAT, nowNS), tolerance))
		var retryAfter int64
		if !allowed {
			retryAfter = clampNonNegative(satSub64(allowAt, nowNS))
		}

		return allowed, RateLimitResult{
			Limit:      maxBurst,
			Remaining:  remaining,
			ResetAfter: time.Duration(resetAfter),
			RetryAfter: time.Duration(retryAfter),
		}, nil
	}
}

// nanosSinceEpoch converts now to unix nanoseconds. A clock before the epoch
// falls back to the wall clock minus one period, which keeps the system
// operating with a fresh window; failing that too is an internal error.
func nanosSinceEpoch(now time.Time, period int64) (int64, error) {
	if !now.Before(time.Unix(0, 0)) {
		return now.UnixNano(), nil
	}
	current := time.Now()
	if current.Before(time.Unix(0, 0)) {
		return 0, &InternalError{Reason: fmt.Sprintf("system time precedes unix epoch: %s", current)}
	}
	return satSub64(current.UnixNano(), satMul64(period, nanosPerSecond)), nil
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
