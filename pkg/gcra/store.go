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

import "time"

// Store is the key → TAT map the decision engine runs against.
//
// Implementations are not safe for concurrent use; the serving layer grants
// exclusive access to a single owner goroutine. Every method takes the
// current time explicitly so tests can inject arbitrary clocks, and so one
// decision is evaluated against a single consistent timestamp.
//
// An entry whose expiry has passed is indistinguishable from an absent entry
// for all three operations, regardless of whether it has been physically
// reclaimed yet.
type Store interface {
	// Get returns the stored TAT for key if present and not expired.
	Get(key string, now time.Time) (int64, bool)

	// SetIfNotExists installs value with expiry now+ttl and reports true iff
	// no live entry existed for key.
	SetIfNotExists(key string, value int64, ttl time.Duration, now time.Time) bool

	// CompareAndSwap replaces the stored TAT with new, setting expiry to
	// now+ttl, iff the live entry's current value equals old.
	CompareAndSwap(key string, old, new int64, ttl time.Duration, now time.Time) bool

	// Len reports the number of physically present entries, expired or not.
	Len() int

	// Evictions reports the cumulative number of entries dropped by sweeps.
	Evictions() uint64
}

// entry is a stored TAT with its absolute expiry. A zero expiry never
// expires.
type entry struct {
	tat    int64
	expiry time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiry.IsZero() && !e.expiry.After(now)
}

// Shared store defaults. Capacity is padded by 30% to keep the map below the
// load factor that forces a rehash.
const (
	DefaultCapacity        = 1000
	capacityOverheadFactor = 1.3
)

func paddedCapacity(capacity int) int {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return int(float64(capacity) * capacityOverheadFactor)
}

// sweep drops every expired entry from data and returns how many were
// removed.
func sweep(data map[string]entry, now time.Time) int {
	removed := 0
	for key, e := range data {
		if e.expired(now) {
			delete(data, key)
			removed++
		}
	}
	return removed
}
