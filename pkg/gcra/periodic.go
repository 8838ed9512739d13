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

// DefaultCleanupInterval is the sweep interval of a PeriodicStore when none
// is configured.
const DefaultCleanupInterval = 60 * time.Second

// PeriodicStore reclaims expired entries at fixed time intervals.
//
// On every mutating call, if the interval has elapsed, it walks the whole map
// and drops dead entries. Predictable, but the sweep cost is proportional to
// the map size, so large maps see an occasional latency spike on the
// operation that happens to trigger it.
type PeriodicStore struct {
	data     map[string]entry
	next     time.Time
	interval time.Duration
	removed  uint64
}

// NewPeriodicStore returns a PeriodicStore with the default capacity and
// sweep interval.
func NewPeriodicStore() *PeriodicStore {
	return NewPeriodicStoreWith(DefaultCapacity, DefaultCleanupInterval)
}

// NewPeriodicStoreWith returns a PeriodicStore pre-sized for capacity keys
// that sweeps every cleanupInterval.
func NewPeriodicStoreWith(capacity int, cleanupInterval time.Duration) *PeriodicStore {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &PeriodicStore{
		data:     make(map[string]entry, paddedCapacity(capacity)),
		interval: cleanupInterval,
	}
}

// The first mutating call schedules the first sweep; construction has no
// access to the caller's clock.
func (s *PeriodicStore) maybeSweep(now time.Time) {
	if s.next.IsZero() {
		s.next = now.Add(s.interval)
		return
	}
	if now.Before(s.next) {
		return
	}
	s.removed += uint64(sweep(s.data, now))
	s.next = now.Add(s.interval)
}

// Get implements Store.
func (s *PeriodicStore) Get(key string, now time.Time) (int64, bool) {
	e, ok := s.data[key]
	if !ok || e.expired(now) {
		return 0, false
	}
	return e.tat, true
}

// SetIfNotExists implements Store.
func (s *PeriodicStore) SetIfNotExists(key string, value int64, ttl time.Duration, now time.Time) bool {
	s.maybeSweep(now)

	if e, ok := s.data[key]; ok && !e.expired(now) {
		return false
	}
	s.data[key] = entry{tat: value, expiry: now.Add(ttl)}
	return true
}

// CompareAndSwap implements Store.
func (s *PeriodicStore) CompareAndSwap(key string, old, new int64, ttl time.Duration, now time.Time) bool {
	s.maybeSweep(now)

	e, ok := s.data[key]
	if !ok || e.expired(now) || e.tat != old {
		return false
	}
	s.data[key] = entry{tat: new, expiry: now.Add(ttl)}
	return true
}

// Len implements Store.
func (s *PeriodicStore) Len() int { return len(s.data) }

// Evictions implements Store.
func (s *PeriodicStore) Evictions() uint64 { return s.removed }
