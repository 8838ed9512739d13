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

// DefaultCleanupProbability is the denominator P of a ProbabilisticStore:
// roughly one mutating operation in P triggers a full sweep.
const DefaultCleanupProbability uint64 = 1000

// knuthMultiplier spreads adjacent operation counts across the 64-bit space
// so that `counter mod P` aliasing cannot bunch sweeps together.
const knuthMultiplier uint64 = 2654435761

// ProbabilisticStore reclaims expired entries on a random sample of
// operations.
//
// Each mutating call mixes an operation counter and sweeps when the mix
// lands on zero modulo the configured denominator. The sweep cost is spread
// uniformly over operations instead of clustering at interval boundaries, so
// there is no periodic latency cliff. Suited to very high request rates.
type ProbabilisticStore struct {
	data        map[string]entry
	ops         uint64
	probability uint64
	removed     uint64
}

// NewProbabilisticStore returns a ProbabilisticStore with the default
// capacity and sweep probability.
func NewProbabilisticStore() *ProbabilisticStore {
	return NewProbabilisticStoreWith(DefaultCapacity, DefaultCleanupProbability)
}

// NewProbabilisticStoreWith returns a ProbabilisticStore pre-sized for
// capacity keys that sweeps with probability 1/cleanupProbability per
// mutating operation.
func NewProbabilisticStoreWith(capacity int, cleanupProbability uint64) *ProbabilisticStore {
	if cleanupProbability == 0 {
		cleanupProbability = DefaultCleanupProbability
	}
	return &ProbabilisticStore{
		data:        make(map[string]entry, paddedCapacity(capacity)),
		probability: cleanupProbability,
	}
}

func (s *ProbabilisticStore) maybeSweep(now time.Time) {
	s.ops++
	if (s.ops*knuthMultiplier)%s.probability == 0 {
		s.removed += uint64(sweep(s.data, now))
	}
}

// Get implements Store.
func (s *ProbabilisticStore) Get(key string, now time.Time) (int64, bool) {
	e, ok := s.data[key]
	if !ok || e.expired(now) {
		return 0, false
	}
	return e.tat, true
}

// SetIfNotExists implements Store.
func (s *ProbabilisticStore) SetIfNotExists(key string, value int64, ttl time.Duration, now time.Time) bool {
	s.maybeSweep(now)

	if e, ok := s.data[key]; ok && !e.expired(now) {
		return false
	}
	s.data[key] = entry{tat: value, expiry: now.Add(ttl)}
	return true
}

// CompareAndSwap implements Store.
func (s *ProbabilisticStore) CompareAndSwap(key string, old, new int64, ttl time.Duration, now time.Time) bool {
	s.maybeSweep(now)

	e, ok := s.data[key]
	if !ok || e.expired(now) || e.tat != old {
		return false
	}
	s.data[key] = entry{tat: new, expiry: now.Add(ttl)}
	return true
}

// Len implements Store.
func (s *ProbabilisticStore) Len() int { return len(s.data) }

// Evictions implements Store.
func (s *ProbabilisticStore) Evictions() uint64 { return s.removed }
