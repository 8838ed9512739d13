package gcra

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The behavioral contract is identical for all three reclamation strategies;
// the choice is a policy knob, not a correctness issue. The contract tests
// here run against each implementation through eachStore; the sweep test
// covers the periodic and probabilistic triggers (the adaptive store's
// triggers are tested in adaptive_test.go).

func eachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	stores := map[string]func() Store{
		"periodic":      func() Store { return NewPeriodicStore() },
		"probabilistic": func() Store { return NewProbabilisticStore() },
		"adaptive":      func() Store { return NewAdaptiveStore() },
	}
	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			fn(t, mk())
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		_, ok := s.Get("missing", time.Unix(1000, 0))
		assert.False(t, ok)
	})
}

func TestStoreSetIfNotExists(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		now := time.Unix(1000, 0)

		require.True(t, s.SetIfNotExists("k", 42, time.Minute, now))
		v, ok := s.Get("k", now)
		require.True(t, ok)
		assert.Equal(t, int64(42), v)

		// A live entry blocks a second insert.
		assert.False(t, s.SetIfNotExists("k", 99, time.Minute, now))
		v, _ = s.Get("k", now)
		assert.Equal(t, int64(42), v)
	})
}

func TestStoreCompareAndSwap(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		now := time.Unix(1000, 0)
		require.True(t, s.SetIfNotExists("k", 10, time.Minute, now))

		// Wrong observed value fails and leaves the entry alone.
		assert.False(t, s.CompareAndSwap("k", 11, 20, time.Minute, now))
		v, _ := s.Get("k", now)
		assert.Equal(t, int64(10), v)

		// Matching observed value swaps.
		require.True(t, s.CompareAndSwap("k", 10, 20, time.Minute, now))
		v, _ = s.Get("k", now)
		assert.Equal(t, int64(20), v)

		// Absent key never swaps.
		assert.False(t, s.CompareAndSwap("absent", 0, 1, time.Minute, now))
	})
}

// An entry whose TTL has elapsed is observationally absent from every
// operation, whether or not a sweep has physically reclaimed it.
func TestStoreExpirySemantics(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		now := time.Unix(1000, 0)
		require.True(t, s.SetIfNotExists("k", 7, 10*time.Second, now))

		later := now.Add(11 * time.Second)
		_, ok := s.Get("k", later)
		assert.False(t, ok, "expired entry must be invisible to Get")

		assert.False(t, s.CompareAndSwap("k", 7, 8, time.Minute, later),
			"expired entry must be invisible to CompareAndSwap")

		// The slot is free again for insert-if-absent.
		require.True(t, s.SetIfNotExists("k", 9, time.Minute, later))
		v, ok := s.Get("k", later)
		require.True(t, ok)
		assert.Equal(t, int64(9), v)
	})
}

func TestStoreExpiryBoundary(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		now := time.Unix(1000, 0)
		require.True(t, s.SetIfNotExists("k", 1, 10*time.Second, now))

		// expiry == now is already expired; one nanosecond before is live.
		live := now.Add(10*time.Second - time.Nanosecond)
		_, ok := s.Get("k", live)
		assert.True(t, ok)

		_, ok = s.Get("k", now.Add(10*time.Second))
		assert.False(t, ok)
	})
}

func TestStoreKeyIsolation(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		now := time.Unix(1000, 0)
		require.True(t, s.SetIfNotExists("a", 1, time.Minute, now))
		require.True(t, s.SetIfNotExists("b", 2, time.Minute, now))

		require.True(t, s.CompareAndSwap("a", 1, 100, time.Minute, now))

		v, ok := s.Get("b", now)
		require.True(t, ok)
		assert.Equal(t, int64(2), v, "mutating a must not alter b")
	})
}

func TestStoreSweepReclaimsExpired(t *testing.T) {
	now := time.Unix(1000, 0)

	t.Run("periodic", func(t *testing.T) {
		s := NewPeriodicStoreWith(100, 30*time.Second)
		for i := 0; i < 50; i++ {
			require.True(t, s.SetIfNotExists(fmt.Sprintf("k%d", i), 1, time.Second, now))
		}
		require.Equal(t, 50, s.Len())

		// Past the sweep interval, the next mutating call reclaims.
		later := now.Add(31 * time.Second)
		s.SetIfNotExists("fresh", 1, time.Minute, later)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, uint64(50), s.Evictions())
	})

	t.Run("probabilistic", func(t *testing.T) {
		// Denominator 1 sweeps on every operation.
		s := NewProbabilisticStoreWith(100, 1)
		for i := 0; i < 50; i++ {
			require.True(t, s.SetIfNotExists(fmt.Sprintf("k%d", i), 1, time.Second, now))
		}
		later := now.Add(2 * time.Second)
		s.SetIfNotExists("fresh", 1, time.Minute, later)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, uint64(50), s.Evictions())
	})
}
