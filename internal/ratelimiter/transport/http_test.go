package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"throttlecrab/internal/ratelimiter/telemetry"
)

func newHTTPServer(t *testing.T) *httptest.Server {
	t.Helper()
	actor := newTestActor(t)
	ht := NewHTTPTransport("127.0.0.1", 0, actor.Handle(), telemetry.New(), zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("/throttle", ht.handleThrottle)
	mux.HandleFunc("/health", handleHealth)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postThrottle(t *testing.T, srv *httptest.Server, body map[string]any) (*http.Response, throttleResponseJSON) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/throttle", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var out throttleResponseJSON
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestHTTPThrottle(t *testing.T) {
	srv := newHTTPServer(t)

	resp, out := postThrottle(t, srv, map[string]any{
		"key": "http-key", "max_burst": 5, "count_per_period": 10, "period": 60,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Allowed)
	assert.Equal(t, int64(5), out.Limit)
	assert.Equal(t, int64(4), out.Remaining, "quantity defaults to 1")
	assert.Equal(t, int64(0), out.RetryAfter)
}

func TestHTTPThrottleQuantity(t *testing.T) {
	srv := newHTTPServer(t)

	_, out := postThrottle(t, srv, map[string]any{
		"key": "http-q", "max_burst": 10, "count_per_period": 20, "period": 60, "quantity": 5,
	})
	assert.True(t, out.Allowed)
	assert.Equal(t, int64(5), out.Remaining)
}

func TestHTTPThrottleDenied(t *testing.T) {
	srv := newHTTPServer(t)

	body := map[string]any{"key": "http-drain", "max_burst": 2, "count_per_period": 10, "period": 60}
	postThrottle(t, srv, body)
	postThrottle(t, srv, body)
	_, out := postThrottle(t, srv, body)

	assert.False(t, out.Allowed)
	assert.Equal(t, int64(0), out.Remaining)
	assert.Greater(t, out.RetryAfter, int64(0))
}

func TestHTTPThrottleBadRequests(t *testing.T) {
	srv := newHTTPServer(t)

	// Missing key.
	resp, _ := postThrottle(t, srv, map[string]any{"max_burst": 5, "count_per_period": 10, "period": 60})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Invalid policy.
	resp, _ = postThrottle(t, srv, map[string]any{"key": "k", "max_burst": 0, "count_per_period": 10, "period": 60})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Negative quantity.
	resp, _ = postThrottle(t, srv, map[string]any{"key": "k", "max_burst": 5, "count_per_period": 10, "period": 60, "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Malformed body.
	raw, err := http.Post(srv.URL+"/throttle", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestHTTPThrottleMethodNotAllowed(t *testing.T) {
	srv := newHTTPServer(t)

	resp, err := http.Get(srv.URL + "/throttle")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHTTPHealth(t *testing.T) {
	srv := newHTTPServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
