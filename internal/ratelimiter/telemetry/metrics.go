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

// Package telemetry collects the server's operational counters and exposes
// them in Prometheus text format.
//
// Counters are safe to mutate from any goroutine and are designed for the
// hot path: plain atomic adds, no allocation. They describe decisions, they
// never synchronize them.
package telemetry

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transport label values used across the metric vectors.
const (
	TransportNative = "native"
	TransportHTTP   = "http"
	TransportGRPC   = "grpc"
	TransportRedis  = "redis"
)

// Metrics is the server-wide metric set, registered on its own registry so
// the exposition contains exactly these series.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal       prometheus.Counter
	requestsByTransport *prometheus.CounterVec
	requestsAllowed     prometheus.Counter
	requestsDenied      prometheus.Counter
	requestsErrored     prometheus.Counter
	activeConnections   *prometheus.GaugeVec
	latency             prometheus.Histogram

	// The store is owned by a single goroutine; it publishes snapshots into
	// these atomics, and the collectors read them at scrape time.
	activeKeys atomic.Int64
	evictions  atomic.Uint64
}

// New returns a Metrics set with every collector registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "throttlecrab_requests_total",
			Help: "Total number of throttle requests processed.",
		}),
		requestsByTransport: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "throttlecrab_requests_by_transport_total",
			Help: "Throttle requests processed, by transport.",
		}, []string{"transport"}),
		requestsAllowed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "throttlecrab_requests_allowed_total",
			Help: "Requests that were allowed.",
		}),
		requestsDenied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "throttlecrab_requests_denied_total",
			Help: "Requests that were denied.",
		}),
		requestsErrored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "throttlecrab_requests_errors_total",
			Help: "Requests that failed with an error.",
		}),
		activeConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "throttlecrab_active_connections",
			Help: "Currently open client connections, by transport.",
		}, []string{"transport"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "throttlecrab_request_duration_seconds",
			Help:    "Request handling latency.",
			Buckets: []float64{0.001, 0.01, 0.1, 1},
		}),
	}

	start := time.Now()
	uptime := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "throttlecrab_uptime_seconds",
		Help: "Time since server start.",
	}, func() float64 { return time.Since(start).Seconds() })
	activeKeys := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "throttlecrab_active_keys",
		Help: "Entries currently held by the store.",
	}, func() float64 { return float64(m.activeKeys.Load()) })
	evictions := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "throttlecrab_store_evictions_total",
		Help: "Entries reclaimed by store sweeps.",
	}, func() float64 { return float64(m.evictions.Load()) })

	m.registry.MustRegister(
		m.requestsTotal, m.requestsByTransport,
		m.requestsAllowed, m.requestsDenied, m.requestsErrored,
		m.activeConnections, m.latency,
		uptime, activeKeys, evictions,
	)
	return m
}

// RecordRequest counts one completed decision and its latency.
func (m *Metrics) RecordRequest(transport string, latency time.Duration, allowed bool) {
	m.requestsTotal.Inc()
	m.requestsByTransport.WithLabelValues(transport).Inc()
	if allowed {
		m.requestsAllowed.Inc()
	} else {
		m.requestsDenied.Inc()
	}
	m.latency.Observe(latency.Seconds())
}

// RecordError counts one request that failed with an error. Errors are kept
// out of the allowed/denied counters so that allowed + denied + errors equals
// the total.
func (m *Metrics) RecordError(transport string, latency time.Duration) {
	m.requestsTotal.Inc()
	m.requestsByTransport.WithLabelValues(transport).Inc()
	m.requestsErrored.Inc()
	m.latency.Observe(latency.Seconds())
}

// ConnOpened increments the open-connection gauge for transport.
func (m *Metrics) ConnOpened(transport string) {
	m.activeConnections.WithLabelValues(transport).Inc()
}

// ConnClosed decrements the open-connection gauge for transport.
func (m *Metrics) ConnClosed(transport string) {
	m.activeConnections.WithLabelValues(transport).Dec()
}

// PublishStore records a snapshot of the store's entry count and cumulative
// eviction total. Called by the store's owner; read at scrape time.
func (m *Metrics) PublishStore(keys int, evictions uint64) {
	m.activeKeys.Store(int64(keys))
	m.evictions.Store(evictions)
}

// Handler serves the registry in Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
