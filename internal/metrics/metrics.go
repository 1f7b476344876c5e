// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package metrics provides Prometheus instrumentation for the SDK.
//
// Collectors cover:
//   - Request throughput, latency and in-flight count per resource family
//   - Outcome classification (success, transport_error, domain_error,
//     validation_error, cancelled)
//   - Circuit breaker state and transitions
//   - Relation cache efficiency
//
// All collectors register on the default Prometheus registerer; a host
// application that exposes /metrics picks them up automatically.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request Metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_requests_total",
			Help: "Total number of API requests by resource family, operation and outcome",
		},
		[]string{"family", "operation", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "present_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"family", "operation"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "present_requests_in_flight",
			Help: "Current number of dispatched requests awaiting completion",
		},
	)

	RequestsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "present_requests_cancelled_total",
			Help: "Total number of requests cancelled before completion",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "present_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_circuit_breaker_requests_total",
			Help: "Total number of requests seen by the circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	// Relation Cache Metrics
	RelationCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_relation_cache_hits_total",
			Help: "Total number of relation cache hits by relation kind",
		},
		[]string{"kind"},
	)

	RelationCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_relation_cache_misses_total",
			Help: "Total number of relation cache misses by relation kind",
		},
		[]string{"kind"},
	)

	RelationCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "present_relation_cache_entries",
			Help: "Current number of entries in the relation cache by relation kind",
		},
		[]string{"kind"},
	)

	// Session Metrics
	SessionChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "present_session_changes_total",
			Help: "Total number of session state changes",
		},
		[]string{"change"}, // "set", "clear"
	)
)

// RecordRequest records the outcome and duration of a dispatched request.
func RecordRequest(family, operation, outcome string, duration time.Duration) {
	RequestsTotal.WithLabelValues(family, operation, outcome).Inc()
	RequestDuration.WithLabelValues(family, operation).Observe(duration.Seconds())
}

// TrackInFlight adjusts the in-flight request gauge.
func TrackInFlight(inc bool) {
	if inc {
		RequestsInFlight.Inc()
	} else {
		RequestsInFlight.Dec()
	}
}

// RecordRelationCacheLookup records a relation cache hit or miss.
func RecordRelationCacheLookup(kind string, hit bool) {
	if hit {
		RelationCacheHits.WithLabelValues(kind).Inc()
	} else {
		RelationCacheMisses.WithLabelValues(kind).Inc()
	}
}
