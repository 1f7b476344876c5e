// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"errors"
	"io"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/Present-Inc/PresentAPIClient-sub000/config"
	"github.com/Present-Inc/PresentAPIClient-sub000/envelope"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/metrics"
)

// breakerName labels the API circuit breaker in logs and metrics.
const breakerName = "present-api"

// maxResponseBody caps how much of a response body is read. Envelope bodies
// are small; the cap guards against a misbehaving proxy streaming garbage.
const maxResponseBody = 8 << 20

// rawResponse is a fully read HTTP response.
type rawResponse struct {
	StatusCode int
	Body       []byte
}

// serverFailure carries a 5xx response through the circuit breaker as an
// error so the breaker counts it as a failure. The response itself is still
// valid input for envelope classification.
type serverFailure struct {
	resp *rawResponse
}

func (e *serverFailure) Error() string {
	return http.StatusText(e.resp.StatusCode)
}

// breakerTransport performs HTTP round trips behind an optional circuit
// breaker. Transport errors and 5xx responses count as failures; domain
// errors and 4xx responses do not, since they indicate a healthy server
// rejecting this particular request.
type breakerTransport struct {
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[*rawResponse]
}

func newBreakerTransport(httpClient *http.Client, cfg config.BreakerConfig) *breakerTransport {
	t := &breakerTransport{httpClient: httpClient}
	if !cfg.Enabled {
		return t
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	t.cb = gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			trip := failureRatio >= cfg.FailureRatio
			if trip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_ratio", failureRatio).
					Msg("circuit breaker opening")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := breakerStateString(from)
			toStr := breakerStateString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})
	return t
}

// Do performs the round trip and reads the full body. Errors are returned as
// *envelope.TransportError; a readable 5xx response is returned as a normal
// rawResponse after being counted as a breaker failure, so envelope
// classification still sees its body.
func (t *breakerTransport) Do(req *http.Request) (*rawResponse, error) {
	if t.cb == nil {
		resp, err := t.roundTrip(req)
		var sf *serverFailure
		if errors.As(err, &sf) {
			return sf.resp, nil
		}
		return resp, err
	}

	resp, err := t.cb.Execute(func() (*rawResponse, error) {
		return t.roundTrip(req)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
		return resp, nil
	}

	var sf *serverFailure
	if errors.As(err, &sf) {
		// Breaker failure accounting done; the response is still usable.
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return sf.resp, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
		logging.Warn().Err(err).Msg("request rejected by circuit breaker")
		return nil, &envelope.TransportError{Err: err}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	return nil, err
}

func (t *breakerTransport) roundTrip(req *http.Request) (*rawResponse, error) {
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &envelope.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &envelope.TransportError{Status: resp.StatusCode, Err: err}
	}

	raw := &rawResponse{StatusCode: resp.StatusCode, Body: body}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &serverFailure{resp: raw}
	}
	return raw, nil
}

func breakerStateString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func breakerStateFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
