// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Present-Inc/PresentAPIClient-sub000/envelope"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/metrics"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// State is the lifecycle state of a PendingRequest.
//
//	Built ──Resume──▶ Sent ──▶ Completed
//	  │                │
//	  └────Cancel──────┴─────▶ Cancelled
//
// A freshly built request performs no I/O until Resume; Built is the
// suspended state and Suspend keeps a request there. Cancel is terminal from
// any non-terminal state; cancelling a completed request is a no-op.
type State int

const (
	StateBuilt State = iota
	StateSent
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateBuilt:
		return "built"
	case StateSent:
		return "sent"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ResourceResult is the single outcome of a resource request. Exactly one of
// Resource and Err is set.
type ResourceResult struct {
	Resource *envelope.Resource
	Err      error
}

// CollectionResult is the single outcome of a collection request.
type CollectionResult struct {
	Collection *envelope.Collection
	Err        error
}

type requestKind int

const (
	kindResource requestKind = iota
	kindCollection
)

// PendingRequest is one dispatched API call. It starts suspended in
// StateBuilt; Resume begins I/O, at which point the session headers are
// snapshotted, so a login or logout between build and resume is reflected
// while one after resume is not.
//
// The continuation is invoked at most once, on a response-processing
// goroutine. Cancel before completion suppresses it entirely.
type PendingRequest struct {
	id   string
	op   routes.Operation
	spec routes.Spec
	c    *Client

	kind         requestKind
	onResource   func(ResourceResult)
	onCollection func(CollectionResult)
	upload       *Upload

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc

	deliverOnce sync.Once
}

func newPendingRequest(c *Client, op routes.Operation, params routes.Params) *PendingRequest {
	return &PendingRequest{
		id:    uuid.NewString(),
		op:    op,
		spec:  op.Resolve(params),
		c:     c,
		state: StateBuilt,
	}
}

// ID returns the request's unique id, also sent as the X-Request-Id header.
func (p *PendingRequest) ID() string {
	return p.id
}

// State returns the current lifecycle state.
func (p *PendingRequest) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Suspend holds the request in its pre-I/O state. Requests are built
// suspended, so Suspend before Resume keeps the request parked indefinitely;
// once I/O has started the underlying connection cannot be paused, and
// Suspend is an idempotent no-op. Use Cancel to abandon started work.
func (p *PendingRequest) Suspend() {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	if state != StateBuilt {
		logging.Trace().Str("request_id", p.id).Str("state", state.String()).Msg("suspend ignored, request already started")
	}
}

// Resume starts the request's I/O. Resuming a request that already started,
// completed or was cancelled is a no-op.
func (p *PendingRequest) Resume() {
	p.mu.Lock()
	if p.state != StateBuilt {
		p.mu.Unlock()
		return
	}
	p.state = StateSent
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	p.c.register(p)
	metrics.TrackInFlight(true)
	go p.run(ctx)
}

// Cancel moves the request to StateCancelled, aborting any in-flight I/O and
// suppressing the continuation. Cancelling after completion is a no-op.
func (p *PendingRequest) Cancel() {
	p.mu.Lock()
	if p.state == StateCompleted || p.state == StateCancelled {
		p.mu.Unlock()
		return
	}
	wasSent := p.state == StateSent
	p.state = StateCancelled
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasSent {
		p.c.unregister(p.id)
		metrics.TrackInFlight(false)
	}
	metrics.RequestsCancelled.Inc()
	metrics.RecordRequest(p.op.Family(), p.op.Name(), "cancelled", 0)
	logging.Debug().Str("request_id", p.id).Str("operation", p.op.String()).Msg("request cancelled")
}

// run performs the HTTP round trip and hands the body to the response
// workers for decoding and delivery.
func (p *PendingRequest) run(ctx context.Context) {
	start := time.Now()

	// Header snapshot is taken here, at I/O start.
	headers := p.c.session.Headers()

	req, err := p.buildHTTPRequest(ctx, headers)
	if err != nil {
		p.finish(start, nil, &envelope.TransportError{Err: err})
		return
	}

	if p.c.limiter != nil {
		if err := p.c.limiter.Wait(ctx); err != nil {
			p.finish(start, nil, &envelope.TransportError{Err: err})
			return
		}
	}

	resp, err := p.c.transport.Do(req)
	if err != nil {
		p.finish(start, nil, err)
		return
	}
	p.finish(start, resp, nil)
}

func (p *PendingRequest) buildHTTPRequest(ctx context.Context, headers map[string]string) (*http.Request, error) {
	url := p.c.baseURL + "/" + p.spec.Path

	var req *http.Request
	var err error
	switch {
	case p.upload != nil:
		body, contentType, encErr := p.upload.encode(p.spec.Params)
		if encErr != nil {
			return nil, encErr
		}
		req, err = http.NewRequestWithContext(ctx, p.spec.Method, url, body)
		if err == nil {
			req.Header.Set("Content-Type", contentType)
		}
	case p.spec.Encoding == routes.EncodingBody:
		payload, encErr := json.Marshal(p.spec.Params)
		if encErr != nil {
			return nil, encErr
		}
		req, err = http.NewRequestWithContext(ctx, p.spec.Method, url, bytes.NewReader(payload))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	default:
		if query := p.spec.EncodeQuery(); query != "" {
			url += "?" + query
		}
		req, err = http.NewRequestWithContext(ctx, p.spec.Method, url, nil)
	}
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", p.c.userAgent)
	req.Header.Set("X-Request-Id", p.id)
	return req, nil
}

// finish schedules decoding and delivery on the response workers. transportErr
// is non-nil when no usable response exists.
func (p *PendingRequest) finish(start time.Time, resp *rawResponse, transportErr error) {
	p.c.submitResponse(func() {
		p.deliver(start, resp, transportErr)
	})
}

func (p *PendingRequest) deliver(start time.Time, resp *rawResponse, transportErr error) {
	p.deliverOnce.Do(func() {
		p.mu.Lock()
		if p.state == StateCancelled {
			p.mu.Unlock()
			return
		}
		p.state = StateCompleted
		p.mu.Unlock()

		p.c.unregister(p.id)
		metrics.TrackInFlight(false)

		duration := time.Since(start)

		if transportErr != nil {
			p.record(transportErr, duration)
			p.invoke(nil, nil, transportErr)
			return
		}

		switch p.kind {
		case kindCollection:
			col, err := envelope.DecodeCollection(resp.Body, resp.StatusCode)
			p.record(err, duration)
			p.invoke(nil, col, err)
		default:
			res, err := envelope.DecodeResource(resp.Body, resp.StatusCode)
			p.record(err, duration)
			p.invoke(res, nil, err)
		}
	})
}

func (p *PendingRequest) invoke(res *envelope.Resource, col *envelope.Collection, err error) {
	switch p.kind {
	case kindCollection:
		if p.onCollection != nil {
			p.onCollection(CollectionResult{Collection: col, Err: err})
		}
	default:
		if p.onResource != nil {
			p.onResource(ResourceResult{Resource: res, Err: err})
		}
	}
}

func (p *PendingRequest) record(err error, duration time.Duration) {
	outcome := "success"
	var apiErr *envelope.APIError
	var transportErr *envelope.TransportError
	switch {
	case err == nil:
	case errors.As(err, &apiErr):
		outcome = "domain_error"
	case errors.As(err, &transportErr):
		outcome = "transport_error"
	default:
		outcome = "transport_error"
	}
	metrics.RecordRequest(p.op.Family(), p.op.Name(), outcome, duration)

	evt := logging.Debug()
	if err != nil {
		evt = logging.Warn().Err(err)
	}
	evt.Str("request_id", p.id).
		Str("operation", p.op.String()).
		Str("outcome", outcome).
		Dur("duration", duration).
		Msg("request completed")
}
