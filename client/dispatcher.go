// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"context"

	"github.com/Present-Inc/PresentAPIClient-sub000/envelope"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// NewResourceRequest builds a suspended resource request. Call Resume on the
// result to start I/O.
func (c *Client) NewResourceRequest(op routes.Operation, params routes.Params, fn func(ResourceResult)) *PendingRequest {
	p := newPendingRequest(c, op, params)
	p.kind = kindResource
	p.onResource = fn
	return p
}

// NewCollectionRequest builds a suspended collection request.
func (c *Client) NewCollectionRequest(op routes.Operation, params routes.Params, fn func(CollectionResult)) *PendingRequest {
	p := newPendingRequest(c, op, params)
	p.kind = kindCollection
	p.onCollection = fn
	return p
}

// NewUploadRequest builds a suspended multipart resource request carrying a
// media payload alongside the ordinary parameters.
func (c *Client) NewUploadRequest(op routes.Operation, params routes.Params, upload *Upload, fn func(ResourceResult)) *PendingRequest {
	p := c.NewResourceRequest(op, params, fn)
	p.upload = upload
	return p
}

// DispatchResource builds and immediately resumes a resource request. fn
// receives exactly one result on a response-processing goroutine, unless the
// request is cancelled first.
func (c *Client) DispatchResource(op routes.Operation, params routes.Params, fn func(ResourceResult)) *PendingRequest {
	p := c.NewResourceRequest(op, params, fn)
	p.Resume()
	return p
}

// DispatchCollection builds and immediately resumes a collection request.
func (c *Client) DispatchCollection(op routes.Operation, params routes.Params, fn func(CollectionResult)) *PendingRequest {
	p := c.NewCollectionRequest(op, params, fn)
	p.Resume()
	return p
}

// DispatchUpload builds and immediately resumes a multipart request.
func (c *Client) DispatchUpload(op routes.Operation, params routes.Params, upload *Upload, fn func(ResourceResult)) *PendingRequest {
	p := c.NewUploadRequest(op, params, upload, fn)
	p.Resume()
	return p
}

// Resource performs a resource request synchronously. Cancelling ctx cancels
// the underlying request.
func (c *Client) Resource(ctx context.Context, op routes.Operation, params routes.Params) (*envelope.Resource, error) {
	ch := make(chan ResourceResult, 1)
	p := c.DispatchResource(op, params, func(r ResourceResult) { ch <- r })
	return awaitResource(ctx, p, ch)
}

// Collection performs a collection request synchronously.
func (c *Client) Collection(ctx context.Context, op routes.Operation, params routes.Params) (*envelope.Collection, error) {
	ch := make(chan CollectionResult, 1)
	p := c.DispatchCollection(op, params, func(r CollectionResult) { ch <- r })

	select {
	case <-ctx.Done():
		p.Cancel()
		return nil, ctx.Err()
	case r := <-ch:
		return r.Collection, r.Err
	}
}

// Upload performs a multipart request synchronously.
func (c *Client) Upload(ctx context.Context, op routes.Operation, params routes.Params, upload *Upload) (*envelope.Resource, error) {
	ch := make(chan ResourceResult, 1)
	p := c.DispatchUpload(op, params, upload, func(r ResourceResult) { ch <- r })
	return awaitResource(ctx, p, ch)
}

func awaitResource(ctx context.Context, p *PendingRequest, ch <-chan ResourceResult) (*envelope.Resource, error) {
	select {
	case <-ctx.Done():
		p.Cancel()
		return nil, ctx.Err()
	case r := <-ch:
		return r.Resource, r.Err
	}
}
