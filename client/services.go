// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/metrics"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// recordValidationFailure counts a request rejected locally before any
// network I/O.
func recordValidationFailure(op routes.Operation) {
	metrics.RecordRequest(op.Family(), op.Name(), "validation_error", 0)
}

// PageOptions selects a page of a listing. Cursor 0 is the first page; a
// zero Limit leaves the page size to the server.
type PageOptions struct {
	Cursor int
	Limit  int
}

func (o PageOptions) params() routes.Params {
	p := routes.Params{"cursor": o.Cursor}
	if o.Limit > 0 {
		p["limit"] = o.Limit
	}
	return p
}
