// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package envelope decodes the Present API response wrapper.
//
// Every response conforms to one envelope shape:
//
//	{
//	  "status": "OK" | "ERROR" | <anything else: UNKNOWN>,
//	  "result": <object>,            // resource responses
//	  "results": [<object>, ...],    // collection responses
//	  "nextCursor": <int>,           // collections; absent = no further pages
//	  "errorCode": <int>,
//	  "errorInfo": {"description", "stack", "message", "data"}
//	}
//
// Resource payloads are optionally wrapped as
// {"object": <object>, "subjectiveObjectMeta": {...}} to carry the viewer's
// relation to the object alongside the object itself.
//
// Classification rules (preserved exactly from the API contract):
//   - Domain errors can ride on HTTP 2xx; an error envelope always wins over
//     a "successful" transport status.
//   - An HTTP error status with a parseable error envelope produces an
//     APIError; with an unparseable body it produces a TransportError.
//   - A parsed domain error takes precedence over a generic transport error
//     when both exist.
package envelope

import (
	"github.com/goccy/go-json"
)

// Status is the envelope-level status discriminator.
type Status int

const (
	// StatusUnknown is any missing or unrecognized status value.
	StatusUnknown Status = iota
	// StatusOK marks a success envelope.
	StatusOK
	// StatusError marks an error envelope.
	StatusError
)

// ParseStatus maps the wire status string to a Status.
// Unknown or missing values map to StatusUnknown, never an error.
func ParseStatus(s string) Status {
	switch s {
	case "OK":
		return StatusOK
	case "ERROR":
		return StatusError
	default:
		return StatusUnknown
	}
}

// String returns the wire representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RelationState is one viewer-relative edge as sent by the server.
type RelationState struct {
	Forward  bool `json:"forward"`
	Backward bool `json:"backward"`
}

// RelationMeta is the subjectiveObjectMeta sibling of a wrapped resource:
// the viewer's relation to the object, by relation kind.
type RelationMeta struct {
	Friendship *RelationState `json:"friendship"`
	Like       *RelationState `json:"like"`
	View       *RelationState `json:"view"`
}

// Resource is a decoded single-object response.
type Resource struct {
	// Status is the envelope status.
	Status Status

	// Result is the resource payload. When the server wrapped the payload
	// with relation data, Result is the inner object and Meta carries the
	// relation data.
	Result json.RawMessage

	// Meta is the viewer-relative relation data, or nil when absent.
	Meta *RelationMeta
}

// Collection is a decoded paginated-list response.
type Collection struct {
	// Status is the envelope status.
	Status Status

	// Results holds the raw items in server order. Never nil.
	Results []json.RawMessage

	// NextCursor is the cursor for the next page; meaningful only when
	// HasMore is true.
	NextCursor int

	// HasMore reports whether the server sent a nextCursor. A missing
	// cursor signals the end of pagination, not an error.
	HasMore bool
}

// rawEnvelope mirrors the wire shape of every response.
type rawEnvelope struct {
	Status     string            `json:"status"`
	Result     json.RawMessage   `json:"result"`
	Results    []json.RawMessage `json:"results"`
	NextCursor *int              `json:"nextCursor"`
	ErrorCode  *int              `json:"errorCode"`
	Code       *int              `json:"code"`
	ErrorInfo  *rawErrorInfo     `json:"errorInfo"`
}

type rawErrorInfo struct {
	Description string                 `json:"description"`
	Stack       string                 `json:"stack"`
	Message     string                 `json:"message"`
	Data        map[string]interface{} `json:"data"`
}

// wrappedResult is the optional {object, subjectiveObjectMeta} wrapper
// around a resource payload.
type wrappedResult struct {
	Object json.RawMessage `json:"object"`
	Meta   *RelationMeta   `json:"subjectiveObjectMeta"`
}

// DecodeResource decodes a raw response body into a Resource, classifying
// success against domain failure. httpStatus is the transport status code of
// the response the body came from.
//
// The returned error is an *APIError for server-reported failures and a
// *TransportError for everything else; nil means the success path.
func DecodeResource(body []byte, httpStatus int) (*Resource, error) {
	raw, err := parse(body, httpStatus)
	if err != nil {
		return nil, err
	}

	if err := classify(raw, httpStatus); err != nil {
		return nil, err
	}

	res := &Resource{
		Status: ParseStatus(raw.Status),
		Result: raw.Result,
	}

	// Unwrap {object, subjectiveObjectMeta} when present.
	if len(raw.Result) > 0 {
		var w wrappedResult
		if err := json.Unmarshal(raw.Result, &w); err == nil && isPresent(w.Object) {
			res.Result = w.Object
			res.Meta = w.Meta
		}
	}

	return res, nil
}

// DecodeCollection decodes a raw response body into a Collection under the
// same classification rules as DecodeResource. A missing results array
// decodes as an empty collection; a missing nextCursor as the end of
// pagination.
func DecodeCollection(body []byte, httpStatus int) (*Collection, error) {
	raw, err := parse(body, httpStatus)
	if err != nil {
		return nil, err
	}

	if err := classify(raw, httpStatus); err != nil {
		return nil, err
	}

	col := &Collection{
		Status:  ParseStatus(raw.Status),
		Results: raw.Results,
	}
	if col.Results == nil {
		col.Results = []json.RawMessage{}
	}
	if raw.NextCursor != nil {
		col.NextCursor = *raw.NextCursor
		col.HasMore = true
	}

	return col, nil
}

// UnwrapObject splits an item that may be wrapped as
// {object, subjectiveObjectMeta} into payload and relation data. Unwrapped
// items are returned unchanged with nil meta. Collection items use the same
// wrapping convention as resource results.
func UnwrapObject(item json.RawMessage) (json.RawMessage, *RelationMeta) {
	var w wrappedResult
	if err := json.Unmarshal(item, &w); err == nil && isPresent(w.Object) {
		return w.Object, w.Meta
	}
	return item, nil
}

// isPresent reports whether a raw field was sent with a non-null value.
func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// parse unmarshals the body. A body that is not valid envelope JSON never
// produces a half-decoded envelope: the transport-level failure surfaces
// unchanged.
func parse(body []byte, httpStatus int) (*rawEnvelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		if httpStatus >= 300 {
			// HTTP error with unparseable body: generic transport error.
			return nil, &TransportError{Status: httpStatus}
		}
		return nil, &TransportError{Status: httpStatus, Err: err}
	}
	return &raw, nil
}

// classify applies the failure rules: a parsed domain error wins over the
// transport status; an HTTP error without one degrades to a TransportError.
func classify(raw *rawEnvelope, httpStatus int) error {
	apiErr := domainError(raw)

	if apiErr != nil {
		return apiErr
	}
	if httpStatus >= 300 {
		return &TransportError{Status: httpStatus}
	}
	return nil
}

// domainError builds an *APIError from the envelope's error fields, or nil
// when the envelope carries no application error.
func domainError(raw *rawEnvelope) *APIError {
	if raw.ErrorInfo == nil && raw.ErrorCode == nil && raw.Code == nil && ParseStatus(raw.Status) != StatusError {
		return nil
	}

	apiErr := &APIError{Code: DefaultErrorCode}
	switch {
	case raw.ErrorCode != nil:
		apiErr.Code = *raw.ErrorCode
	case raw.Code != nil:
		apiErr.Code = *raw.Code
	}
	if raw.ErrorInfo != nil {
		apiErr.Description = raw.ErrorInfo.Description
		apiErr.Stack = raw.ErrorInfo.Stack
		apiErr.Message = raw.ErrorInfo.Message
		apiErr.Data = raw.ErrorInfo.Data
	}
	return apiErr
}
