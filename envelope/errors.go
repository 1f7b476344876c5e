// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package envelope

import (
	"fmt"
	"net/http"
)

// DefaultErrorCode is used when the server reports an error without a code.
const DefaultErrorCode = -1111

// APIError is a domain error reported by the Present API inside a response
// envelope. It can ride on any HTTP status, including 200: the server signals
// application failures in the body, not only via the transport status.
//
// APIError is an opaque carrier, not an exception: it is returned through the
// same failure path as every other error.
type APIError struct {
	// Code is the server's error code; DefaultErrorCode when unspecified.
	Code int

	// Message is the short, user-presentable error message.
	Message string

	// Description is the longer developer-oriented description.
	Description string

	// Stack is the server-side stack trace string, when the server sends one.
	Stack string

	// Data carries free-form structured error context.
	Data map[string]interface{}
}

func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Code != DefaultErrorCode:
		return fmt.Sprintf("present: %s (code %d)", e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("present: %s", e.Message)
	case e.Description != "":
		return fmt.Sprintf("present: %s (code %d)", e.Description, e.Code)
	default:
		return fmt.Sprintf("present: server error (code %d)", e.Code)
	}
}

// TransportError is a connectivity- or protocol-level failure: DNS, timeout,
// connection reset, an HTTP error status without a parseable error envelope,
// or an unparseable response body. It carries no domain error code.
type TransportError struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Err is the underlying cause, when one exists.
	Err error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.Status > 0:
		return fmt.Sprintf("present: transport error (HTTP %d %s): %v", e.Status, http.StatusText(e.Status), e.Err)
	case e.Err != nil:
		return fmt.Sprintf("present: transport error: %v", e.Err)
	case e.Status > 0:
		return fmt.Sprintf("present: transport error: HTTP %d %s", e.Status, http.StatusText(e.Status))
	default:
		return "present: transport error"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
