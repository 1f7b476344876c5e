// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package session holds the client's authentication state: the current
// session token and user id, the HTTP headers derived from them, and the
// persistence of the session across process restarts.
//
// The holder is an explicit, injectable Context object rather than a process
// global, so multiple isolated clients (and tests) can run concurrently with
// independent sessions.
package session

import (
	"errors"
	"time"
)

// Header keys attached to API requests.
const (
	// HeaderVersion carries the static API version on every request.
	HeaderVersion = "Present-Version"

	// HeaderSessionToken carries the session token when authenticated.
	HeaderSessionToken = "Present-User-Context-Session-Token"

	// HeaderUserID carries the authenticated user's id.
	HeaderUserID = "Present-User-Context-User-Id"
)

// ErrNotFound is returned by a Store when no session is persisted.
var ErrNotFound = errors.New("session: not found")

// Session is the authenticated actor. Token is non-empty exactly when the
// session represents an authenticated state.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// New creates a Session for the given credentials.
func New(token, userID string) *Session {
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the session carries usable credentials.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.UserID != ""
}
