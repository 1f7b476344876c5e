// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// UserContext is the server's answer to a successful authentication: the
// session token plus the authenticated user. Its token and user id become
// the active session's credentials.
type UserContext struct {
	Base

	SessionToken string `json:"sessionToken"`
	UserID       string `json:"userId"`

	// User is the authenticated user when the server expands it.
	User *User `json:"user"`
}

// NewUserContext hydrates a UserContext from a decoded resource payload.
func NewUserContext(raw json.RawMessage) (*UserContext, error) {
	uc := &UserContext{}
	if err := json.Unmarshal(raw, uc); err != nil {
		return nil, fmt.Errorf("decode user context: %w", err)
	}
	return uc, nil
}

// ResolvedUserID returns the user id, falling back to the expanded user
// object when the scalar field was absent.
func (uc *UserContext) ResolvedUserID() string {
	if uc.UserID != "" {
		return uc.UserID
	}
	if uc.User != nil {
		return uc.User.ID
	}
	return ""
}

// MergeFrom copies server-authoritative fields from src onto uc. Idempotent.
func (uc *UserContext) MergeFrom(src *UserContext) {
	if src == nil {
		return
	}
	uc.mergeBase(&src.Base)

	uc.SessionToken = src.SessionToken
	uc.UserID = src.UserID
}
