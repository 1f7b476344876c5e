// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package models defines the typed domain objects of the Present API
// (users, videos, comments, likes, views, friendships, activities, user
// contexts) and their hydration and merge semantics.
//
// Objects are constructed either by decoding a server payload (hydration) or
// via local draft constructors for entities that have not been persisted yet.
// Every field has a defined default (empty string, zero count, false flag),
// so partial payloads never leave a field undefined.
//
// After a successful create/update round-trip, callers merge the server's
// authoritative copy onto their local instance with MergeFrom: the caller's
// reference stays valid, identity is never replaced once assigned, and
// locally managed sub-collections are never wholesale-replaced by a merge.
package models

import (
	"time"
)

// Base carries the server-assigned identity and bookkeeping timestamps
// every persisted object has.
type Base struct {
	// ID is the server-assigned object id. Empty means the object is a
	// local draft that has not been persisted.
	ID string `json:"_id"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"creationDate"`

	// UpdatedAt is the server-side last-update timestamp.
	UpdatedAt time.Time `json:"lastUpdateDate"`
}

// IsNew reports whether the object has no server identity yet.
func (b *Base) IsNew() bool {
	return b.ID == ""
}

// mergeBase copies identity and timestamps from src. The receiver's identity
// is only ever assigned once: a target that already has an id keeps it.
func (b *Base) mergeBase(src *Base) {
	if b.ID == "" {
		b.ID = src.ID
	}
	if !src.CreatedAt.IsZero() {
		b.CreatedAt = src.CreatedAt
	}
	if !src.UpdatedAt.IsZero() {
		b.UpdatedAt = src.UpdatedAt
	}
}
