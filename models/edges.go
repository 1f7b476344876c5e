// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Like is a user's like on a video.
type Like struct {
	Base

	SourceUserID  string `json:"sourceUser"`
	TargetVideoID string `json:"targetVideo"`
}

// NewLike hydrates a Like from a decoded resource payload.
func NewLike(raw json.RawMessage) (*Like, error) {
	l := &Like{}
	if err := json.Unmarshal(raw, l); err != nil {
		return nil, fmt.Errorf("decode like: %w", err)
	}
	return l, nil
}

// MergeFrom copies server-authoritative fields from src onto l. Idempotent.
func (l *Like) MergeFrom(src *Like) {
	if src == nil {
		return
	}
	l.mergeBase(&src.Base)

	l.SourceUserID = src.SourceUserID
	l.TargetVideoID = src.TargetVideoID
}

// View records that a user watched a video.
type View struct {
	Base

	SourceUserID  string `json:"sourceUser"`
	TargetVideoID string `json:"targetVideo"`
}

// NewView hydrates a View from a decoded resource payload.
func NewView(raw json.RawMessage) (*View, error) {
	v := &View{}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode view: %w", err)
	}
	return v, nil
}

// MergeFrom copies server-authoritative fields from src onto v. Idempotent.
func (v *View) MergeFrom(src *View) {
	if src == nil {
		return
	}
	v.mergeBase(&src.Base)

	v.SourceUserID = src.SourceUserID
	v.TargetVideoID = src.TargetVideoID
}

// Friendship is a directed follow edge between two users.
type Friendship struct {
	Base

	SourceUserID string `json:"sourceUser"`
	TargetUserID string `json:"targetUser"`
}

// NewFriendship hydrates a Friendship from a decoded resource payload.
func NewFriendship(raw json.RawMessage) (*Friendship, error) {
	f := &Friendship{}
	if err := json.Unmarshal(raw, f); err != nil {
		return nil, fmt.Errorf("decode friendship: %w", err)
	}
	return f, nil
}

// MergeFrom copies server-authoritative fields from src onto f. Idempotent.
func (f *Friendship) MergeFrom(src *Friendship) {
	if src == nil {
		return
	}
	f.mergeBase(&src.Base)

	f.SourceUserID = src.SourceUserID
	f.TargetUserID = src.TargetUserID
}
