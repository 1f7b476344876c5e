// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Activity is one entry in a user's activity feed (new follower, like,
// comment, mention).
type Activity struct {
	Base

	// Type discriminates the activity kind, e.g. "newFollower",
	// "newLike", "newComment", "newCommentMention".
	Type string `json:"type"`

	// Subject is the rendered activity text.
	Subject string `json:"subject"`

	Unread bool `json:"isUnread"`

	SourceUserID  string `json:"sourceUserId"`
	TargetVideoID string `json:"targetVideoId"`

	// SourceUser is the acting user when the server expands it.
	SourceUser *User `json:"sourceUser"`
}

// NewActivity hydrates an Activity from a decoded resource payload.
func NewActivity(raw json.RawMessage) (*Activity, error) {
	a := &Activity{}
	if err := json.Unmarshal(raw, a); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}
	return a, nil
}

// MergeFrom copies server-authoritative fields from src onto a. Idempotent.
func (a *Activity) MergeFrom(src *Activity) {
	if src == nil {
		return
	}
	a.mergeBase(&src.Base)

	a.Type = src.Type
	a.Subject = src.Subject
	a.Unread = src.Unread
	a.SourceUserID = src.SourceUserID
	a.TargetVideoID = src.TargetVideoID
}
