// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Comment is a user's comment on a video.
type Comment struct {
	Base

	Body          string `json:"body"`
	TargetVideoID string `json:"targetVideo"`
	SourceUserID  string `json:"sourceUserId"`

	// SourceUser is the comment's author when the server expands it.
	SourceUser *User `json:"sourceUser"`
}

// NewComment hydrates a Comment from a decoded resource payload.
func NewComment(raw json.RawMessage) (*Comment, error) {
	c := &Comment{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decode comment: %w", err)
	}
	return c, nil
}

// NewDraftComment creates a local, not-yet-persisted Comment on a video.
func NewDraftComment(videoID, body string) *Comment {
	return &Comment{
		Body:          body,
		TargetVideoID: videoID,
	}
}

// MergeFrom copies server-authoritative fields from src onto c. Idempotent.
func (c *Comment) MergeFrom(src *Comment) {
	if src == nil {
		return
	}
	c.mergeBase(&src.Base)

	c.Body = src.Body
	c.TargetVideoID = src.TargetVideoID
	c.SourceUserID = src.SourceUserID
}
