// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// MediaURLs are the playback and artwork locations of a video.
type MediaURLs struct {
	HLS   string `json:"hls"`
	MP4   string `json:"mp4"`
	Cover string `json:"cover"`
}

// Video is a Present video, live or archived.
//
// The comments and likes attached to a Video are locally managed paginated
// sub-collections: list calls append pages, create/destroy calls add and
// remove single entries. MergeFrom never touches them.
type Video struct {
	Base

	Title     string    `json:"title"`
	Live      bool      `json:"isLive"`
	StartedAt time.Time `json:"startDate"`
	EndedAt   time.Time `json:"endDate"`
	MediaURLs MediaURLs `json:"mediaUrls"`

	CreatorUserID string `json:"creatorUserId"`
	Creator       *User  `json:"creatorUser"`

	CommentCount int `json:"commentCount"`
	LikeCount    int `json:"likeCount"`
	ViewCount    int `json:"viewCount"`

	comments       []*Comment
	commentsCursor int
	likes          []*Like
	likesCursor    int
}

// NewVideo hydrates a Video from a decoded resource payload.
func NewVideo(raw json.RawMessage) (*Video, error) {
	v := &Video{}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("decode video: %w", err)
	}
	return v, nil
}

// NewDraftVideo creates a local, not-yet-persisted Video.
func NewDraftVideo(title string) *Video {
	return &Video{Title: title}
}

// MergeFrom copies server-authoritative scalar fields from src onto v.
// Attached comment/like collections are left untouched. Idempotent.
func (v *Video) MergeFrom(src *Video) {
	if src == nil {
		return
	}
	v.mergeBase(&src.Base)

	v.Title = src.Title
	v.Live = src.Live
	v.StartedAt = src.StartedAt
	v.EndedAt = src.EndedAt
	v.MediaURLs = src.MediaURLs
	v.CreatorUserID = src.CreatorUserID

	v.CommentCount = src.CommentCount
	v.LikeCount = src.LikeCount
	v.ViewCount = src.ViewCount
}

// Comments returns the locally accumulated comment collection.
func (v *Video) Comments() []*Comment {
	return v.comments
}

// CommentsCursor returns the cursor for the next page of comments.
func (v *Video) CommentsCursor() int {
	return v.commentsCursor
}

// AddComments appends a fetched page of comments and records the next cursor.
func (v *Video) AddComments(page []*Comment, nextCursor int) {
	v.comments = append(v.comments, page...)
	v.commentsCursor = nextCursor
}

// AddComment appends one comment, e.g. right after a successful create.
func (v *Video) AddComment(c *Comment) {
	v.comments = append(v.comments, c)
	v.CommentCount++
}

// RemoveComment removes the comment with the given id, if present.
func (v *Video) RemoveComment(id string) {
	for i, c := range v.comments {
		if c.ID == id {
			v.comments = append(v.comments[:i], v.comments[i+1:]...)
			if v.CommentCount > 0 {
				v.CommentCount--
			}
			return
		}
	}
}

// Likes returns the locally accumulated like collection.
func (v *Video) Likes() []*Like {
	return v.likes
}

// LikesCursor returns the cursor for the next page of likes.
func (v *Video) LikesCursor() int {
	return v.likesCursor
}

// AddLikes appends a fetched page of likes and records the next cursor.
func (v *Video) AddLikes(page []*Like, nextCursor int) {
	v.likes = append(v.likes, page...)
	v.likesCursor = nextCursor
}

// AddLike appends one like, e.g. right after a successful create.
func (v *Video) AddLike(l *Like) {
	v.likes = append(v.likes, l)
	v.LikeCount++
}

// RemoveLike removes the like with the given id, if present.
func (v *Video) RemoveLike(id string) {
	for i, l := range v.likes {
		if l.ID == id {
			v.likes = append(v.likes[:i], v.likes[i+1:]...)
			if v.LikeCount > 0 {
				v.LikeCount--
			}
			return
		}
	}
}
