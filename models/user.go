// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// User is a Present account.
type User struct {
	Base

	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	Description       string `json:"description"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	Website           string `json:"website"`
	ProfilePictureURL string `json:"profilePictureUrl"`

	VideoCount    int `json:"videoCount"`
	FriendCount   int `json:"friendCount"`
	FollowerCount int `json:"followerCount"`
	LikeCount     int `json:"likeCount"`
	ViewCount     int `json:"viewCount"`
}

// NewUser hydrates a User from a decoded resource payload.
func NewUser(raw json.RawMessage) (*User, error) {
	u := &User{}
	if err := json.Unmarshal(raw, u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return u, nil
}

// NewDraftUser creates a local, not-yet-persisted User.
func NewDraftUser(username, fullName string) *User {
	return &User{
		Username: username,
		FullName: fullName,
	}
}

// MergeFrom copies server-authoritative fields from src onto u.
// Identity and timestamps follow the base contract; scalar profile fields
// and counts are copied unconditionally. Idempotent.
func (u *User) MergeFrom(src *User) {
	if src == nil {
		return
	}
	u.mergeBase(&src.Base)

	u.Username = src.Username
	u.FullName = src.FullName
	u.Description = src.Description
	u.Email = src.Email
	u.PhoneNumber = src.PhoneNumber
	u.Website = src.Website
	u.ProfilePictureURL = src.ProfilePictureURL

	u.VideoCount = src.VideoCount
	u.FriendCount = src.FriendCount
	u.FollowerCount = src.FollowerCount
	u.LikeCount = src.LikeCount
	u.ViewCount = src.ViewCount
}
