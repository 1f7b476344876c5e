// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package routes is the declarative routing layer of the SDK: a closed
// enumeration of logical API operations, each resolving to an HTTP verb, a
// relative path and a parameter-encoding mode.
//
// Route resolution is pure data with no I/O and no failure modes; an invalid
// operation cannot be expressed because the enumeration is the only way to
// obtain one. Read operations use GET with query-string encoding, mutating
// operations use POST with a JSON body.
package routes

import (
	"fmt"
	"net/url"
)

// Encoding selects where request parameters are placed.
type Encoding int

const (
	// EncodingQuery places parameters in the URL query string (GET reads).
	EncodingQuery Encoding = iota
	// EncodingBody places parameters in a JSON request body (POST writes).
	EncodingBody
)

// Params is a string-keyed parameter mapping. Nested mappings (e.g. batch
// search criteria) are passed through as nested values.
type Params map[string]interface{}

// Operation is one logical API operation. The package-level variables below
// form the complete, closed set; Operation values are only comparable data.
type Operation struct {
	family   string
	name     string
	method   string
	encoding Encoding
}

// Family returns the resource family, e.g. "videos".
func (op Operation) Family() string { return op.family }

// Name returns the operation name within its family, e.g. "list_home_videos".
func (op Operation) Name() string { return op.name }

// Method returns the HTTP verb.
func (op Operation) Method() string { return op.method }

// String returns the relative path form, e.g. "videos/list_home_videos".
func (op Operation) String() string { return op.family + "/" + op.name }

// Spec is a fully resolved request intent. A Spec is immutable once
// constructed: Resolve copies the parameter map and callers must not mutate
// the copy they handed in afterwards expecting the Spec to change.
type Spec struct {
	Method   string
	Path     string
	Encoding Encoding
	Params   Params
}

// Resolve produces the Spec for this operation with the given parameters.
// Pure and total: identical inputs produce identical specs on every call.
func (op Operation) Resolve(params Params) Spec {
	copied := make(Params, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Spec{
		Method:   op.method,
		Path:     op.String(),
		Encoding: op.encoding,
		Params:   copied,
	}
}

// EncodeQuery renders the parameter map as a URL query string. Nested
// mappings encode with bracket notation (key[sub]=value). url.Values.Encode
// sorts by key, so the encoding is deterministic.
func (s Spec) EncodeQuery() string {
	values := url.Values{}
	encodeInto(values, "", s.Params)
	return values.Encode()
}

func encodeInto(values url.Values, prefix string, params map[string]interface{}) {
	for key, val := range params {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}
		switch v := val.(type) {
		case map[string]interface{}:
			encodeInto(values, name, v)
		case Params:
			encodeInto(values, name, v)
		case []string:
			for _, item := range v {
				values.Add(name, item)
			}
		case string:
			values.Set(name, v)
		default:
			values.Set(name, fmt.Sprint(v))
		}
	}
}

func get(family, name string) Operation {
	return Operation{family: family, name: name, method: "GET", encoding: EncodingQuery}
}

func post(family, name string) Operation {
	return Operation{family: family, name: name, method: "POST", encoding: EncodingBody}
}

// The complete operation enumeration, grouped by resource family.
var (
	// activities
	ActivitiesShow             = get("activities", "show")
	ActivitiesListMyActivities = get("activities", "list_my_activities")
	ActivitiesMarkAsRead       = post("activities", "mark_as_read")

	// comments
	CommentsCreate            = post("comments", "create")
	CommentsDestroy           = post("comments", "destroy")
	CommentsUpdate            = post("comments", "update")
	CommentsShow              = get("comments", "show")
	CommentsListVideoComments = get("comments", "list_video_comments")

	// friendships
	FriendshipsCreate       = post("friendships", "create")
	FriendshipsDestroy      = post("friendships", "destroy")
	FriendshipsShow         = get("friendships", "show")
	FriendshipsListForward  = get("friendships", "list_user_forward_friendships")
	FriendshipsListBackward = get("friendships", "list_user_backward_friendships")

	// likes
	LikesCreate         = post("likes", "create")
	LikesDestroy        = post("likes", "destroy")
	LikesShow           = get("likes", "show")
	LikesListVideoLikes = get("likes", "list_video_likes")
	LikesListUserLikes  = get("likes", "list_user_likes")

	// users
	UsersCreate               = post("users", "create")
	UsersUpdate               = post("users", "update")
	UsersShow                 = get("users", "show")
	UsersSearch               = get("users", "search")
	UsersBatchSearch          = post("users", "batch_search")
	UsersListBrandNewUsers    = get("users", "list_brand_new_users")
	UsersListFeaturedUsers    = get("users", "list_featured_users")
	UsersRequestPasswordReset = post("users", "request_password_reset")

	// user_contexts
	UserContextsCreate  = post("user_contexts", "create")
	UserContextsDestroy = post("user_contexts", "destroy")

	// videos
	VideosCreate             = post("videos", "create")
	VideosAppend             = post("videos", "append")
	VideosDestroy            = post("videos", "destroy")
	VideosUpdate             = post("videos", "update")
	VideosShow               = get("videos", "show")
	VideosSearch             = get("videos", "search")
	VideosListHomeVideos     = get("videos", "list_home_videos")
	VideosListBrandNewVideos = get("videos", "list_brand_new_videos")
	VideosListPopularVideos  = get("videos", "list_popular_videos")
	VideosListUserVideos     = get("videos", "list_user_videos")

	// views
	ViewsCreate         = post("views", "create")
	ViewsListVideoViews = get("views", "list_video_views")
	ViewsListUserViews  = get("views", "list_user_views")
)
