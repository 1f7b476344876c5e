// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package models

import (
	"reflect"
	"testing"
	"time"
)

func TestNewUser_PartialPayloadDefaults(t *testing.T) {
	u, err := NewUser([]byte(`{"_id":"53a2431b4da3b98903dd40cd","username":"kim"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Username != "kim" {
		t.Errorf("unexpected username %q", u.Username)
	}
	// Absent fields take defined defaults, never undefined state.
	if u.FullName != "" || u.FriendCount != 0 || u.VideoCount != 0 {
		t.Errorf("expected zero defaults, got %+v", u)
	}
	if u.IsNew() {
		t.Error("object with id must not be new")
	}
}

func TestNewUser_MalformedPayload(t *testing.T) {
	if _, err := NewUser([]byte(`[1,2,3]`)); err == nil {
		t.Error("expected decode error for non-object payload")
	}
}

func TestUser_MergeFrom_PreservesIdentity(t *testing.T) {
	local := &User{Base: Base{ID: "original-id"}, Username: "old"}
	server := &User{Base: Base{ID: "different-id"}, Username: "new", FriendCount: 3}

	local.MergeFrom(server)

	if local.ID != "original-id" {
		t.Errorf("merge must never replace an assigned identity, got %q", local.ID)
	}
	if local.Username != "new" || local.FriendCount != 3 {
		t.Errorf("scalar fields not merged: %+v", local)
	}
}

func TestUser_MergeFrom_AssignsIdentityToDraft(t *testing.T) {
	draft := NewDraftUser("kim", "Kim Example")
	created := &User{
		Base: Base{
			ID:        "53a2431b4da3b98903dd40cd",
			CreatedAt: time.Date(2014, 6, 15, 12, 0, 0, 0, time.UTC),
		},
		Username: "kim",
	}

	draft.MergeFrom(created)

	if draft.ID != "53a2431b4da3b98903dd40cd" {
		t.Errorf("draft must take server identity, got %q", draft.ID)
	}
	if draft.CreatedAt.IsZero() {
		t.Error("timestamps must merge")
	}
}

func TestUser_MergeFrom_Idempotent(t *testing.T) {
	snapshot := &User{
		Base:        Base{ID: "id1", UpdatedAt: time.Now().UTC()},
		Username:    "kim",
		Description: "hi",
		LikeCount:   7,
	}

	target := NewDraftUser("kim", "")
	target.MergeFrom(snapshot)
	once := *target

	target.MergeFrom(snapshot)

	if !reflect.DeepEqual(once, *target) {
		t.Errorf("double merge diverged: %+v vs %+v", once, *target)
	}
}

func TestVideo_MergeFrom_DoesNotTouchCollections(t *testing.T) {
	v := NewDraftVideo("sunset")
	v.AddComment(NewDraftComment("vid1", "first"))
	v.AddLikes([]*Like{{Base: Base{ID: "like1"}}}, 10)

	server := &Video{
		Base:         Base{ID: "vid1"},
		Title:        "sunset (live)",
		Live:         true,
		CommentCount: 14,
	}
	v.MergeFrom(server)

	if v.Title != "sunset (live)" || !v.Live {
		t.Errorf("scalars not merged: %+v", v)
	}
	if len(v.Comments()) != 1 {
		t.Errorf("merge replaced local comments: %d", len(v.Comments()))
	}
	if len(v.Likes()) != 1 || v.LikesCursor() != 10 {
		t.Errorf("merge replaced local likes: %d cursor=%d", len(v.Likes()), v.LikesCursor())
	}
	// Server count wins over local bookkeeping.
	if v.CommentCount != 14 {
		t.Errorf("expected merged comment count 14, got %d", v.CommentCount)
	}
}

func TestVideo_CommentManagement(t *testing.T) {
	v := NewDraftVideo("t")

	c1 := &Comment{Base: Base{ID: "c1"}, Body: "one"}
	c2 := &Comment{Base: Base{ID: "c2"}, Body: "two"}
	v.AddComments([]*Comment{c1, c2}, 20)

	if v.CommentsCursor() != 20 {
		t.Errorf("cursor = %d, want 20", v.CommentsCursor())
	}

	v.RemoveComment("c1")
	if len(v.Comments()) != 1 || v.Comments()[0].ID != "c2" {
		t.Errorf("unexpected comments after remove: %+v", v.Comments())
	}

	// Removing an absent id is a no-op.
	v.RemoveComment("missing")
	if len(v.Comments()) != 1 {
		t.Error("remove of absent id must not change the collection")
	}
}

func TestNewVideo_Hydration(t *testing.T) {
	raw := []byte(`{
		"_id": "53a2431b4da3b98903dd40cd",
		"title": "beach",
		"isLive": true,
		"mediaUrls": {"hls": "https://cdn.present.tv/v/x.m3u8", "cover": "https://cdn.present.tv/v/x.jpg"},
		"creatorUserId": "53a2431b4da3b98903dd40ce",
		"likeCount": 4
	}`)

	v, err := NewVideo(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Live || v.MediaURLs.HLS == "" || v.LikeCount != 4 {
		t.Errorf("hydration incomplete: %+v", v)
	}
	if v.MediaURLs.MP4 != "" {
		t.Errorf("absent media url must default empty, got %q", v.MediaURLs.MP4)
	}
}

func TestNewDraftComment(t *testing.T) {
	c := NewDraftComment("vid1", "hello")

	if !c.IsNew() {
		t.Error("draft must have no identity")
	}
	if c.TargetVideoID != "vid1" || c.Body != "hello" {
		t.Errorf("unexpected draft: %+v", c)
	}
}

func TestFriendship_MergeFrom(t *testing.T) {
	f := &Friendship{}
	src := &Friendship{
		Base:         Base{ID: "f1"},
		SourceUserID: "u1",
		TargetUserID: "u2",
	}

	f.MergeFrom(src)
	f.MergeFrom(src)

	if f.ID != "f1" || f.SourceUserID != "u1" || f.TargetUserID != "u2" {
		t.Errorf("unexpected merge result: %+v", f)
	}
}

func TestMergeFrom_NilSourceIsNoOp(t *testing.T) {
	u := &User{Base: Base{ID: "id"}, Username: "kim"}
	u.MergeFrom(nil)
	if u.Username != "kim" {
		t.Error("nil merge must not change target")
	}

	v := &Video{Base: Base{ID: "v"}}
	v.MergeFrom(nil)

	(&Comment{}).MergeFrom(nil)
	(&Like{}).MergeFrom(nil)
	(&View{}).MergeFrom(nil)
	(&Friendship{}).MergeFrom(nil)
	(&Activity{}).MergeFrom(nil)
	(&UserContext{}).MergeFrom(nil)
}

func TestNewUserContext(t *testing.T) {
	raw := []byte(`{
		"_id": "ctx1",
		"sessionToken": "tok-abc",
		"user": {"_id": "53a2431b4da3b98903dd40ce", "username": "kim"}
	}`)

	uc, err := NewUserContext(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.SessionToken != "tok-abc" {
		t.Errorf("unexpected token %q", uc.SessionToken)
	}
	if uc.ResolvedUserID() != "53a2431b4da3b98903dd40ce" {
		t.Errorf("expected id from expanded user, got %q", uc.ResolvedUserID())
	}
}

func TestNewActivity(t *testing.T) {
	raw := []byte(`{"_id":"a1","type":"newFollower","isUnread":true,"sourceUserId":"u9"}`)

	a, err := NewActivity(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Type != "newFollower" || !a.Unread || a.SourceUserID != "u9" {
		t.Errorf("hydration incomplete: %+v", a)
	}
}
