// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package session

import (
	"fmt"
	"sync"
	"testing"
)

// wrappedNotFoundStore reports the empty state the way a real backend would:
// with ErrNotFound wrapped in backend detail.
type wrappedNotFoundStore struct{}

func (wrappedNotFoundStore) Load() (*Session, error) {
	return nil, fmt.Errorf("open session file: %w", ErrNotFound)
}
func (wrappedNotFoundStore) Save(*Session) error { return nil }
func (wrappedNotFoundStore) Delete() error       { return nil }
func (wrappedNotFoundStore) Close() error        { return nil }

func TestHeadersUnauthenticated(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")

	headers := ctx.Headers()
	if got := headers[HeaderVersion]; got != "2014-06-15" {
		t.Errorf("version header = %q, want %q", got, "2014-06-15")
	}
	if _, ok := headers[HeaderSessionToken]; ok {
		t.Error("session token header present without a session")
	}
	if _, ok := headers[HeaderUserID]; ok {
		t.Error("user id header present without a session")
	}
}

func TestSetSessionDerivesHeaders(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")

	if err := ctx.SetSession(New("tok-abc", "user-1")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	headers := ctx.Headers()
	if got := headers[HeaderSessionToken]; got != "tok-abc" {
		t.Errorf("token header = %q, want %q", got, "tok-abc")
	}
	if got := headers[HeaderUserID]; got != "user-1" {
		t.Errorf("user id header = %q, want %q", got, "user-1")
	}
	if !ctx.IsAuthenticated() {
		t.Error("IsAuthenticated = false after SetSession")
	}
	if got := ctx.CurrentUserID(); got != "user-1" {
		t.Errorf("CurrentUserID = %q, want %q", got, "user-1")
	}
}

func TestSetSessionReplacesPrior(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")

	if err := ctx.SetSession(New("tok-old", "user-old")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := ctx.SetSession(New("tok-new", "user-new")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	headers := ctx.Headers()
	if got := headers[HeaderSessionToken]; got != "tok-new" {
		t.Errorf("token header = %q, want %q", got, "tok-new")
	}
	if got := headers[HeaderUserID]; got != "user-new" {
		t.Errorf("user id header = %q, want %q", got, "user-new")
	}
}

func TestClearRemovesBothAuthHeaders(t *testing.T) {
	store := NewMemoryStore()
	ctx := NewContext(store, "2014-06-15")

	if err := ctx.SetSession(New("tok", "user")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	headers := ctx.Headers()
	if _, ok := headers[HeaderSessionToken]; ok {
		t.Error("session token header survived Clear")
	}
	if _, ok := headers[HeaderUserID]; ok {
		t.Error("user id header survived Clear")
	}
	if ctx.IsAuthenticated() {
		t.Error("IsAuthenticated = true after Clear")
	}
	if _, err := store.Load(); err != ErrNotFound {
		t.Errorf("persisted session after Clear: err = %v, want ErrNotFound", err)
	}
}

func TestSetCredential(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")

	ctx.SetCredential("Present-Device-Id", "device-9")
	if got := ctx.Headers()["Present-Device-Id"]; got != "device-9" {
		t.Errorf("credential header = %q, want %q", got, "device-9")
	}

	// Empty value clears the credential.
	ctx.SetCredential("Present-Device-Id", "")
	if _, ok := ctx.Headers()["Present-Device-Id"]; ok {
		t.Error("credential header survived empty-value clear")
	}
}

func TestLazyLoadFromStore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save(New("tok-persisted", "user-persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	ctx := NewContext(store, "2014-06-15")
	if got := ctx.CurrentUserID(); got != "user-persisted" {
		t.Errorf("CurrentUserID = %q, want %q", got, "user-persisted")
	}
	if got := ctx.Headers()[HeaderSessionToken]; got != "tok-persisted" {
		t.Errorf("token header = %q, want %q", got, "tok-persisted")
	}
}

func TestLazyLoadTreatsWrappedNotFoundAsEmpty(t *testing.T) {
	ctx := NewContext(wrappedNotFoundStore{}, "2014-06-15")
	if ctx.IsAuthenticated() {
		t.Error("empty store left the context authenticated")
	}
	if got := ctx.CurrentUserID(); got != "" {
		t.Errorf("CurrentUserID = %q, want empty", got)
	}
}

func TestObserverNotified(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")

	var (
		mu        sync.Mutex
		snapshots []map[string]string
	)
	ctx.Observe(func(headers map[string]string) {
		mu.Lock()
		snapshots = append(snapshots, headers)
		mu.Unlock()
	})

	if err := ctx.SetSession(New("tok", "user")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(snapshots) != 2 {
		t.Fatalf("observer called %d times, want 2", len(snapshots))
	}
	if got := snapshots[0][HeaderSessionToken]; got != "tok" {
		t.Errorf("first snapshot token = %q, want %q", got, "tok")
	}
	if _, ok := snapshots[1][HeaderSessionToken]; ok {
		t.Error("second snapshot still carries session token")
	}
}

func TestHeadersSnapshotIsIndependent(t *testing.T) {
	ctx := NewContext(NewMemoryStore(), "2014-06-15")
	if err := ctx.SetSession(New("tok", "user")); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	snapshot := ctx.Headers()
	if err := ctx.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if got := snapshot[HeaderSessionToken]; got != "tok" {
		t.Errorf("earlier snapshot mutated by Clear: token = %q", got)
	}
}

func TestSessionValid(t *testing.T) {
	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{"nil", nil, false},
		{"empty token", &Session{UserID: "u"}, false},
		{"empty user", &Session{Token: "t"}, false},
		{"complete", New("t", "u"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
