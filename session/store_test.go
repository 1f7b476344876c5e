// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package session

import (
	"os"
	"path/filepath"
	"testing"
)

// storeRoundTrip exercises the Save/Load/Delete contract shared by all
// backends.
func storeRoundTrip(t *testing.T, store Store) {
	t.Helper()

	if _, err := store.Load(); err != ErrNotFound {
		t.Fatalf("Load on empty store: err = %v, want ErrNotFound", err)
	}

	saved := New("tok-123", "user-456")
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Token != saved.Token || loaded.UserID != saved.UserID {
		t.Errorf("Load = %+v, want token %q user %q", loaded, saved.Token, saved.UserID)
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(); err != ErrNotFound {
		t.Errorf("Load after Delete: err = %v, want ErrNotFound", err)
	}

	// Delete on an empty store is a no-op, not an error.
	if err := store.Delete(); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeRoundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeRoundTrip(t, store)
}

func TestBadgerStore(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewBadgerStore: %v", err)
	}
	defer store.Close()
	storeRoundTrip(t, store)
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Save(New("tok", "user")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, sessionFileName))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := first.Save(New("tok", "user")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore (reopen): %v", err)
	}
	loaded, err := second.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if loaded.Token != "tok" {
		t.Errorf("token after reopen = %q, want %q", loaded.Token, "tok")
	}
}

func TestNewStoreFactory(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{"memory", false},
		{"file", false},
		{"", false},
		{"badger", false},
		{"redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := NewStore(tt.backend, t.TempDir())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown backend")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewStore: %v", err)
			}
			defer store.Close()
			if store == nil {
				t.Fatal("NewStore returned nil store")
			}
		})
	}
}
