// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package session

import "sync"

// Store persists the single active session between process runs.
//
// Load returns ErrNotFound when no session has been saved. Implementations
// must be safe for concurrent use; the Context serializes mutation but
// readers may race with a save.
type Store interface {
	Save(s *Session) error
	Load() (*Session, error)
	Delete() error
	Close() error
}

// MemoryStore keeps the session in process memory only. Useful for tests
// and for callers that manage persistence themselves.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.session = &cp
	return nil
}

func (m *MemoryStore) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil, ErrNotFound
	}
	cp := *m.session
	return &cp, nil
}

func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func (m *MemoryStore) Close() error { return nil }
