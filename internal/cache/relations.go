// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package cache provides the process-local relation cache: the viewer's
// forward/backward edge state toward other objects (liked, followed, viewed),
// keyed by target object id.
//
// The cache is consulted during model hydration and mutated optimistically
// after create/destroy round-trips, independent of re-fetching the object.
// Per-key get/store are atomic; there are no cross-key transactional
// guarantees. Lifetime is the owning client (effectively the process or the
// session).
package cache

import (
	"sync"

	"github.com/Present-Inc/PresentAPIClient-sub000/internal/metrics"
)

// Relation is a viewer-relative edge toward a target object.
// Forward is the viewer's edge to the target ("I like this video",
// "I follow this user"); Backward is the reverse edge where it exists
// ("this user follows me").
type Relation struct {
	Forward  bool
	Backward bool
}

// Store is a thread-safe mapping from object id to Relation for one
// relation kind. All operations are O(1).
type Store struct {
	mu    sync.RWMutex
	kind  string
	items map[string]Relation
}

// NewStore creates an empty relation store for the named kind.
// The kind labels the cache's Prometheus series ("friendship", "like", "view").
func NewStore(kind string) *Store {
	return &Store{
		kind:  kind,
		items: make(map[string]Relation),
	}
}

// Get returns the cached relation for id and whether one was present.
func (s *Store) Get(id string) (Relation, bool) {
	s.mu.RLock()
	r, ok := s.items[id]
	s.mu.RUnlock()

	metrics.RecordRelationCacheLookup(s.kind, ok)
	return r, ok
}

// Put stores the relation for id, replacing any previous value.
func (s *Store) Put(id string, r Relation) {
	s.mu.Lock()
	s.items[id] = r
	n := len(s.items)
	s.mu.Unlock()

	metrics.RelationCacheEntries.WithLabelValues(s.kind).Set(float64(n))
}

// SetForward updates only the forward flag for id, preserving any cached
// backward flag. Used for optimistic flips after create/destroy calls.
func (s *Store) SetForward(id string, forward bool) {
	s.mu.Lock()
	r := s.items[id]
	r.Forward = forward
	s.items[id] = r
	n := len(s.items)
	s.mu.Unlock()

	metrics.RelationCacheEntries.WithLabelValues(s.kind).Set(float64(n))
}

// Delete removes the relation for id. Removing an absent id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	n := len(s.items)
	s.mu.Unlock()

	metrics.RelationCacheEntries.WithLabelValues(s.kind).Set(float64(n))
}

// Len returns the number of cached relations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all cached relations. Called on session teardown so a new
// viewer never observes the previous viewer's edges.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = make(map[string]Relation)
	s.mu.Unlock()

	metrics.RelationCacheEntries.WithLabelValues(s.kind).Set(0)
}

// Relations bundles one store per relation kind.
type Relations struct {
	Friendships *Store
	Likes       *Store
	Views       *Store
}

// NewRelations creates empty stores for every relation kind.
func NewRelations() *Relations {
	return &Relations{
		Friendships: NewStore("friendship"),
		Likes:       NewStore("like"),
		Views:       NewStore("view"),
	}
}

// Clear empties every store.
func (r *Relations) Clear() {
	r.Friendships.Clear()
	r.Likes.Clear()
	r.Views.Clear()
}
