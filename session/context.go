// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/metrics"
)

// Observer is notified after every header-affecting state change with a
// snapshot of the derived headers. Observers run outside the Context's lock
// and must not call back into the Context from the same goroutine chain.
type Observer func(headers map[string]string)

// Context is the holder of the current session and its derived headers.
//
// Mutation (SetSession, Clear, SetCredential) is expected from a single
// control-flow context; concurrent readers are safe, and the dispatcher
// snapshots headers atomically at request-build time so an in-flight
// request's captured headers are never corrupted by a later change.
type Context struct {
	mu      sync.RWMutex
	version string
	store   Store

	session *Session
	loaded  bool

	// extra holds credentials installed via SetCredential, keyed by header.
	extra map[string]string

	observers []Observer
}

// NewContext creates a session context backed by the given store. version is
// sent as the static API-version header on every request.
func NewContext(store Store, version string) *Context {
	return &Context{
		version: version,
		store:   store,
		extra:   make(map[string]string),
	}
}

// Store returns the persistence backend this context writes through.
func (c *Context) Store() Store {
	return c.store
}

// Observe registers an observer for header changes.
func (c *Context) Observe(fn Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Headers returns an independent snapshot of the headers every request must
// carry: the API version header always, the session-token and user-id
// headers when authenticated, plus any extra credentials.
func (c *Context) Headers() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoadedLocked()
	return c.headersLocked()
}

// headersLocked builds the header snapshot. Callers hold mu.
func (c *Context) headersLocked() map[string]string {
	headers := make(map[string]string, len(c.extra)+3)
	headers[HeaderVersion] = c.version
	for k, v := range c.extra {
		headers[k] = v
	}
	if c.session.Valid() {
		headers[HeaderSessionToken] = c.session.Token
		headers[HeaderUserID] = c.session.UserID
	}
	return headers
}

// SetCredential stores a named credential header; an empty value removes it.
// The derived headers change synchronously, so the next dispatched request
// observes the new value.
func (c *Context) SetCredential(headerKey, value string) {
	c.mu.Lock()
	c.ensureLoadedLocked()
	if value == "" {
		delete(c.extra, headerKey)
	} else {
		c.extra[headerKey] = value
	}
	snapshot := c.headersLocked()
	observers := c.observers
	c.mu.Unlock()

	notify(observers, snapshot)
}

// SetSession installs s as the active session, replacing any prior one, and
// persists it. A nil session is equivalent to Clear.
//
// The in-memory state changes even when persistence fails; the error reports
// the persistence failure so callers can react, while subsequent requests
// already carry the new credentials.
func (c *Context) SetSession(s *Session) error {
	if s == nil {
		return c.Clear()
	}

	c.mu.Lock()
	c.session = s
	c.loaded = true
	snapshot := c.headersLocked()
	observers := c.observers
	c.mu.Unlock()

	metrics.SessionChanges.WithLabelValues("set").Inc()
	logging.Debug().Str("user_id", s.UserID).Msg("session installed")

	notify(observers, snapshot)

	if err := c.store.Save(s); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear removes the active session: both authentication headers disappear
// from subsequent dispatches and the persisted copy is deleted.
func (c *Context) Clear() error {
	c.mu.Lock()
	c.session = nil
	c.loaded = true
	snapshot := c.headersLocked()
	observers := c.observers
	c.mu.Unlock()

	metrics.SessionChanges.WithLabelValues("clear").Inc()
	logging.Debug().Msg("session cleared")

	notify(observers, snapshot)

	if err := c.store.Delete(); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}
	return nil
}

// Current returns the active session, lazily loading a persisted one on
// first access. Returns nil when no session exists in memory or on disk.
func (c *Context) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoadedLocked()
	return c.session
}

// CurrentUserID returns the authenticated user's id, or empty string.
func (c *Context) CurrentUserID() string {
	s := c.Current()
	if !s.Valid() {
		return ""
	}
	return s.UserID
}

// IsAuthenticated reports whether a valid session is active.
func (c *Context) IsAuthenticated() bool {
	return c.Current().Valid()
}

// ensureLoadedLocked performs the one-time lazy load from the store.
// Callers hold mu.
func (c *Context) ensureLoadedLocked() {
	if c.loaded {
		return
	}
	c.loaded = true

	s, err := c.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logging.Warn().Err(err).Msg("failed to load persisted session")
		}
		return
	}
	c.session = s
	logging.Debug().Str("user_id", s.UserID).Msg("session restored from store")
}

func notify(observers []Observer, headers map[string]string) {
	for _, fn := range observers {
		fn(headers)
	}
}
