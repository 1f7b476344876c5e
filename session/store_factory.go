// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package session

import "fmt"

// NewStore creates a session store for the configured backend.
// Supported backends are "memory", "file" and "badger"; dir is the
// storage directory for the persistent backends.
func NewStore(backend, dir string) (Store, error) {
	switch backend {
	case "memory":
		return NewMemoryStore(), nil
	case "file", "":
		return NewFileStore(dir)
	case "badger":
		return NewBadgerStore(dir)
	default:
		return nil, fmt.Errorf("unknown session store backend %q", backend)
	}
}
