// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package session holds the authenticated user context and derives the
// per-request credential headers from it.
//
// A Context owns the active Session, persists it through a pluggable Store
// (in-memory, JSON file, or Badger), and hands out atomic header snapshots
// so requests built before a login or logout keep the credentials that were
// current when they started.
package session
