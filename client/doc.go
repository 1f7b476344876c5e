// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package client is the entry point of the Present API client.
//
// A Client owns the HTTP transport, the session context, the relation cache
// and the asynchronous request dispatcher, and exposes one typed service per
// resource family (Users, Videos, Comments, Likes, Views, Friendships,
// Activities, UserContexts).
//
// Requests can be driven two ways. The typed services are synchronous and
// context-aware. Underneath them, DispatchResource and DispatchCollection
// run the asynchronous path directly: they return a PendingRequest that can
// be cancelled at any point before completion, and deliver exactly one
// result to the supplied continuation on the client's response-processing
// goroutines.
package client
