// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Present-Inc/PresentAPIClient-sub000/envelope"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/cache"
)

// Page is one page of a paginated listing. HasMore reports whether the
// server sent a cursor for the next page; NextCursor is meaningful only when
// it did.
type Page[T any] struct {
	Items      []T
	NextCursor int
	HasMore    bool
}

// rememberRelations records viewer-relative relation data from a response
// into the relation cache, keyed by the object it was attached to.
func (c *Client) rememberRelations(objectID string, meta *envelope.RelationMeta) {
	if meta == nil || objectID == "" {
		return
	}
	if meta.Friendship != nil {
		c.relations.Friendships.Put(objectID, cache.Relation{
			Forward:  meta.Friendship.Forward,
			Backward: meta.Friendship.Backward,
		})
	}
	if meta.Like != nil {
		c.relations.Likes.Put(objectID, cache.Relation{
			Forward:  meta.Like.Forward,
			Backward: meta.Like.Backward,
		})
	}
	if meta.View != nil {
		c.relations.Views.Put(objectID, cache.Relation{
			Forward:  meta.View.Forward,
			Backward: meta.View.Backward,
		})
	}
}

// collectPage decodes every item of a collection, unwrapping relation data
// into the cache as it goes. decode builds the model from an unwrapped
// payload; id extracts the cache key from a decoded model.
func collectPage[T any](c *Client, col *envelope.Collection, decode func(json.RawMessage) (*T, error), id func(*T) string) (*Page[*T], error) {
	page := &Page[*T]{
		Items:      make([]*T, 0, len(col.Results)),
		NextCursor: col.NextCursor,
		HasMore:    col.HasMore,
	}
	for i, item := range col.Results {
		payload, meta := envelope.UnwrapObject(item)
		m, err := decode(payload)
		if err != nil {
			return nil, fmt.Errorf("decode result %d: %w", i, err)
		}
		c.rememberRelations(id(m), meta)
		page.Items = append(page.Items, m)
	}
	return page, nil
}
