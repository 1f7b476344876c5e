// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"context"

	"github.com/Present-Inc/PresentAPIClient-sub000/internal/cache"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/validation"
	"github.com/Present-Inc/PresentAPIClient-sub000/models"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// FriendshipsService exposes the friendships resource family. A friendship
// is directed: the forward direction is viewer follows user, the backward
// direction is user follows viewer.
type FriendshipsService struct {
	c *Client
}

type friendshipIDParams struct {
	FriendshipID string `validate:"required,objectid"`
}

// Create follows a user. The relation cache flips optimistically and rolls
// back if the request fails.
func (s *FriendshipsService) Create(ctx context.Context, targetUserID string) (*models.Friendship, error) {
	if err := validation.ValidateStruct(userShowParams{UserID: targetUserID}); err != nil {
		recordValidationFailure(routes.FriendshipsCreate)
		return nil, err
	}

	prev, had := s.c.relations.Friendships.Get(targetUserID)
	s.c.relations.Friendships.SetForward(targetUserID, true)

	res, err := s.c.Resource(ctx, routes.FriendshipsCreate, routes.Params{"user_id": targetUserID})
	if err != nil {
		s.rollback(targetUserID, prev, had)
		return nil, err
	}
	return models.NewFriendship(res.Result)
}

// Destroy unfollows a user.
func (s *FriendshipsService) Destroy(ctx context.Context, targetUserID string) error {
	if err := validation.ValidateStruct(userShowParams{UserID: targetUserID}); err != nil {
		recordValidationFailure(routes.FriendshipsDestroy)
		return err
	}

	prev, had := s.c.relations.Friendships.Get(targetUserID)
	s.c.relations.Friendships.SetForward(targetUserID, false)

	_, err := s.c.Resource(ctx, routes.FriendshipsDestroy, routes.Params{"user_id": targetUserID})
	if err != nil {
		s.rollback(targetUserID, prev, had)
		return err
	}
	return nil
}

// Show fetches a friendship by id.
func (s *FriendshipsService) Show(ctx context.Context, friendshipID string) (*models.Friendship, error) {
	if err := validation.ValidateStruct(friendshipIDParams{FriendshipID: friendshipID}); err != nil {
		recordValidationFailure(routes.FriendshipsShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.FriendshipsShow, routes.Params{"friendship_id": friendshipID})
	if err != nil {
		return nil, err
	}
	return models.NewFriendship(res.Result)
}

// ListForward lists the users a user follows.
func (s *FriendshipsService) ListForward(ctx context.Context, userID string, page PageOptions) (*Page[*models.Friendship], error) {
	return s.list(ctx, routes.FriendshipsListForward, userID, page)
}

// ListBackward lists a user's followers.
func (s *FriendshipsService) ListBackward(ctx context.Context, userID string, page PageOptions) (*Page[*models.Friendship], error) {
	return s.list(ctx, routes.FriendshipsListBackward, userID, page)
}

func (s *FriendshipsService) list(ctx context.Context, op routes.Operation, userID string, page PageOptions) (*Page[*models.Friendship], error) {
	if err := validation.ValidateStruct(userShowParams{UserID: userID}); err != nil {
		recordValidationFailure(op)
		return nil, err
	}

	params := page.params()
	params["user_id"] = userID
	col, err := s.c.Collection(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewFriendship, friendshipID)
}

func (s *FriendshipsService) rollback(userID string, prev cache.Relation, had bool) {
	if had {
		s.c.relations.Friendships.Put(userID, prev)
	} else {
		s.c.relations.Friendships.Delete(userID)
	}
}

func friendshipID(f *models.Friendship) string { return f.ID }
