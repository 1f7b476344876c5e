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

// LikesService exposes the likes resource family. Create and Destroy update
// the relation cache optimistically so the UI state flips immediately; a
// failed request restores the previous cached state.
type LikesService struct {
	c *Client
}

type likeIDParams struct {
	LikeID string `validate:"required,objectid"`
}

// Create likes a video on behalf of the authenticated user.
func (s *LikesService) Create(ctx context.Context, videoID string) (*models.Like, error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.LikesCreate)
		return nil, err
	}

	prev, had := s.c.relations.Likes.Get(videoID)
	s.c.relations.Likes.SetForward(videoID, true)

	res, err := s.c.Resource(ctx, routes.LikesCreate, routes.Params{"video_id": videoID})
	if err != nil {
		s.rollback(videoID, prev, had)
		return nil, err
	}
	return models.NewLike(res.Result)
}

// Destroy removes the authenticated user's like on a video.
func (s *LikesService) Destroy(ctx context.Context, videoID string) error {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.LikesDestroy)
		return err
	}

	prev, had := s.c.relations.Likes.Get(videoID)
	s.c.relations.Likes.SetForward(videoID, false)

	_, err := s.c.Resource(ctx, routes.LikesDestroy, routes.Params{"video_id": videoID})
	if err != nil {
		s.rollback(videoID, prev, had)
		return err
	}
	return nil
}

// Show fetches a like by id.
func (s *LikesService) Show(ctx context.Context, likeID string) (*models.Like, error) {
	if err := validation.ValidateStruct(likeIDParams{LikeID: likeID}); err != nil {
		recordValidationFailure(routes.LikesShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.LikesShow, routes.Params{"like_id": likeID})
	if err != nil {
		return nil, err
	}
	return models.NewLike(res.Result)
}

// ListVideoLikes lists likes on a video.
func (s *LikesService) ListVideoLikes(ctx context.Context, videoID string, page PageOptions) (*Page[*models.Like], error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.LikesListVideoLikes)
		return nil, err
	}

	params := page.params()
	params["video_id"] = videoID
	return s.list(ctx, routes.LikesListVideoLikes, params)
}

// ListUserLikes lists likes created by a user.
func (s *LikesService) ListUserLikes(ctx context.Context, userID string, page PageOptions) (*Page[*models.Like], error) {
	if err := validation.ValidateStruct(userShowParams{UserID: userID}); err != nil {
		recordValidationFailure(routes.LikesListUserLikes)
		return nil, err
	}

	params := page.params()
	params["user_id"] = userID
	return s.list(ctx, routes.LikesListUserLikes, params)
}

func (s *LikesService) list(ctx context.Context, op routes.Operation, params routes.Params) (*Page[*models.Like], error) {
	col, err := s.c.Collection(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewLike, likeID)
}

// rollback restores the cached relation captured before the optimistic
// flip. A missing prior entry is removed rather than zeroed.
func (s *LikesService) rollback(videoID string, prev cache.Relation, had bool) {
	if had {
		s.c.relations.Likes.Put(videoID, prev)
	} else {
		s.c.relations.Likes.Delete(videoID)
	}
}

func likeID(l *models.Like) string { return l.ID }
