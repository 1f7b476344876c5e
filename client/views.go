// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"context"

	"github.com/Present-Inc/PresentAPIClient-sub000/internal/validation"
	"github.com/Present-Inc/PresentAPIClient-sub000/models"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// ViewsService exposes the views resource family. Views only accumulate;
// there is no destroy operation.
type ViewsService struct {
	c *Client
}

// Create records that the authenticated user watched a video.
func (s *ViewsService) Create(ctx context.Context, videoID string) (*models.View, error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.ViewsCreate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.ViewsCreate, routes.Params{"video_id": videoID})
	if err != nil {
		return nil, err
	}
	s.c.relations.Views.SetForward(videoID, true)
	return models.NewView(res.Result)
}

// ListVideoViews lists views of a video.
func (s *ViewsService) ListVideoViews(ctx context.Context, videoID string, page PageOptions) (*Page[*models.View], error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.ViewsListVideoViews)
		return nil, err
	}

	params := page.params()
	params["video_id"] = videoID
	return s.list(ctx, routes.ViewsListVideoViews, params)
}

// ListUserViews lists views created by a user.
func (s *ViewsService) ListUserViews(ctx context.Context, userID string, page PageOptions) (*Page[*models.View], error) {
	if err := validation.ValidateStruct(userShowParams{UserID: userID}); err != nil {
		recordValidationFailure(routes.ViewsListUserViews)
		return nil, err
	}

	params := page.params()
	params["user_id"] = userID
	return s.list(ctx, routes.ViewsListUserViews, params)
}

func (s *ViewsService) list(ctx context.Context, op routes.Operation, params routes.Params) (*Page[*models.View], error) {
	col, err := s.c.Collection(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewView, viewID)
}

func viewID(v *models.View) string { return v.ID }
