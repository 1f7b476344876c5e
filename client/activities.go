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

// ActivitiesService exposes the authenticated user's activity feed.
type ActivitiesService struct {
	c *Client
}

type activityIDParams struct {
	ActivityID string `validate:"required,objectid"`
}

type activityMarkParams struct {
	ActivityIDs []string `validate:"required,min=1,dive,objectid"`
}

// Show fetches an activity by id.
func (s *ActivitiesService) Show(ctx context.Context, activityID string) (*models.Activity, error) {
	if err := validation.ValidateStruct(activityIDParams{ActivityID: activityID}); err != nil {
		recordValidationFailure(routes.ActivitiesShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.ActivitiesShow, routes.Params{"activity_id": activityID})
	if err != nil {
		return nil, err
	}
	return models.NewActivity(res.Result)
}

// ListMine lists the authenticated user's activities, newest first.
func (s *ActivitiesService) ListMine(ctx context.Context, page PageOptions) (*Page[*models.Activity], error) {
	col, err := s.c.Collection(ctx, routes.ActivitiesListMyActivities, page.params())
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewActivity, activityID)
}

// MarkAsRead marks the given activities as read.
func (s *ActivitiesService) MarkAsRead(ctx context.Context, activityIDs []string) error {
	if err := validation.ValidateStruct(activityMarkParams{ActivityIDs: activityIDs}); err != nil {
		recordValidationFailure(routes.ActivitiesMarkAsRead)
		return err
	}

	_, err := s.c.Resource(ctx, routes.ActivitiesMarkAsRead, routes.Params{"activity_ids": activityIDs})
	return err
}

func activityID(a *models.Activity) string { return a.ID }
