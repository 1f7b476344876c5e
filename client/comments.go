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

// CommentsService exposes the comments resource family.
type CommentsService struct {
	c *Client
}

type commentCreateParams struct {
	VideoID string `validate:"required,objectid"`
	Body    string `validate:"required,max=500"`
}

type commentUpdateParams struct {
	CommentID string `validate:"required,objectid"`
	Body      string `validate:"required,max=500"`
}

type commentIDParams struct {
	CommentID string `validate:"required,objectid"`
}

// Create posts a comment on a video. An empty or oversized body fails
// locally before any network I/O.
func (s *CommentsService) Create(ctx context.Context, videoID, body string) (*models.Comment, error) {
	if err := validation.ValidateStruct(commentCreateParams{VideoID: videoID, Body: body}); err != nil {
		recordValidationFailure(routes.CommentsCreate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.CommentsCreate, routes.Params{
		"video_id": videoID,
		"body":     body,
	})
	if err != nil {
		return nil, err
	}
	return models.NewComment(res.Result)
}

// Update replaces a comment's body.
func (s *CommentsService) Update(ctx context.Context, commentID, body string) (*models.Comment, error) {
	if err := validation.ValidateStruct(commentUpdateParams{CommentID: commentID, Body: body}); err != nil {
		recordValidationFailure(routes.CommentsUpdate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.CommentsUpdate, routes.Params{
		"comment_id": commentID,
		"body":       body,
	})
	if err != nil {
		return nil, err
	}
	return models.NewComment(res.Result)
}

// Destroy deletes a comment.
func (s *CommentsService) Destroy(ctx context.Context, commentID string) error {
	if err := validation.ValidateStruct(commentIDParams{CommentID: commentID}); err != nil {
		recordValidationFailure(routes.CommentsDestroy)
		return err
	}

	_, err := s.c.Resource(ctx, routes.CommentsDestroy, routes.Params{"comment_id": commentID})
	return err
}

// Show fetches a comment by id.
func (s *CommentsService) Show(ctx context.Context, commentID string) (*models.Comment, error) {
	if err := validation.ValidateStruct(commentIDParams{CommentID: commentID}); err != nil {
		recordValidationFailure(routes.CommentsShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.CommentsShow, routes.Params{"comment_id": commentID})
	if err != nil {
		return nil, err
	}
	return models.NewComment(res.Result)
}

// ListForVideo lists a video's comments in server order.
func (s *CommentsService) ListForVideo(ctx context.Context, videoID string, page PageOptions) (*Page[*models.Comment], error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.CommentsListVideoComments)
		return nil, err
	}

	params := page.params()
	params["video_id"] = videoID
	col, err := s.c.Collection(ctx, routes.CommentsListVideoComments, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewComment, commentID)
}

func commentID(c *models.Comment) string { return c.ID }
