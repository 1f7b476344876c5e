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

// VideosService exposes the videos resource family, including segmented
// media upload.
type VideosService struct {
	c *Client
}

type videoShowParams struct {
	VideoID string `validate:"required,objectid"`
}

type videoSearchParams struct {
	Query string `validate:"required"`
}

type videoCreateParams struct {
	Title string `validate:"max=120"`
}

type videoAppendParams struct {
	VideoID       string `validate:"required,objectid"`
	MediaSequence int    `validate:"min=0"`
}

type videoUpdateParams struct {
	VideoID string `validate:"required,objectid"`
	Title   string `validate:"required,max=120"`
}

// Show fetches a video by id. The viewer's like and view relations attached
// to the response land in the relation cache.
func (s *VideosService) Show(ctx context.Context, id string) (*models.Video, error) {
	if err := validation.ValidateStruct(videoShowParams{VideoID: id}); err != nil {
		recordValidationFailure(routes.VideosShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.VideosShow, routes.Params{"video_id": id})
	if err != nil {
		return nil, err
	}
	video, err := models.NewVideo(res.Result)
	if err != nil {
		return nil, err
	}
	s.c.rememberRelations(video.ID, res.Meta)
	return video, nil
}

// ListHome lists the authenticated user's home feed.
func (s *VideosService) ListHome(ctx context.Context, page PageOptions) (*Page[*models.Video], error) {
	return s.list(ctx, routes.VideosListHomeVideos, page.params())
}

// ListBrandNew lists recently published videos.
func (s *VideosService) ListBrandNew(ctx context.Context, page PageOptions) (*Page[*models.Video], error) {
	return s.list(ctx, routes.VideosListBrandNewVideos, page.params())
}

// ListPopular lists trending videos.
func (s *VideosService) ListPopular(ctx context.Context, page PageOptions) (*Page[*models.Video], error) {
	return s.list(ctx, routes.VideosListPopularVideos, page.params())
}

// ListUser lists videos created by the given user.
func (s *VideosService) ListUser(ctx context.Context, userID string, page PageOptions) (*Page[*models.Video], error) {
	if err := validation.ValidateStruct(userShowParams{UserID: userID}); err != nil {
		recordValidationFailure(routes.VideosListUserVideos)
		return nil, err
	}

	params := page.params()
	params["user_id"] = userID
	return s.list(ctx, routes.VideosListUserVideos, params)
}

// Search finds videos matching query.
func (s *VideosService) Search(ctx context.Context, query string, page PageOptions) (*Page[*models.Video], error) {
	if err := validation.ValidateStruct(videoSearchParams{Query: query}); err != nil {
		recordValidationFailure(routes.VideosSearch)
		return nil, err
	}

	params := page.params()
	params["query"] = query
	return s.list(ctx, routes.VideosSearch, params)
}

// Create starts a new video with its first media segment. The returned
// video carries the server-assigned id used for subsequent Append calls.
func (s *VideosService) Create(ctx context.Context, title string, segment *Upload) (*models.Video, error) {
	if err := validation.ValidateStruct(videoCreateParams{Title: title}); err != nil {
		recordValidationFailure(routes.VideosCreate)
		return nil, err
	}

	params := routes.Params{}
	setIfPresent(params, "title", title)
	res, err := s.c.Upload(ctx, routes.VideosCreate, params, segment)
	if err != nil {
		return nil, err
	}
	return models.NewVideo(res.Result)
}

// Append adds the next media segment to a live video. mediaSequence orders
// segments server-side; pass consecutive values starting after the segment
// uploaded with Create.
func (s *VideosService) Append(ctx context.Context, videoID string, mediaSequence int, segment *Upload) (*models.Video, error) {
	p := videoAppendParams{VideoID: videoID, MediaSequence: mediaSequence}
	if err := validation.ValidateStruct(p); err != nil {
		recordValidationFailure(routes.VideosAppend)
		return nil, err
	}

	params := routes.Params{
		"video_id":       videoID,
		"media_sequence": mediaSequence,
	}
	res, err := s.c.Upload(ctx, routes.VideosAppend, params, segment)
	if err != nil {
		return nil, err
	}
	return models.NewVideo(res.Result)
}

// Update changes a video's title.
func (s *VideosService) Update(ctx context.Context, videoID, title string) (*models.Video, error) {
	if err := validation.ValidateStruct(videoUpdateParams{VideoID: videoID, Title: title}); err != nil {
		recordValidationFailure(routes.VideosUpdate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.VideosUpdate, routes.Params{
		"video_id": videoID,
		"title":    title,
	})
	if err != nil {
		return nil, err
	}
	return models.NewVideo(res.Result)
}

// Destroy deletes a video.
func (s *VideosService) Destroy(ctx context.Context, videoID string) error {
	if err := validation.ValidateStruct(videoShowParams{VideoID: videoID}); err != nil {
		recordValidationFailure(routes.VideosDestroy)
		return err
	}

	_, err := s.c.Resource(ctx, routes.VideosDestroy, routes.Params{"video_id": videoID})
	if err != nil {
		return err
	}
	s.c.relations.Likes.Delete(videoID)
	s.c.relations.Views.Delete(videoID)
	return nil
}

func (s *VideosService) list(ctx context.Context, op routes.Operation, params routes.Params) (*Page[*models.Video], error) {
	col, err := s.c.Collection(ctx, op, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewVideo, videoID)
}

func videoID(v *models.Video) string { return v.ID }
