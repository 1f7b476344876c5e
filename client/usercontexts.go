// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"context"
	"errors"

	"github.com/Present-Inc/PresentAPIClient-sub000/envelope"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/validation"
	"github.com/Present-Inc/PresentAPIClient-sub000/models"
	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
	"github.com/Present-Inc/PresentAPIClient-sub000/session"
)

// UserContextsService drives the authentication flow. Create logs a user in
// and installs the resulting session; Destroy logs out.
type UserContextsService struct {
	c *Client
}

type userContextCreateParams struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Create exchanges credentials for a user context and installs its session.
// Every subsequent request carries the new session headers.
func (s *UserContextsService) Create(ctx context.Context, username, password string) (*models.UserContext, error) {
	if err := validation.ValidateStruct(userContextCreateParams{Username: username, Password: password}); err != nil {
		recordValidationFailure(routes.UserContextsCreate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.UserContextsCreate, routes.Params{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	uc, err := models.NewUserContext(res.Result)
	if err != nil {
		return nil, err
	}
	if uc.SessionToken == "" {
		return nil, errors.New("user context response carried no session token")
	}

	if err := s.c.session.SetSession(session.New(uc.SessionToken, uc.ResolvedUserID())); err != nil {
		// The session is active in memory; only persistence failed.
		logging.Warn().Err(err).Msg("session installed but not persisted")
	}
	logging.Info().Str("user_id", uc.ResolvedUserID()).Msg("logged in")
	return uc, nil
}

// Destroy logs the authenticated user out. In-flight requests are cancelled
// first, then the server-side context is destroyed, and finally the local
// session and relation cache are cleared. Local state is cleared even when
// the server call fails; the returned error reports that failure.
func (s *UserContextsService) Destroy(ctx context.Context) error {
	s.c.CancelAll()

	_, err := s.c.Resource(ctx, routes.UserContextsDestroy, nil)

	// A server-side failure does not keep the client logged in. An expired
	// or already-destroyed context reports a domain error here and the only
	// sensible reaction is the same local cleanup.
	if clearErr := s.c.session.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	s.c.relations.Clear()

	if err != nil {
		var apiErr *envelope.APIError
		if errors.As(err, &apiErr) {
			logging.Warn().Err(err).Msg("server rejected logout, local session cleared anyway")
		}
		return err
	}
	logging.Info().Msg("logged out")
	return nil
}
