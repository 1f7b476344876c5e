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

// UsersService exposes the users resource family.
type UsersService struct {
	c *Client
}

type userShowParams struct {
	UserID string `validate:"required,objectid"`
}

type userSearchParams struct {
	Query string `validate:"required"`
}

// UserBatchSearchQuery is the input of BatchSearch. Empty slices are
// omitted from the request.
type UserBatchSearchQuery struct {
	Usernames    []string
	Emails       []string
	PhoneNumbers []string
}

type userCreateParams struct {
	Username string `validate:"required,min=3,max=30"`
	Password string `validate:"required,min=6"`
	Email    string `validate:"required,email"`
}

type userResetParams struct {
	Username string `validate:"required"`
}

// UserUpdate carries the mutable profile fields. Zero-valued fields are left
// untouched on the server.
type UserUpdate struct {
	FullName          string
	Description       string
	Website           string
	Email             string
	PhoneNumber       string
	ProfilePictureURL string
}

// Show fetches a user by id. Relation data the server attaches (is this
// viewer a friend of the user) lands in the relation cache.
func (s *UsersService) Show(ctx context.Context, id string) (*models.User, error) {
	if err := validation.ValidateStruct(userShowParams{UserID: id}); err != nil {
		recordValidationFailure(routes.UsersShow)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.UsersShow, routes.Params{"user_id": id})
	if err != nil {
		return nil, err
	}
	user, err := models.NewUser(res.Result)
	if err != nil {
		return nil, err
	}
	s.c.rememberRelations(user.ID, res.Meta)
	return user, nil
}

// Search finds users matching query.
func (s *UsersService) Search(ctx context.Context, query string, page PageOptions) (*Page[*models.User], error) {
	if err := validation.ValidateStruct(userSearchParams{Query: query}); err != nil {
		recordValidationFailure(routes.UsersSearch)
		return nil, err
	}

	params := page.params()
	params["query"] = query
	col, err := s.c.Collection(ctx, routes.UsersSearch, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewUser, userID)
}

// BatchSearch resolves many users at once by username, email or phone
// number. Typically used to match a device address book against Present
// accounts.
func (s *UsersService) BatchSearch(ctx context.Context, query UserBatchSearchQuery) (*Page[*models.User], error) {
	params := routes.Params{}
	if len(query.Usernames) > 0 {
		params["usernames"] = query.Usernames
	}
	if len(query.Emails) > 0 {
		params["emails"] = query.Emails
	}
	if len(query.PhoneNumbers) > 0 {
		params["phone_numbers"] = query.PhoneNumbers
	}

	col, err := s.c.Collection(ctx, routes.UsersBatchSearch, params)
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewUser, userID)
}

// Create registers a new account. It does not log the new user in; follow
// with UserContexts.Create.
func (s *UsersService) Create(ctx context.Context, username, password, email string) (*models.User, error) {
	p := userCreateParams{Username: username, Password: password, Email: email}
	if err := validation.ValidateStruct(p); err != nil {
		recordValidationFailure(routes.UsersCreate)
		return nil, err
	}

	res, err := s.c.Resource(ctx, routes.UsersCreate, routes.Params{
		"username": username,
		"password": password,
		"email":    email,
	})
	if err != nil {
		return nil, err
	}
	return models.NewUser(res.Result)
}

// Update modifies the authenticated user's profile.
func (s *UsersService) Update(ctx context.Context, update UserUpdate) (*models.User, error) {
	params := routes.Params{}
	setIfPresent(params, "full_name", update.FullName)
	setIfPresent(params, "description", update.Description)
	setIfPresent(params, "website", update.Website)
	setIfPresent(params, "email", update.Email)
	setIfPresent(params, "phone_number", update.PhoneNumber)
	setIfPresent(params, "profile_picture_url", update.ProfilePictureURL)

	res, err := s.c.Resource(ctx, routes.UsersUpdate, params)
	if err != nil {
		return nil, err
	}
	return models.NewUser(res.Result)
}

// ListBrandNew lists recently registered users.
func (s *UsersService) ListBrandNew(ctx context.Context, page PageOptions) (*Page[*models.User], error) {
	col, err := s.c.Collection(ctx, routes.UsersListBrandNewUsers, page.params())
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewUser, userID)
}

// ListFeatured lists editorially featured users.
func (s *UsersService) ListFeatured(ctx context.Context, page PageOptions) (*Page[*models.User], error) {
	col, err := s.c.Collection(ctx, routes.UsersListFeaturedUsers, page.params())
	if err != nil {
		return nil, err
	}
	return collectPage(s.c, col, models.NewUser, userID)
}

// RequestPasswordReset asks the server to start a password reset for
// username.
func (s *UsersService) RequestPasswordReset(ctx context.Context, username string) error {
	if err := validation.ValidateStruct(userResetParams{Username: username}); err != nil {
		recordValidationFailure(routes.UsersRequestPasswordReset)
		return err
	}

	_, err := s.c.Resource(ctx, routes.UsersRequestPasswordReset, routes.Params{"username": username})
	return err
}

func userID(u *models.User) string { return u.ID }

func setIfPresent(params routes.Params, key, value string) {
	if value != "" {
		params[key] = value
	}
}
