// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Present-Inc/PresentAPIClient-sub000/routes"
)

// DefaultMediaField is the form field name the API expects media segments
// under.
const DefaultMediaField = "media_segment"

// Upload is a single file payload for a multipart request.
type Upload struct {
	// Field is the form field name; empty means DefaultMediaField.
	Field string

	// Filename is the part's filename as reported to the server.
	Filename string

	// Content is the file data. Read exactly once, when the request starts.
	Content io.Reader
}

// encode renders the upload and its sibling parameters as a multipart form
// body. Scalar parameters become ordinary form fields; the file part is
// written last.
func (u *Upload) encode(params routes.Params) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, val := range params {
		switch v := val.(type) {
		case []string:
			for _, item := range v {
				if err := w.WriteField(key, item); err != nil {
					return nil, "", fmt.Errorf("write form field %q: %w", key, err)
				}
			}
		default:
			if err := w.WriteField(key, fmt.Sprint(v)); err != nil {
				return nil, "", fmt.Errorf("write form field %q: %w", key, err)
			}
		}
	}

	field := u.Field
	if field == "" {
		field = DefaultMediaField
	}
	part, err := w.CreateFormFile(field, u.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, u.Content); err != nil {
		return nil, "", fmt.Errorf("copy upload content: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
