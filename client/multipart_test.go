// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestVideoCreateUpload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/create" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("title"); got != "first light" {
			t.Errorf("title field = %q", got)
		}

		file, header, err := r.FormFile(DefaultMediaField)
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "segment-0.ts" {
			t.Errorf("filename = %q", header.Filename)
		}
		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("read file part: %v", err)
		}
		if string(data) != "fake mpegts payload" {
			t.Errorf("file content = %q", data)
		}

		fmt.Fprintf(w, `{"status":"OK","result":%s}`, videoJSON(testVideoID))
	})
	c, _ := newTestClient(t, handler)

	video, err := c.Videos.Create(context.Background(), "first light", &Upload{
		Filename: "segment-0.ts",
		Content:  strings.NewReader("fake mpegts payload"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if video.ID != testVideoID {
		t.Errorf("video id = %q", video.ID)
	}
}

func TestVideoAppendUpload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("video_id"); got != testVideoID {
			t.Errorf("video_id field = %q", got)
		}
		if got := r.FormValue("media_sequence"); got != "3" {
			t.Errorf("media_sequence field = %q", got)
		}
		fmt.Fprintf(w, `{"status":"OK","result":%s}`, videoJSON(testVideoID))
	})
	c, _ := newTestClient(t, handler)

	if _, err := c.Videos.Append(context.Background(), testVideoID, 3, &Upload{
		Filename: "segment-3.ts",
		Content:  strings.NewReader("segment three"),
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestUploadEncodeDefaultsField(t *testing.T) {
	u := &Upload{Filename: "a.ts", Content: strings.NewReader("x")}
	body, contentType, err := u.encode(map[string]interface{}{"k": "v"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Errorf("content type = %q", contentType)
	}
	s := body.String()
	if !strings.Contains(s, `name="media_segment"; filename="a.ts"`) {
		t.Errorf("body missing default media field part:\n%s", s)
	}
	if !strings.Contains(s, `name="k"`) {
		t.Errorf("body missing sibling form field:\n%s", s)
	}
}
