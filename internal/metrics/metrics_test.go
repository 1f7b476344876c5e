// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("videos", "list_home_videos", "success"))

	RecordRequest("videos", "list_home_videos", "success", 15*time.Millisecond)

	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("videos", "list_home_videos", "success"))
	if after != before+1 {
		t.Errorf("expected counter to increment by 1, got %v -> %v", before, after)
	}
}

func TestTrackInFlight(t *testing.T) {
	base := testutil.ToFloat64(RequestsInFlight)

	TrackInFlight(true)
	if got := testutil.ToFloat64(RequestsInFlight); got != base+1 {
		t.Errorf("expected gauge %v, got %v", base+1, got)
	}

	TrackInFlight(false)
	if got := testutil.ToFloat64(RequestsInFlight); got != base {
		t.Errorf("expected gauge %v, got %v", base, got)
	}
}

func TestRecordRelationCacheLookup(t *testing.T) {
	hitsBefore := testutil.ToFloat64(RelationCacheHits.WithLabelValues("like"))
	missesBefore := testutil.ToFloat64(RelationCacheMisses.WithLabelValues("like"))

	RecordRelationCacheLookup("like", true)
	RecordRelationCacheLookup("like", false)

	if got := testutil.ToFloat64(RelationCacheHits.WithLabelValues("like")); got != hitsBefore+1 {
		t.Errorf("expected hit counter %v, got %v", hitsBefore+1, got)
	}
	if got := testutil.ToFloat64(RelationCacheMisses.WithLabelValues("like")); got != missesBefore+1 {
		t.Errorf("expected miss counter %v, got %v", missesBefore+1, got)
	}
}
