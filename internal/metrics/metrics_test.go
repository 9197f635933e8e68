// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery_ErrorLabelTruncated(t *testing.T) {
	long := strings.Repeat("x", 120)
	RecordDBQuery("SELECT", "properties_test", time.Millisecond, errors.New(long))

	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "properties_test", long[:maxErrorLabelLen]))
	if got != 1 {
		t.Errorf("expected truncated error label to be counted once, got %v", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test", "200"))
	RecordAPIRequest("GET", "/api/test", "200", 20*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test", "200"))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("expected +2, got %v", got)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected gauge back at %v, got %v", before, got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("scored"))
	RecordRecommendation("scored", 5, time.Millisecond)
	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("scored")) - before; got != 1 {
		t.Errorf("expected +1 scored recommendation, got %v", got)
	}
}

func TestCatalogGauges(t *testing.T) {
	SetCatalogSize(42)
	if got := testutil.ToFloat64(CatalogSize); got != 42 {
		t.Errorf("CatalogSize = %v, want 42", got)
	}
	SetCatalogBreakerState(2)
	if got := testutil.ToFloat64(CatalogBreakerState); got != 2 {
		t.Errorf("CatalogBreakerState = %v, want 2", got)
	}
	SetCatalogBreakerState(0)
}
