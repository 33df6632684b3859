// Scholarmach - Scholarship Discovery and AI-Assisted Matching
// Copyright 2026 Scholarmach contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scholarmach/scholarmach

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations", 200, 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestRecordMatchByOutcome(t *testing.T) {
	before := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("full-ranking"))

	RecordMatch("full-ranking", 12, 3*time.Millisecond)
	RecordMatch("full-ranking", 7, 2*time.Millisecond)

	after := testutil.ToFloat64(MatchRequestsTotal.WithLabelValues("full-ranking"))
	if after != before+2 {
		t.Errorf("counter = %v, want %v", after, before+2)
	}
}

func TestRecordDBQueryErrors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "scholarships"))

	RecordDBQuery("select", "scholarships", time.Millisecond, errors.New("boom"))
	RecordDBQuery("select", "scholarships", time.Millisecond, nil)

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "scholarships"))
	if after != before+1 {
		t.Errorf("error counter = %v, want %v (nil error must not count)", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge = %v, want %v", got, base+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge = %v, want %v", got, base)
	}
}
