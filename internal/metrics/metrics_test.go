package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordersAreNoOpsBeforeRegister(t *testing.T) {
	if listingRequests != nil {
		t.Skip("collectors already registered")
	}

	assert.NotPanics(t, func() {
		ObserveListing("faqs", "ok", time.Millisecond)
		RecordMutation("faqs", "create", "ok")
		RecordCacheLookup("faqs", "hit")
	})
}

func TestMetrics(t *testing.T) {
	MustRegister()
	MustRegister()

	before := testutil.ToFloat64(mutationRequests.WithLabelValues("banners", "create", "ok"))
	RecordMutation("banners", "create", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(mutationRequests.WithLabelValues("banners", "create", "ok")))

	before = testutil.ToFloat64(cacheLookups.WithLabelValues("unknown", "miss"))
	RecordCacheLookup(" ", "miss")
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookups.WithLabelValues("unknown", "miss")))

	ObserveListing("terms", "ok", 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "content_admin_listing_requests_total"))
	assert.True(t, strings.Contains(body, "content_admin_listing_duration_seconds_bucket"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
