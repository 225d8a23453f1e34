package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", 200, time.Millisecond)
	m.APIInflightInc()
	m.APIInflightDec()
	m.ObserveAggregateOperation("op", "success", time.Millisecond)
	m.IncAggregateConflict("op")
	m.IncAggregateRetry("op")
	m.IncSubmission("population", "success")
	m.IncSlotWrite("population", "created")
	m.IncCacheLookup("hit")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil metrics handler: want=503 got=%d", rec.Code)
	}
}

func TestMetricsCountersAndExposition(t *testing.T) {
	m := NewMetrics()
	m.IncAggregateConflict("VillageInfo.Upsert")
	m.IncAggregateConflict("VillageInfo.Upsert")
	m.IncSubmission("population", "success")
	m.ObserveAPI("POST", "/api/village-info", 200, 20*time.Millisecond)

	if got := testutil.ToFloat64(m.aggregateConflicts.WithLabelValues("VillageInfo.Upsert")); got != 2 {
		t.Fatalf("conflicts: want=2 got=%v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("population", "success")); got != 1 {
		t.Fatalf("submissions: want=1 got=%v", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics handler status: want=200 got=%d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{
		"panchayat_api_requests_total",
		"panchayat_aggregate_conflicts_total",
		"panchayat_village_info_submissions_total",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("exposition missing %s", name)
		}
	}
}
