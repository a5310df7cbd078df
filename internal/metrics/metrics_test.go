package metrics

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	initialSuccess := testutil.ToFloat64(CommentSubmissionsTotal.WithLabelValues("success"))
	initialInvalid := testutil.ToFloat64(CommentSubmissionsTotal.WithLabelValues("invalid_email"))

	ObserveSubmission("success")
	ObserveSubmission("invalid_email")

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(CommentSubmissionsTotal.WithLabelValues("success")))
	assert.Equal(t, initialInvalid+1, testutil.ToFloat64(CommentSubmissionsTotal.WithLabelValues("invalid_email")))

	count := testutil.CollectAndCount(CommentSubmitDuration)
	assert.Equal(t, 1, count, "CommentSubmitDuration should be a single histogram")
}

func TestObserveServed(t *testing.T) {
	initial := testutil.ToFloat64(CommentsServed)

	ObserveServed(0)
	assert.Equal(t, initial, testutil.ToFloat64(CommentsServed), "zero comments should not change the counter")

	ObserveServed(50)
	assert.Equal(t, initial+50, testutil.ToFloat64(CommentsServed))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	// Sleep a bit to have measurable duration
	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
	assert.GreaterOrEqual(t, timer.Seconds(), 0.02)
}

// mockStoreSizer implements StoreSizer for testing
type mockStoreSizer struct {
	size  int
	calls atomic.Int32
}

func (m *mockStoreSizer) Count(_ context.Context) int {
	m.calls.Add(1)
	return m.size
}

func TestStoreStatsCollectorStartStop(t *testing.T) {
	store := &mockStoreSizer{size: 42}

	collector := NewStoreStatsCollector(store)
	collector.Start(10 * time.Millisecond)

	// Let it run for a bit to collect stats
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(42), testutil.ToFloat64(CommentsStored))
	assert.GreaterOrEqual(t, store.calls.Load(), int32(2), "Should collect multiple times")

	// Stopping twice must not panic
	collector.Stop()
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestObserveHTTPRequest(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/comments", "400"))

	ObserveHTTPRequest("POST", "/api/comments", 400, 0.002)

	assert.Equal(t, initial+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/comments", "400")))
}

func TestHTTPRequestDurationHistogramBuckets(t *testing.T) {
	durations := []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0}

	for _, d := range durations {
		HTTPRequestDuration.WithLabelValues("GET", "/test").Observe(d)
	}

	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1, "HTTPRequestDuration should have observations")
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight), "In-flight should be initial+2")

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight), "In-flight should return to initial")
}
