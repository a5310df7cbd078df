// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, comment submissions, and the comment store.
package metrics

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "comments_api"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Comment metrics - track submissions and reads
	CommentSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "submissions_total",
			Help:      "Total number of comment submissions by result",
		},
		[]string{"result"},
	)

	CommentSubmitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "submit_duration_seconds",
			Help:      "Time spent decoding, validating and storing a submission",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	CommentsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "served_total",
			Help:      "Total number of comments returned by read requests",
		},
	)

	// Store metrics - sampled periodically from the comment store
	CommentsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "comments",
			Help:      "Number of comments currently held in memory",
		},
	)
)

// ObserveHTTPRequest records a completed HTTP request.
func ObserveHTTPRequest(method, route string, status int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// ObserveSubmission records the outcome of a comment submission.
// result is "success" or an error kind such as "invalid_email".
func ObserveSubmission(result string) {
	CommentSubmissionsTotal.WithLabelValues(result).Inc()
}

// ObserveServed records how many comments a read request returned.
func ObserveServed(count int) {
	if count > 0 {
		CommentsServed.Add(float64(count))
	}
}

// StoreSizer reports the number of stored comments.
// This allows the collector to be tested without a real store.
type StoreSizer interface {
	Count(ctx context.Context) int
}

// StoreStatsCollector samples the comment store size periodically
type StoreStatsCollector struct {
	store    StoreSizer
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewStoreStatsCollector creates a new store stats collector
func NewStoreStatsCollector(store StoreSizer) *StoreStatsCollector {
	return &StoreStatsCollector{
		store:    store,
		stopChan: make(chan struct{}),
	}
}

// Start begins sampling the store size every interval
func (c *StoreStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *StoreStatsCollector) collect() {
	CommentsStored.Set(float64(c.store.Count(context.Background())))
}

// Stop stops the collector and waits for the sampling goroutine to exit
func (c *StoreStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}
