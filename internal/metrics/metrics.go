// Package metrics provides Prometheus collectors for the activities API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "activities"

// Recorder owns every collector. A nil *Recorder is valid and records nothing.
type Recorder struct {
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	signups             *prometheus.CounterVec
	unregistrations     *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		signups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signups_total",
				Help:      "Successful signups per activity.",
			},
			[]string{"activity"},
		),
		unregistrations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unregistrations_total",
				Help:      "Successful unregistrations per activity.",
			},
			[]string{"activity"},
		),
	}
}

// ObserveHTTP records one finished request.
func (r *Recorder) ObserveHTTP(route, method, status string, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, method, status).Inc()
	r.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// Signup counts a successful signup.
func (r *Recorder) Signup(activity string) {
	if r == nil {
		return
	}
	r.signups.WithLabelValues(activity).Inc()
}

// Unregister counts a successful unregistration.
func (r *Recorder) Unregister(activity string) {
	if r == nil {
		return
	}
	r.unregistrations.WithLabelValues(activity).Inc()
}
