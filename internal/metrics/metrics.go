// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Notification results.
const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationDropped = "dropped"
)

// Metrics groups the application collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	ContactSubmissions *prometheus.CounterVec
	Notifications      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ContactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Name:      "contact_notifications_total",
			Help:      "Contact notification emails by result.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "site",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "site",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	reg.MustRegister(m.ContactSubmissions, m.Notifications, m.HTTPRequests, m.HTTPDuration)
	return m
}

// ObserveContact counts a contact submission outcome ("accepted" or a
// rejection reason).
func (m *Metrics) ObserveContact(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveNotification counts a notification result.
func (m *Metrics) ObserveNotification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Handler returns the exposition handler for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
