package metrics

import (
	"net/http"
	"strconv"
	"time"

	"studyroom/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studyroom"

// Booking outcomes recorded by BookingSubmitted.
const (
	OutcomeAccepted = "accepted"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
)

// Notification results recorded by NotificationDelivered.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

type Recorder interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	BookingSubmitted(outcome string)
	BookingCancelled(byStaff bool)
	NotificationDelivered(result string)
	Handler() http.Handler
}

type recorderImpl struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	bookings      *prometheus.CounterVec
	cancellations *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

func New(_ *config.Config) Recorder {
	registry := prometheus.NewRegistry()

	r := &recorderImpl{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_submissions_total",
			Help:      "Booking submissions by outcome.",
		}, []string{"outcome"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_cancellations_total",
			Help:      "Booking cancellations by actor.",
		}, []string{"actor"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Confirmation emails by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.bookings,
		r.cancellations,
		r.notifications,
	)

	return r
}

func (r *recorderImpl) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *recorderImpl) BookingSubmitted(outcome string) {
	r.bookings.WithLabelValues(outcome).Inc()
}

func (r *recorderImpl) BookingCancelled(byStaff bool) {
	actor := "owner"
	if byStaff {
		actor = "staff"
	}

	r.cancellations.WithLabelValues(actor).Inc()
}

func (r *recorderImpl) NotificationDelivered(result string) {
	r.notifications.WithLabelValues(result).Inc()
}

func (r *recorderImpl) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
