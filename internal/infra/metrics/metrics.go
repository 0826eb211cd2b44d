package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hub_booking"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	bookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings persisted, by origin (single or recurrence)",
		},
		[]string{"origin"},
	)

	conflictsDetectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Conflicting intervals detected, by check (advisory or write)",
		},
		[]string{"check"},
	)

	advisoryDegradedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conflict_check_degraded_total",
			Help:      "Advisory conflict checks answered with no known conflicts because the lookup failed",
		},
	)

	recurrenceOccurrencesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recurrence_occurrences_total",
			Help:      "Recurrence occurrences by outcome (created, conflict, create-failed)",
		},
		[]string{"outcome"},
	)

	waitlistPromotionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waitlist_promotions_total",
			Help:      "Members moved from a waitlist into attendance",
		},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_delivered_total",
			Help:      "Notification deliveries by kind, sink and result",
		},
		[]string{"kind", "sink", "result"},
	)

	workerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_job_runs_total",
			Help:      "Maintenance job runs by job and result",
		},
		[]string{"job", "result"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_cache_lookups_total",
			Help:      "Active-booking snapshot cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordBookingCreated(origin string) {
	bookingsCreatedTotal.WithLabelValues(origin).Inc()
}

func RecordConflict(check string) {
	conflictsDetectedTotal.WithLabelValues(check).Inc()
}

func RecordAdvisoryDegraded() {
	advisoryDegradedTotal.Inc()
}

func RecordOccurrence(outcome string) {
	recurrenceOccurrencesTotal.WithLabelValues(outcome).Inc()
}

func RecordPromotions(n int) {
	waitlistPromotionsTotal.Add(float64(n))
}

// RecordNotification matches the notify.Bus observer signature once adapted by the caller.
func RecordNotification(kind, sink string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	notificationsTotal.WithLabelValues(kind, sink, result).Inc()
}

func RecordWorkerRun(job string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	workerRunsTotal.WithLabelValues(job, result).Inc()
}

func RecordCacheLookup(result string) {
	cacheLookupsTotal.WithLabelValues(result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
