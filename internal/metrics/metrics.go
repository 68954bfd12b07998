package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callananny_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "callananny_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callananny_booking_transitions_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"from", "to"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "callananny_booking_conflicts_total",
			Help: "Total number of rejected writes due to scheduling conflicts",
		},
	)

	EffectsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callananny_effects_dispatched_total",
			Help: "Total number of side effects dispatched after transitions",
		},
		[]string{"template", "outcome"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callananny_notifications_total",
			Help: "Total number of notifications delivered per channel",
		},
		[]string{"channel", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "callananny_notification_queue_length",
			Help: "Current length of the outbound notification queue",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callananny_payments_recorded_total",
			Help: "Total number of client payments recorded",
		},
		[]string{"currency"},
	)

	PayoutsRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "callananny_payouts_recorded_total",
			Help: "Total number of nanny payouts recorded",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordTransition(from, to string) {
	BookingTransitionsTotal.WithLabelValues(from, to).Inc()
}

func RecordConflict() {
	BookingConflictsTotal.Inc()
}

func RecordEffect(template, outcome string) {
	EffectsDispatchedTotal.WithLabelValues(template, outcome).Inc()
}

func RecordNotification(channel, status string) {
	NotificationsTotal.WithLabelValues(channel, status).Inc()
}

func RecordPayment(currency string) {
	PaymentsRecordedTotal.WithLabelValues(currency).Inc()
}

func RecordPayout() {
	PayoutsRecordedTotal.Inc()
}
