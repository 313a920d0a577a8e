package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutorbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorbook_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"policy"},
	)

	BookingStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorbook_booking_status_updates_total",
			Help: "Total number of booking status updates, including no-op updates",
		},
		[]string{"status"},
	)

	SlotAvailabilityUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorbook_slot_availability_updates_total",
			Help: "Total number of slot availability updates",
		},
		[]string{"available"},
	)

	BookingConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tutorbook_booking_conflicts_total",
			Help: "Total number of requests rejected because a slot was taken or closed",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated(policy string) {
	BookingsCreatedTotal.WithLabelValues(policy).Inc()
}

// RecordStatusUpdate counts a status change. Statuses are free-form, so
// anything outside the known set is folded into "other".
func RecordStatusUpdate(status string) {
	BookingStatusUpdatesTotal.WithLabelValues(statusLabel(status)).Inc()
}

func statusLabel(status string) string {
	switch status {
	case "pending", "confirmed", "cancelled":
		return status
	default:
		return "other"
	}
}

func RecordSlotUpdate(available bool) {
	SlotAvailabilityUpdatesTotal.WithLabelValues(strconv.FormatBool(available)).Inc()
}

func RecordConflict() {
	BookingConflictsTotal.Inc()
}
