package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	availabilityQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonflow",
			Name:      "availability_queries_total",
			Help:      "Count of slot availability queries served.",
		},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonflow",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salonflow",
			Name:      "booking_conflicts_total",
			Help:      "Count of booking attempts rejected by the transactional overlap check.",
		},
	)

	regenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonflow",
			Name:      "schedule_regenerations_total",
			Help:      "Count of schedule regeneration requests by outcome.",
		},
		[]string{"outcome"},
	)

	notificationsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salonflow",
			Name:      "notifications_published_total",
			Help:      "Count of notification messages published to the queue.",
		},
		[]string{"type"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityQueries, bookingsCreated, bookingConflicts, regenerations, notificationsPublished)
	})
}

func IncAvailabilityQuery() {
	availabilityQueries.Inc()
}

func IncBookingCreated(status string) {
	bookingsCreated.WithLabelValues(status).Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncRegeneration(outcome string) {
	regenerations.WithLabelValues(outcome).Inc()
}

func IncNotificationPublished(notificationType string) {
	notificationsPublished.WithLabelValues(notificationType).Inc()
}
