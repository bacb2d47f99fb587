package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	storeWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caterbook",
			Name:      "store_writes_total",
			Help:      "Durable collection writes by collection name.",
		},
		[]string{"collection"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "caterbook",
			Name:      "bookings_created_total",
			Help:      "Bookings created by customers.",
		},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "caterbook",
			Name:      "booking_transitions_total",
			Help:      "Booking lifecycle transitions by target status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(storeWrites, bookingsCreated, transitions)
	})
}

// IncStoreWrite increments the write counter for a collection label.
func IncStoreWrite(collection string) {
	storeWrites.WithLabelValues(collection).Inc()
}

// IncBookingCreated increments the created bookings counter.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncTransition increments the transition counter for a target status.
func IncTransition(status string) {
	transitions.WithLabelValues(status).Inc()
}
