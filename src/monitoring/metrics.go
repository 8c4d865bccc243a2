package monitoring

import (
	"eventspot/src/models"
	"log"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	bookingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_operations_total",
			Help: "Total booking attempts by outcome",
		},
		[]string{"status"},
	)

	seatsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seats_booked_total",
			Help: "Total seats booked across all events",
		},
	)

	authOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Total auth operations by kind and outcome",
		},
		[]string{"operation", "status"},
	)

	availableSeats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "event_available_seats",
			Help: "Current available seats per event",
		},
		[]string{"event_id"},
	)
)

func RecordBooking(status string, seats int) {
	bookingOperations.WithLabelValues(status).Inc()
	if status == "confirmed" {
		seatsBooked.Add(float64(seats))
	}
}

func RecordAuth(operation string, status string) {
	authOperations.WithLabelValues(operation, status).Inc()
}

type Monitor struct {
	db *gorm.DB
}

func NewMonitor(db *gorm.DB) *Monitor {
	monitor := &Monitor{db: db}
	go monitor.collectMetrics()
	return monitor
}

func (m *Monitor) collectMetrics() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.collectInventoryMetrics()
	}
}

func (m *Monitor) collectInventoryMetrics() {
	var events []models.Event
	if err := m.db.
		Model(&models.Event{}).
		Select("id", "available_seats").
		Find(&events).
		Error; err != nil {
		log.Printf("Error collecting inventory metrics: %s\n", err.Error())
		return
	}
	for _, event := range events {
		availableSeats.WithLabelValues(strconv.FormatUint(uint64(event.ID), 10)).Set(float64(event.AvailableSeats))
	}
}
