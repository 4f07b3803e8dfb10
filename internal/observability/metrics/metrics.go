package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the appointment flows.
type BookingMetrics struct {
	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal *prometheus.CounterVec
	pipelineDuration   *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medibook",
			Subsystem: "booking",
			Name:      "bookings_total",
			Help:      "Total appointment bookings",
		}, []string{"status", "consultation_type"}),
		cancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medibook",
			Subsystem: "booking",
			Name:      "cancellations_total",
			Help:      "Total appointment cancellations",
		}, []string{"found"}),
		pipelineDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medibook",
			Subsystem: "booking",
			Name:      "pipeline_duration_seconds",
			Help:      "Duration of the staged booking pipeline",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.cancellationsTotal, m.pipelineDuration)
	return m
}

func (m *BookingMetrics) ObserveBooking(status, consultationType string) {
	if m == nil {
		return
	}
	if consultationType == "" {
		consultationType = "none"
	}
	m.bookingsTotal.WithLabelValues(status, consultationType).Inc()
}

func (m *BookingMetrics) ObserveCancellation(found bool) {
	if m == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	m.cancellationsTotal.WithLabelValues(label).Inc()
}

func (m *BookingMetrics) ObservePipelineDuration(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.pipelineDuration.WithLabelValues(outcome).Observe(seconds)
}
