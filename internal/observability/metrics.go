// Package observability defines the prometheus collectors for the
// activities service.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registration",
		Name:      "signups_total",
		Help:      "Number of successful activity signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registration",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "registration",
		Name:      "rejections_total",
		Help:      "Number of rejected registration requests grouped by reason.",
	}, []string{"reason"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities",
		Subsystem: "catalog",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, participantsGauge)
}

// RecordSignup bumps the signup counter and moves the participant gauge.
func RecordSignup(activity string, participants int) {
	signupCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordUnregister bumps the unregistration counter and moves the participant gauge.
func RecordUnregister(activity string, participants int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordRejection counts a failed signup or unregister attempt.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// SetParticipants initialises the participant gauge, typically from seed data.
func SetParticipants(activity string, participants int) {
	participantsGauge.WithLabelValues(activity).Set(float64(participants))
}
