// Package metrics holds the pipeline counters shared by the HTTP
// handlers and the outbox worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Welcome email triggers.
const (
	TriggerManual = "manual"
	TriggerOutbox = "outbox"
)

var (
	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads captured",
		},
	)

	leadStatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_status_transitions_total",
			Help: "Total number of lead status transitions",
		},
		[]string{"to"},
	)

	welcomeEmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "welcome_emails_sent_total",
			Help: "Total number of welcome emails sent",
		},
		[]string{"trigger"},
	)
)

func RecordLeadCreated() {
	leadsCreated.Inc()
}

// RecordLeadTransition counts an actual status move. Callers must not
// record a PATCH that repeats the current status.
func RecordLeadTransition(to string) {
	leadStatusTransitions.WithLabelValues(to).Inc()
}

func RecordWelcomeEmail(trigger string) {
	welcomeEmailsSent.WithLabelValues(trigger).Inc()
}
