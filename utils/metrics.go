package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the assistant.
type Metrics struct {
	SessionsCreated   prometheus.Counter
	MessagesSubmitted prometheus.Counter
	MessagesRejected  *prometheus.CounterVec
	SectionSwitches   *prometheus.CounterVec
}

// NewMetrics registers and returns the assistant metrics.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SessionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "The total number of chat sessions created",
		}),
		MessagesSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_submitted_total",
			Help:      "The total number of accepted user messages",
		}),
		MessagesRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_rejected_total",
			Help:      "The total number of rejected user messages",
		}, []string{"reason"}),
		SectionSwitches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_switches_total",
			Help:      "The total number of quick-action section switches",
		}, []string{"section"}),
	}
}
