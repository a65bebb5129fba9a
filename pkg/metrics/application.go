package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for application attempts.
const (
	OutcomeAccepted           = "accepted"
	OutcomeVacancyUnavailable = "vacancy_unavailable"
	OutcomeDuplicate          = "duplicate"
	OutcomeCandidateCap       = "candidate_cap"
	OutcomeVacancyFull        = "vacancy_full"
	OutcomeError              = "error"
)

// ApplicationMetrics counts eligibility engine outcomes.
type ApplicationMetrics struct {
	attempts *prometheus.CounterVec
}

// NewApplicationMetrics registers the application counters on reg. A nil
// registerer yields a no-op recorder.
func NewApplicationMetrics(reg prometheus.Registerer) *ApplicationMetrics {
	if reg == nil {
		return &ApplicationMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_attempts_total",
		Help:      "Application attempts by eligibility outcome.",
	}, []string{"outcome"})
	reg.MustRegister(attempts)
	return &ApplicationMetrics{attempts: attempts}
}

// Observe increments the counter for outcome.
func (m *ApplicationMetrics) Observe(outcome string) {
	if m == nil || m.attempts == nil {
		return
	}
	m.attempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
