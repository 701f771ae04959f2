package usecase

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"maya-nlp/internal/model"
	"maya-nlp/internal/nlp"
)

// Outcome label values.
const (
	OutcomeSuccess            = "success"
	OutcomeEmpty              = "empty"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeBackendUnavailable = "backend_unavailable"
	OutcomeExtractionFailed   = "extraction_failed"
)

// Metrics records analyzer activity. A nil *Metrics records nothing.
type Metrics struct {
	analyzeTotal *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	entities     *prometheus.CounterVec
}

// NewMetrics registers the analyzer collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		analyzeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nlp_analyze_total",
			Help: "Analyze calls by backend and outcome.",
		}, []string{"backend", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nlp_analyze_duration_seconds",
			Help:    "Analyze latency by backend.",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend"}),
		entities: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nlp_entities_extracted_total",
			Help: "Entities returned by type.",
		}, []string{"type"}),
	}
}

func (m *Metrics) observe(backend string, elapsed time.Duration, entities []model.EntityInfo, err error) {
	if m == nil {
		return
	}

	outcome := outcomeOf(entities, err)
	m.analyzeTotal.WithLabelValues(backend, outcome).Inc()
	if outcome == OutcomeInvalidInput {
		return
	}
	m.duration.WithLabelValues(backend).Observe(elapsed.Seconds())
	for _, e := range entities {
		m.entities.WithLabelValues(string(e.Type)).Inc()
	}
}

func outcomeOf(entities []model.EntityInfo, err error) string {
	switch {
	case err == nil && len(entities) == 0:
		return OutcomeEmpty
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, nlp.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, nlp.ErrBackendUnavailable):
		return OutcomeBackendUnavailable
	default:
		return OutcomeExtractionFailed
	}
}
