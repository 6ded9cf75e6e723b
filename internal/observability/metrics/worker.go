package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	assessTotal     *prometheus.CounterVec
	assessDuration  *prometheus.HistogramVec
	assessInFlight  prometheus.Gauge
	answerQuality   *prometheus.HistogramVec
	fatigueRisk     *prometheus.HistogramVec
	stopHintsTotal  *prometheus.CounterVec
	contradictions  *prometheus.CounterVec
	publishFailures *prometheus.CounterVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	assessTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "answers_assessed_total",
			Help:      "Total assessed answers by status.",
		},
		[]string{"service", "status"},
	)
	assessDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "assess_duration_seconds",
			Help:      "Answer assessment duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	assessInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "assess_in_flight",
			Help:      "Number of in-flight answer assessments.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	answerQuality := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "answer_quality",
			Help:      "Distribution of answer quality scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		},
		[]string{"service"},
	)
	fatigueRisk := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "fatigue_risk",
			Help:      "Distribution of fatigue risk scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		},
		[]string{"service"},
	)
	stopHintsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "stop_hints_total",
			Help:      "Total assessments that suggested stopping the session.",
		},
		[]string{"service"},
	)
	contradictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "contradiction_flags_total",
			Help:      "Total extracted values flagged as likely contradictions.",
		},
		[]string{"service"},
	)
	publishFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "survey",
			Subsystem: "scorer",
			Name:      "publish_failures_total",
			Help:      "Total failed assessment publishes.",
		},
		[]string{"service"},
	)

	registry.MustRegister(assessTotal, assessDuration, assessInFlight, answerQuality, fatigueRisk, stopHintsTotal, contradictions, publishFailures)

	return &WorkerMetrics{
		registry:        registry,
		assessTotal:     assessTotal,
		assessDuration:  assessDuration,
		assessInFlight:  assessInFlight,
		answerQuality:   answerQuality,
		fatigueRisk:     fatigueRisk,
		stopHintsTotal:  stopHintsTotal,
		contradictions:  contradictions,
		publishFailures: publishFailures,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartAssessment() {
	m.assessInFlight.Inc()
}

func (m *WorkerMetrics) FinishAssessment(service string, duration time.Duration, err error) {
	m.assessInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.assessTotal.WithLabelValues(service, status).Inc()
	m.assessDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveScores(service string, quality, fatigue float64, stopHint bool) {
	m.answerQuality.WithLabelValues(service).Observe(quality)
	m.fatigueRisk.WithLabelValues(service).Observe(fatigue)
	if stopHint {
		m.stopHintsTotal.WithLabelValues(service).Inc()
	}
}

func (m *WorkerMetrics) IncContradiction(service string) {
	m.contradictions.WithLabelValues(service).Inc()
}

func (m *WorkerMetrics) IncPublishFailure(service string) {
	m.publishFailures.WithLabelValues(service).Inc()
}
