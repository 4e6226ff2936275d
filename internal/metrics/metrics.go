package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "royale_tracker"

type Metrics struct {
	registry     *prometheus.Registry
	apiRequests  *prometheus.CounterVec
	apiDurations *prometheus.HistogramVec
	reports      *prometheus.CounterVec
	partial      *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Requests sent to the game API by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		apiDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Latency of game API requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clan",
			Name:      "reports_total",
			Help:      "Clan reports built, by payload source (cache or live).",
		}, []string{"source"}),
		partial: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "clan",
			Name:      "missing_payloads_total",
			Help:      "Optional clan payloads that could not be fetched and were treated as empty.",
		}, []string{"kind"}),
	}
	registry.MustRegister(m.apiRequests, m.apiDurations, m.reports, m.partial)
	return m
}

// ObserveAPIRequest records one game API call. status 0 means the request never
// got a response.
func (m *Metrics) ObserveAPIRequest(endpoint string, status int, took time.Duration) {
	m.apiRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.apiDurations.WithLabelValues(endpoint).Observe(took.Seconds())
}

func (m *Metrics) ReportBuilt(source string) {
	m.reports.WithLabelValues(source).Inc()
}

func (m *Metrics) PayloadMissing(kind string) {
	m.partial.WithLabelValues(kind).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
