package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados usados como label.
const (
	GeocodeResolved = "resolved"
	GeocodeFallback = "fallback"
	GeocodeCacheHit = "cache_hit"

	FetchOK         = "ok"
	FetchFailed     = "fetch_failed"
	FetchUnexpected = "unexpected"
)

// Metrics agrupa los collectors del servicio. Un valor nil es válido (no-op),
// así services y tests no necesitan registry.
type Metrics struct {
	registry *prometheus.Registry

	geocodeTotal  *prometheus.CounterVec
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	petsPublished prometheus.Gauge
	retryAttempts *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		geocodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadoption",
			Name:      "geocode_requests_total",
			Help:      "Address resolutions by outcome.",
		}, []string{"outcome"}),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadoption",
			Name:      "feed_fetch_total",
			Help:      "Feed fetch-and-assemble cycles by result.",
		}, []string{"result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "petadoption",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of a fetch-and-assemble cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		petsPublished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "petadoption",
			Name:      "feed_pets_published",
			Help:      "Number of pet entities in the last published list.",
		}),
		retryAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petadoption",
			Name:      "retry_attempts_total",
			Help:      "Attempts made by the retry helper, by operation and result.",
		}, []string{"operation", "result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.geocodeTotal,
		m.fetchTotal,
		m.fetchDuration,
		m.petsPublished,
		m.retryAttempts,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Geocode(outcome string) {
	if m == nil {
		return
	}
	m.geocodeTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Fetch(result string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(result).Inc()
	m.fetchDuration.Observe(seconds)
}

func (m *Metrics) Published(n int) {
	if m == nil {
		return
	}
	m.petsPublished.Set(float64(n))
}

func (m *Metrics) RetryAttempt(operation, result string) {
	if m == nil {
		return
	}
	m.retryAttempts.WithLabelValues(operation, result).Inc()
}
