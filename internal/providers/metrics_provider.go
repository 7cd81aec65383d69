package providers

import (
	"strconv"
	"time"

	"alumnirabatt/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveUpstreamDuration(provider string, duration time.Duration)
	IncUpstreamErrors(provider string)
	ObserveLogoRender(dark bool, duration time.Duration)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	logoRender       *prometheus.HistogramVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveUpstreamDuration(provider string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncUpstreamErrors(provider string) {
	m.upstreamErrors.WithLabelValues(provider).Inc()
}

func (m *MetricsProvider) ObserveLogoRender(dark bool, duration time.Duration) {
	m.logoRender.WithLabelValues(strconv.FormatBool(dark)).Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumni_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumni_cache_hits_total",
			Help: "Total number of cache hits",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumni_cache_misses_total",
			Help: "Total number of cache misses",
		}),
		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumni_upstream_duration_seconds",
			Help:    "Duration of upstream HTTP calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		upstreamErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_upstream_errors_total",
			Help: "Total number of failed upstream HTTP calls",
		}, []string{"provider"}),
		logoRender: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumni_logo_render_duration_seconds",
			Help:    "Time spent decoding, recoloring and encoding logos",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"dark"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                  {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) IncCacheHits()                                     {}
func (n *noopMetrics) IncCacheMisses()                                   {}
func (n *noopMetrics) ObserveUpstreamDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncUpstreamErrors(_ string)                        {}
func (n *noopMetrics) ObserveLogoRender(_ bool, _ time.Duration)         {}
