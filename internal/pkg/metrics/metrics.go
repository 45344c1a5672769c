package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guild"

// Metrics holds the service's Prometheus collectors on a private registry.
// All recording methods are safe on a nil receiver.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	otpRequests     *prometheus.CounterVec
	otpVerification *prometheus.CounterVec
	scoreSubmits    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		otpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_requests_total",
			Help:      "OTP requests by outcome.",
		}, []string{"result"}),
		otpVerification: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verifications_total",
			Help:      "OTP verifications by outcome.",
		}, []string{"result"}),
		scoreSubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_submissions_total",
			Help:      "Accepted score submissions by mode.",
		}, []string{"mode"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.otpRequests,
		m.otpVerification,
		m.scoreSubmits,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveOTPRequest counts an OTP request outcome
func (m *Metrics) ObserveOTPRequest(result string) {
	if m == nil {
		return
	}
	m.otpRequests.WithLabelValues(result).Inc()
}

// ObserveOTPVerification counts an OTP verification outcome
func (m *Metrics) ObserveOTPVerification(result string) {
	if m == nil {
		return
	}
	m.otpVerification.WithLabelValues(result).Inc()
}

// ObserveScoreSubmission counts a stored score by mode
func (m *Metrics) ObserveScoreSubmission(mode string) {
	if m == nil {
		return
	}
	m.scoreSubmits.WithLabelValues(mode).Inc()
}

// Middleware records request count and latency per matched route
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			m.httpRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
