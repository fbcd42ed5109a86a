package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ldss"

// Metrics exposes Prometheus counters for HTTP traffic and the auth lifecycle.
// All methods are safe on a nil receiver.
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorTotal      *prometheus.CounterVec
	loginTotal      *prometheus.CounterVec
	rejectionTotal  *prometheus.CounterVec
	denialTotal     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them when registry is non-nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		errorTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Error responses by route, method and error code",
		}, []string{"route", "method", "code"}),
		loginTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
		rejectionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_rejections_total",
			Help:      "Rejected request tokens by reason",
		}, []string{"reason"}),
		denialTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "authorization_denials_total",
			Help:      "Authorization gate denials by gate",
		}, []string{"gate"}),
	}

	if registry != nil {
		registry.MustRegister(
			m.requestTotal,
			m.requestDuration,
			m.errorTotal,
			m.loginTotal,
			m.rejectionTotal,
			m.denialTotal,
		)
	}
	return m
}

// RecordRequest counts a completed request.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError counts an error response.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.WithLabelValues(route, method, code).Inc()
}

// RecordLogin counts a login attempt outcome.
func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(outcome).Inc()
}

// RecordAuthRejection counts a rejected request token.
func (m *Metrics) RecordAuthRejection(reason string) {
	if m == nil {
		return
	}
	m.rejectionTotal.WithLabelValues(reason).Inc()
}

// RecordAuthorizationDenial counts a gate denial.
func (m *Metrics) RecordAuthorizationDenial(gate string) {
	if m == nil {
		return
	}
	m.denialTotal.WithLabelValues(gate).Inc()
}
