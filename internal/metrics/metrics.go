package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors the service exports.
type Metrics struct {
	ReqTotal  *prometheus.CounterVec
	ReqDur    *prometheus.HistogramVec
	Quotes    *prometheus.CounterVec
	Checkouts *prometheus.CounterVec
}

// New registers the collectors with reg, or the default registerer when reg is nil.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ReqTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled by the server.",
		}, []string{"method", "route", "status"}),
		ReqDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Quotes computed, by display currency and insurance.",
		}, []string{"currency", "insured"}),
		Checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Checkout attempts by charge currency and payment status.",
		}, []string{"currency", "status"}),
	}
	m.ReqTotal = mustRegister(reg, m.ReqTotal)
	m.ReqDur = mustRegister(reg, m.ReqDur)
	m.Quotes = mustRegister(reg, m.Quotes)
	m.Checkouts = mustRegister(reg, m.Checkouts)
	return m
}

// ObserveQuote is safe on a nil *Metrics so callers can run without metrics.
func (m *Metrics) ObserveQuote(currency string, insured bool) {
	if m == nil {
		return
	}
	label := "false"
	if insured {
		label = "true"
	}
	m.Quotes.WithLabelValues(currency, label).Inc()
}

func (m *Metrics) ObserveCheckout(currency, status string) {
	if m == nil {
		return
	}
	m.Checkouts.WithLabelValues(currency, status).Inc()
}

// mustRegister reuses an existing collector when one with the same
// descriptor is already registered.
func mustRegister[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
