package metrics

import (
	"strconv"
	"time"

	"sandwich-storefront/internal/usecase/cart"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics records HTTP traffic and cart engine outcomes.
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	promoOutcomes *prometheus.CounterVec
	ordersTotal   prometheus.Counter
	orderAmount   prometheus.Histogram
	sessions      prometheus.Gauge
}

// New registers the collectors on reg; a nil reg yields a no-op recorder.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		promoOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promo_code_resolutions_total",
			Help: "Promo code resolutions by outcome.",
		}, []string{"outcome"}),
		ordersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Orders handed off to payment.",
		}),
		orderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_total_euros",
			Help:    "Order totals in euros.",
			Buckets: []float64{5, 10, 15, 20, 30, 50, 100},
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cart_sessions_active",
			Help: "Cart engines held in memory.",
		}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.promoOutcomes, m.ordersTotal, m.orderAmount, m.sessions)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil || m.httpRequests == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) PromoResolved(outcome cart.PromoOutcome) {
	if m == nil || m.promoOutcomes == nil {
		return
	}
	m.promoOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) OrderSubmitted(total decimal.Decimal) {
	if m == nil || m.ordersTotal == nil {
		return
	}
	m.ordersTotal.Inc()
	m.orderAmount.Observe(total.InexactFloat64())
}

func (m *Metrics) SessionsActive(n int) {
	if m == nil || m.sessions == nil {
		return
	}
	m.sessions.Set(float64(n))
}

var _ cart.Observer = (*Metrics)(nil)
