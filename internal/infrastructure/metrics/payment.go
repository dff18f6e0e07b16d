package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ecertidoes/internal/usecase/interfaces"
)

const namespace = "ecertidoes"

// PaymentMetrics records checkout, webhook and refund outcomes plus gateway latency.
type PaymentMetrics struct {
	checkouts    *prometheus.CounterVec
	webhooks     *prometheus.CounterVec
	refunds      *prometheus.CounterVec
	gatewayCalls *prometheus.HistogramVec
	dropped      prometheus.Counter
}

var _ interfaces.IPaymentMetrics = (*PaymentMetrics)(nil)

// NewPaymentMetrics registers the payment metrics on the provided registerer.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	m := &PaymentMetrics{
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Checkout initiations by outcome.",
		}, []string{"outcome"}),
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_notifications_total",
			Help:      "Processed gateway notifications by outcome.",
		}, []string{"outcome"}),
		refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refund_total",
			Help:      "Refund attempts by outcome.",
		}, []string{"outcome"}),
		gatewayCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_call_duration_seconds",
			Help:      "Payment gateway call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "result"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_dropped_total",
			Help:      "Notifications dropped because the processing queue was full.",
		}),
	}
	reg.MustRegister(m.checkouts, m.webhooks, m.refunds, m.gatewayCalls, m.dropped)
	return m
}

func (m *PaymentMetrics) CheckoutOutcome(outcome string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *PaymentMetrics) WebhookOutcome(outcome string) {
	if m == nil || m.webhooks == nil {
		return
	}
	m.webhooks.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *PaymentMetrics) RefundOutcome(outcome string) {
	if m == nil || m.refunds == nil {
		return
	}
	m.refunds.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *PaymentMetrics) GatewayCall(operation string, elapsed time.Duration, err error) {
	if m == nil || m.gatewayCalls == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.gatewayCalls.WithLabelValues(normalizeLabel(operation), result).Observe(elapsed.Seconds())
}

// WebhookDropped counts notifications rejected by a full dispatcher queue.
func (m *PaymentMetrics) WebhookDropped() {
	if m == nil || m.dropped == nil {
		return
	}
	m.dropped.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
