package usecase

import (
	"time"

	"ecertidoes/internal/usecase/interfaces"
)

type nopMetrics struct{}

func (nopMetrics) CheckoutOutcome(string)                   {}
func (nopMetrics) WebhookOutcome(string)                    {}
func (nopMetrics) RefundOutcome(string)                     {}
func (nopMetrics) GatewayCall(string, time.Duration, error) {}

func metricsOrNop(m interfaces.IPaymentMetrics) interfaces.IPaymentMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
