package interfaces

import "time"

// IPaymentMetrics records payment flow outcomes.
type IPaymentMetrics interface {
	CheckoutOutcome(outcome string)
	WebhookOutcome(outcome string)
	RefundOutcome(outcome string)
	GatewayCall(operation string, elapsed time.Duration, err error)
}
