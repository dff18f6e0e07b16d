package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutPreferenceRequest describes a hosted checkout for one order.
type CheckoutPreferenceRequest struct {
	OrderID         uint64
	Title           string
	Amount          decimal.Decimal
	PayerName       string
	PayerEmail      string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	NotificationURL string
	MaxInstallments int
}

type CheckoutPreference struct {
	ID          string
	CheckoutURL string
}

// GatewayPayment is the authoritative payment detail fetched from the gateway.
type GatewayPayment struct {
	ID                string
	Status            string
	ExternalReference string
	PaymentMethodID   string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req CheckoutPreferenceRequest) (CheckoutPreference, error)
	GetPayment(ctx context.Context, paymentID string) (GatewayPayment, error)
	RefundPayment(ctx context.Context, paymentID string) error
}
