package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the local view of the gateway payment.
type PaymentStatus string

const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusAprovado  PaymentStatus = "aprovado"
	PaymentStatusRecusado  PaymentStatus = "recusado"
	PaymentStatusEstornado PaymentStatus = "estornado"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPendente, PaymentStatusAprovado, PaymentStatusRecusado, PaymentStatusEstornado:
		return true
	}
	return false
}

// MapGatewayStatus translates the Mercado Pago status vocabulary.
// ok is false for statuses with no local counterpart.
func MapGatewayStatus(gatewayStatus string) (status PaymentStatus, ok bool) {
	switch strings.ToLower(strings.TrimSpace(gatewayStatus)) {
	case "approved":
		return PaymentStatusAprovado, true
	case "rejected", "cancelled":
		return PaymentStatusRecusado, true
	case "pending", "in_process":
		return PaymentStatusPendente, true
	case "refunded":
		return PaymentStatusEstornado, true
	}
	return "", false
}

type PaymentMethod string

const (
	PaymentMethodPix           PaymentMethod = "pix"
	PaymentMethodBoleto        PaymentMethod = "boleto"
	PaymentMethodCartaoCredito PaymentMethod = "cartao_credito"
	PaymentMethodMercadoPago   PaymentMethod = "mercadopago"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodBoleto, PaymentMethodCartaoCredito, PaymentMethodMercadoPago:
		return true
	}
	return false
}

// InferPaymentMethod maps the gateway payment_method_id (pix, bolbradesco,
// master, visa...) onto the local method. ok is false when the id is empty.
func InferPaymentMethod(gatewayMethodID string) (method PaymentMethod, ok bool) {
	id := strings.ToLower(strings.TrimSpace(gatewayMethodID))
	switch {
	case id == "":
		return "", false
	case id == "pix":
		return PaymentMethodPix, true
	case strings.Contains(id, "bol"):
		return PaymentMethodBoleto, true
	default:
		return PaymentMethodCartaoCredito, true
	}
}

// Payment is the payment record linked 1:1 to an order.
//
// GatewayID starts as the checkout preference id and is overwritten with the
// gateway transaction id once a notification is reconciled.
type Payment struct {
	ID           uint64          `json:"id"`
	OrderID      uint64          `json:"pedidoId"`
	GatewayID    string          `json:"gatewayId"`
	PreferenceID string          `json:"preferenceId,omitempty"`
	CheckoutURL  string          `json:"checkoutUrl,omitempty"`
	Status       PaymentStatus   `json:"status"`
	Method       PaymentMethod   `json:"metodo"`
	Amount       decimal.Decimal `json:"valor"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CanRefund reports whether the payment can be refunded at the gateway.
func (p *Payment) CanRefund() bool {
	return p != nil && strings.TrimSpace(p.GatewayID) != "" && p.Status == PaymentStatusAprovado
}
