package response

import (
	"time"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase"
)

type CheckoutResponse struct {
	CheckoutURL  string `json:"checkoutUrl"`
	PreferenceID string `json:"preferenceId"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{CheckoutURL: r.CheckoutURL, PreferenceID: r.PreferenceID}
}

type WebhookNotificationResponse struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	GatewayPaymentID string    `json:"gatewayPaymentId,omitempty"`
	GatewayStatus    string    `json:"gatewayStatus,omitempty"`
	PaymentStatus    string    `json:"paymentStatus,omitempty"`
	Outcome          string    `json:"outcome"`
	Detail           string    `json:"detail,omitempty"`
	ReceivedAt       time.Time `json:"receivedAt"`
	ProcessedAt      time.Time `json:"processedAt"`
}

func FromWebhookNotifications(list []entities.WebhookNotification) []WebhookNotificationResponse {
	out := make([]WebhookNotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, WebhookNotificationResponse{
			ID:               n.ID,
			Kind:             n.Kind,
			GatewayPaymentID: n.GatewayPaymentID,
			GatewayStatus:    n.GatewayStatus,
			PaymentStatus:    string(n.PaymentStatus),
			Outcome:          string(n.Outcome),
			Detail:           n.Detail,
			ReceivedAt:       n.ReceivedAt,
			ProcessedAt:      n.ProcessedAt,
		})
	}
	return out
}
