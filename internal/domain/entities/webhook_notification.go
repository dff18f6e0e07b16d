package entities

import (
	"encoding/json"
	"time"
)

// WebhookOutcome is the result of processing one gateway notification.
type WebhookOutcome string

const (
	WebhookOutcomeIgnored    WebhookOutcome = "ignored"
	WebhookOutcomeAborted    WebhookOutcome = "aborted"
	WebhookOutcomeUnchanged  WebhookOutcome = "unchanged"
	WebhookOutcomeReconciled WebhookOutcome = "reconciled"
	WebhookOutcomeFailed     WebhookOutcome = "failed"
)

// WebhookNotification is the audit record of a received notification.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type WebhookNotification struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	OrderID          string          `json:"order_id,omitempty"`
	GatewayStatus    string          `json:"gateway_status,omitempty"`
	PaymentStatus    PaymentStatus   `json:"payment_status,omitempty"`
	Outcome          WebhookOutcome  `json:"outcome"`
	Detail           string          `json:"detail,omitempty"`
	PayloadRaw       json.RawMessage `json:"payload_raw,omitempty"`
	ReceivedAt       time.Time       `json:"received_at"`
	ProcessedAt      time.Time       `json:"processed_at"`
}
