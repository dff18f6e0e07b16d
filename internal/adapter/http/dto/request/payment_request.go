package request

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

type CreateCheckoutRequest struct {
	PedidoID uint64 `json:"pedidoId" binding:"required"`
}

// UnmarshalJSON accepts pedidoId as a number or a numeric string.
func (r *CreateCheckoutRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		PedidoID json.RawMessage `json:"pedidoId"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	id, ok := flexibleID(raw.PedidoID)
	if !ok {
		r.PedidoID = 0
		return nil
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		r.PedidoID = 0
		return nil
	}
	r.PedidoID = n
	return nil
}

// WebhookNotification is a Mercado Pago notification. Two shapes are in use:
//
//	{"type": "payment", "data": {"id": "123"}}
//	{"topic": "payment", "id": 123}
//
// Older deliveries carry the same fields in the query string instead.
type WebhookNotification struct {
	Type  string          `json:"type"`
	Topic string          `json:"topic"`
	ID    json.RawMessage `json:"id"`
	Data  struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ParseWebhookNotification extracts the notification kind and payment id.
// Invalid bodies are not an error: the query string is used as a fallback and
// an empty kind is reported for anything unrecognized.
func ParseWebhookNotification(body []byte, query url.Values) (kind, paymentID string) {
	var n WebhookNotification
	if len(bytes.TrimSpace(body)) > 0 {
		_ = json.Unmarshal(body, &n)
	}

	kind = strings.TrimSpace(n.Type)
	if kind == "" {
		kind = strings.TrimSpace(n.Topic)
	}
	if kind == "" {
		kind = strings.TrimSpace(query.Get("type"))
	}
	if kind == "" {
		kind = strings.TrimSpace(query.Get("topic"))
	}

	if id, ok := flexibleID(n.Data.ID); ok {
		paymentID = id
	} else if id, ok := flexibleID(n.ID); ok {
		paymentID = id
	} else if id := strings.TrimSpace(query.Get("data.id")); id != "" {
		paymentID = id
	} else {
		paymentID = strings.TrimSpace(query.Get("id"))
	}
	return kind, paymentID
}

// flexibleID reads a JSON string or number as text.
func flexibleID(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
