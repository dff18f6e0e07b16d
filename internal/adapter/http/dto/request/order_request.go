package request

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/shopspring/decimal"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase"
)

// Multipart field names accepted by the order creation route.
const (
	FormFieldItems       = "itens"
	FormFieldCustomer    = "dadosCliente"
	FormFieldAttachments = "anexosCliente"
)

var ErrInvalidOrderPayload = errors.New("invalid order payload")

type LineItemRequest struct {
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Price    decimal.Decimal `json:"price"`
	FormData map[string]any  `json:"formData"`
}

// CreateOrderRequest accepts both a JSON body and a multipart form whose
// itens and dadosCliente fields carry JSON documents.
type CreateOrderRequest struct {
	Items    []LineItemRequest          `json:"itens"`
	Customer *entities.CustomerSnapshot `json:"dadosCliente"`
}

// ParseMultipartOrder reads the JSON-encoded fields of a multipart order form.
func ParseMultipartOrder(form *multipart.Form) (CreateOrderRequest, error) {
	var req CreateOrderRequest
	if form == nil {
		return req, ErrInvalidOrderPayload
	}
	if raw := firstValue(form.Value[FormFieldItems]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Items); err != nil {
			return req, errors.Join(ErrInvalidOrderPayload, err)
		}
	}
	if raw := firstValue(form.Value[FormFieldCustomer]); raw != "" {
		var c entities.CustomerSnapshot
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return req, errors.Join(ErrInvalidOrderPayload, err)
		}
		req.Customer = &c
	}
	return req, nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func (r CreateOrderRequest) ToInput(attachments []usecase.FileUpload) usecase.PlaceOrderInput {
	in := usecase.PlaceOrderInput{
		Items:       make([]usecase.LineItemInput, 0, len(r.Items)),
		Attachments: attachments,
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, usecase.LineItemInput{
			Name:     it.Name,
			Slug:     it.Slug,
			Price:    it.Price,
			FormData: it.FormData,
		})
	}
	if r.Customer != nil {
		in.Customer = *r.Customer
	}
	return in
}
