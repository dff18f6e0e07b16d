package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a certificate order (pedido).
//
// Values are persisted and exposed over HTTP exactly as below.
//
//	Aguardando Pagamento -> Processando -> Busca em Andamento -> Concluído
//	Aguardando Pagamento | Processando -> Cancelado
type OrderStatus string

const (
	OrderStatusAguardandoPagamento OrderStatus = "Aguardando Pagamento"
	OrderStatusProcessando         OrderStatus = "Processando"
	OrderStatusBuscaEmAndamento    OrderStatus = "Busca em Andamento"
	OrderStatusConcluido           OrderStatus = "Concluído"
	OrderStatusCancelado           OrderStatus = "Cancelado"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusAguardandoPagamento,
		OrderStatusProcessando,
		OrderStatusBuscaEmAndamento,
		OrderStatusConcluido,
		OrderStatusCancelado:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the happy or unhappy path.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusConcluido, OrderStatusCancelado:
		return true
	}
	return false
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, raw)
	}
	return s, nil
}

// Order is the certificate order aggregate.
//
// Storage model (PostgreSQL):
//   - pedidos (header), itens_pedido, arquivos_pedido, pagamentos (1:1)
//
// Monetary representation:
//   - Total is the sum of item prices at creation time and is never recomputed.
type Order struct {
	ID               uint64           `json:"id"`
	Protocolo        string           `json:"protocolo"`
	UserID           *uint64          `json:"userId,omitempty"`
	Customer         CustomerSnapshot `json:"dadosCliente"`
	Total            decimal.Decimal  `json:"valorTotal"`
	Status           OrderStatus      `json:"status"`
	CodigoRastreio   *string          `json:"codigoRastreio"`
	ObservacoesAdmin *string          `json:"observacoesAdmin"`
	CartorioID       *uint64          `json:"cartorioId,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`

	Items   []LineItem     `json:"itens,omitempty"`
	Files   []AttachedFile `json:"arquivos,omitempty"`
	Payment *Payment       `json:"pagamento,omitempty"`
	User    *User          `json:"usuario,omitempty"`
}

// LineItem is one requested certificate. Immutable after creation.
type LineItem struct {
	ID        uint64          `json:"id"`
	OrderID   uint64          `json:"pedidoId"`
	Name      string          `json:"nomeProduto"`
	Slug      string          `json:"slugProduto"`
	Price     decimal.Decimal `json:"preco"`
	FormData  map[string]any  `json:"dadosFormulario,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FormatProtocol builds the public order reference EC{yyyyMMdd}-{id}.
func FormatProtocol(createdAt time.Time, id uint64) string {
	return fmt.Sprintf("EC%s-%d", createdAt.Format("20060102"), id)
}

// SumItems returns the order total for the given items.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// ApplyPaymentStatus advances the order after a reconciled payment status.
// Only orders still awaiting payment move; anything else is left untouched,
// which keeps webhook replays from moving an order backwards.
func (o *Order) ApplyPaymentStatus(ps PaymentStatus) bool {
	if o.Status != OrderStatusAguardandoPagamento {
		return false
	}
	switch ps {
	case PaymentStatusAprovado:
		o.Status = OrderStatusProcessando
		return true
	case PaymentStatusRecusado:
		o.Status = OrderStatusCancelado
		return true
	case PaymentStatusPendente, PaymentStatusEstornado:
		return false
	}
	return false
}

// AttachCertificate records a fulfillment file and completes the order unless
// it already reached a terminal status.
func (o *Order) AttachCertificate(f AttachedFile) {
	o.Files = append(o.Files, f)
	if !o.Status.IsTerminal() {
		o.Status = OrderStatusConcluido
	}
}

// IsOwnedBy reports whether the order belongs to the given customer.
func (o Order) IsOwnedBy(userID uint64) bool {
	return o.UserID != nil && *o.UserID == userID
}

// FileByID finds an attached file by id.
func (o Order) FileByID(id uint64) (AttachedFile, bool) {
	for _, f := range o.Files {
		if f.ID == id {
			return f, true
		}
	}
	return AttachedFile{}, false
}
