package response

import (
	"time"

	"ecertidoes/internal/domain/entities"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type OrderSummaryResponse struct {
	ID         uint64 `json:"id"`
	Protocolo  string `json:"protocolo"`
	Status     string `json:"status"`
	ValorTotal string `json:"valorTotal"`
}

type CreateOrderResponse struct {
	Message string               `json:"message"`
	Pedido  OrderSummaryResponse `json:"pedido"`
}

type LineItemResponse struct {
	ID              uint64         `json:"id"`
	NomeProduto     string         `json:"nomeProduto"`
	SlugProduto     string         `json:"slugProduto"`
	Preco           string         `json:"preco"`
	DadosFormulario map[string]any `json:"dadosFormulario"`
}

type FileResponse struct {
	ID           uint64    `json:"id"`
	PedidoID     uint64    `json:"pedidoId"`
	NomeOriginal string    `json:"nomeOriginal"`
	Tipo         string    `json:"tipo"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PaymentResponse struct {
	ID        uint64    `json:"id"`
	Status    string    `json:"status"`
	Metodo    string    `json:"metodo"`
	Valor     string    `json:"valor"`
	GatewayID string    `json:"transacaoId,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderResponse struct {
	ID               uint64                    `json:"id"`
	Protocolo        string                    `json:"protocolo"`
	Status           string                    `json:"status"`
	ValorTotal       string                    `json:"valorTotal"`
	DadosCliente     entities.CustomerSnapshot `json:"dadosCliente"`
	CodigoRastreio   *string                   `json:"codigoRastreio"`
	ObservacoesAdmin *string                   `json:"observacoesAdmin"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
	Itens            []LineItemResponse        `json:"itens"`
	Arquivos         []FileResponse            `json:"arquivos"`
	Pagamento        *PaymentResponse          `json:"pagamento"`
	Usuario          *UserResponse             `json:"usuario,omitempty"`
}

type UpdateOrderResponse struct {
	Message string        `json:"message"`
	Pedido  OrderResponse `json:"pedido"`
}

type UploadCertificateResponse struct {
	Message      string       `json:"message"`
	Arquivo      FileResponse `json:"arquivo"`
	PedidoStatus string       `json:"pedidoStatus"`
}

func FromOrderSummary(o entities.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:         o.ID,
		Protocolo:  o.Protocolo,
		Status:     string(o.Status),
		ValorTotal: o.Total.StringFixed(2),
	}
}

// FromOrder maps the full aggregate. includeUser is only set on admin routes.
func FromOrder(o entities.Order, includeUser bool) OrderResponse {
	res := OrderResponse{
		ID:               o.ID,
		Protocolo:        o.Protocolo,
		Status:           string(o.Status),
		ValorTotal:       o.Total.StringFixed(2),
		DadosCliente:     o.Customer,
		CodigoRastreio:   o.CodigoRastreio,
		ObservacoesAdmin: o.ObservacoesAdmin,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Itens:            make([]LineItemResponse, 0, len(o.Items)),
		Arquivos:         make([]FileResponse, 0, len(o.Files)),
	}
	for _, it := range o.Items {
		res.Itens = append(res.Itens, LineItemResponse{
			ID:              it.ID,
			NomeProduto:     it.Name,
			SlugProduto:     it.Slug,
			Preco:           it.Price.StringFixed(2),
			DadosFormulario: it.FormData,
		})
	}
	for _, f := range o.Files {
		res.Arquivos = append(res.Arquivos, FromFile(f))
	}
	if o.Payment != nil {
		res.Pagamento = &PaymentResponse{
			ID:        o.Payment.ID,
			Status:    string(o.Payment.Status),
			Metodo:    string(o.Payment.Method),
			Valor:     o.Payment.Amount.StringFixed(2),
			GatewayID: o.Payment.GatewayID,
			UpdatedAt: o.Payment.UpdatedAt,
		}
	}
	if includeUser && o.User != nil {
		u := FromUser(*o.User)
		res.Usuario = &u
	}
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, false))
	}
	return out
}

func FromFile(f entities.AttachedFile) FileResponse {
	return FileResponse{
		ID:           f.ID,
		PedidoID:     f.OrderID,
		NomeOriginal: f.OriginalName,
		Tipo:         string(f.Kind),
		CreatedAt:    f.CreatedAt,
	}
}
