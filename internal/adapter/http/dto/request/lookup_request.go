package request

import "github.com/shopspring/decimal"

type ListCartoriosQuery struct {
	Estado       string `form:"estado" binding:"required,uf"`
	Cidade       string `form:"cidade" binding:"required"`
	AtribuicaoID string `form:"atribuicaoId"`
}

type ShippingQuoteRequest struct {
	CEPDestino string          `json:"cepDestino" binding:"required,cep"`
	ValorTotal decimal.Decimal `json:"valorTotal"`
}
