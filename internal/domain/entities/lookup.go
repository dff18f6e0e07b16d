package entities

import "github.com/shopspring/decimal"

// CartorioOption is a notary office entry for selection lists.
type CartorioOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ShippingQuote is one carrier service returned by the shipping quote provider.
type ShippingQuote struct {
	Servico string          `json:"servico"`
	Preco   decimal.Decimal `json:"preco"`
	Prazo   int             `json:"prazo"`
}
