package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

const DefaultFrenetURL = "https://api.frenet.com.br/shipping/quote"

// Certificates ship as a flat document envelope.
const (
	packageWeightKg = "0.3"
	packageLengthCm = 35
	packageHeightCm = 2
	packageWidthCm  = 25
	packageSKU      = "CERTIDAO"
)

// FrenetClient quotes shipping for a document envelope.
type FrenetClient struct {
	url       string
	token     string
	sellerCEP string
	http      *http.Client
}

var _ interfaces.IShippingQuoter = (*FrenetClient)(nil)

func NewFrenetClient(url, token, sellerCEP string, timeout time.Duration) *FrenetClient {
	if url == "" {
		url = DefaultFrenetURL
	}
	return &FrenetClient{url: url, token: token, sellerCEP: digits(sellerCEP), http: &http.Client{Timeout: timeout}}
}

type frenetItem struct {
	Weight   string `json:"Weight"`
	Length   int    `json:"Length"`
	Height   int    `json:"Height"`
	Width    int    `json:"Width"`
	Quantity int    `json:"Quantity"`
	SKU      string `json:"SKU"`
}

type frenetRequest struct {
	SellerCEP            string       `json:"SellerCEP"`
	RecipientCEP         string       `json:"RecipientCEP"`
	ShipmentInvoiceValue float64      `json:"ShipmentInvoiceValue"`
	ShippingItemArray    []frenetItem `json:"ShippingItemArray"`
	RecipientCountry     string       `json:"RecipientCountry"`
}

type frenetService struct {
	ServiceDescription string `json:"ServiceDescription"`
	ShippingPrice      string `json:"ShippingPrice"`
	DeliveryTime       string `json:"DeliveryTime"`
	Error              bool   `json:"Error"`
}

type frenetResponse struct {
	ShippingSevicesArray []frenetService `json:"ShippingSevicesArray"`
}

// Quote returns only the services Frenet could price.
func (c *FrenetClient) Quote(ctx context.Context, cepDestino string, invoiceValue decimal.Decimal) ([]entities.ShippingQuote, error) {
	if c.token == "" || c.sellerCEP == "" {
		return nil, fmt.Errorf("frenet: %w", ErrNotConfigured)
	}
	recipient := digits(cepDestino)
	if len(recipient) != 8 {
		return nil, fmt.Errorf("frenet: invalid destination cep %q", cepDestino)
	}

	req := frenetRequest{
		SellerCEP:            c.sellerCEP,
		RecipientCEP:         recipient,
		ShipmentInvoiceValue: invoiceValue.Round(2).InexactFloat64(),
		ShippingItemArray: []frenetItem{{
			Weight:   packageWeightKg,
			Length:   packageLengthCm,
			Height:   packageHeightCm,
			Width:    packageWidthCm,
			Quantity: 1,
			SKU:      packageSKU,
		}},
		RecipientCountry: "BR",
	}

	var body frenetResponse
	headers := map[string]string{"token": c.token}
	if err := doJSON(ctx, c.http, "frenet", http.MethodPost, c.url, headers, req, &body); err != nil {
		return nil, err
	}

	quotes := make([]entities.ShippingQuote, 0, len(body.ShippingSevicesArray))
	for _, s := range body.ShippingSevicesArray {
		if s.Error {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(s.ShippingPrice))
		if err != nil {
			continue
		}
		prazo, _ := strconv.Atoi(strings.TrimSpace(s.DeliveryTime))
		quotes = append(quotes, entities.ShippingQuote{
			Servico: s.ServiceDescription,
			Preco:   price.Round(2),
			Prazo:   prazo,
		})
	}
	return quotes, nil
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
