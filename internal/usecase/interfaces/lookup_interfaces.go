package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ecertidoes/internal/domain/entities"
)

// CartorioRecord is a raw notary office entry returned by the lookup provider.
type CartorioRecord struct {
	CNS         string
	Denominacao string
	Atribuicoes string
	Municipio   string
	UF          string
}

type ICityProvider interface {
	ListCities(ctx context.Context, uf string) ([]string, error)
}

type ICartorioProvider interface {
	ListCartorios(ctx context.Context, uf, cidade string) ([]CartorioRecord, error)
}

type IShippingQuoter interface {
	Quote(ctx context.Context, cepDestino string, invoiceValue decimal.Decimal) ([]entities.ShippingQuote, error)
}

// ILookupCache caches lookup results. A miss returns found == false.
type ILookupCache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
