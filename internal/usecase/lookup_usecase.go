package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

var estados = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// atribuicaoKeywords matches notary offices whose name reveals their attribution.
var atribuicaoKeywords = map[string][]string{
	"1": {"NOTAS", "NOTARIAL", "TABELIONATO"},
	"2": {"PROTESTO"},
	"3": {"REGISTRO CIVIL", "PESSOAS NATURAIS"},
	"4": {"REGISTRO DE IMOVEIS", "IMÓVEIS", "IMOVEL"},
}

var lowercaseWords = map[string]bool{
	"de": true, "e": true, "das": true, "dos": true, "da": true, "do": true,
	"a": true, "o": true, "em": true, "para": true, "com": true,
}

type ILookupUseCase interface {
	ListEstados() []string
	ListCidades(ctx context.Context, uf string) ([]string, error)
	ListCartorios(ctx context.Context, estado, cidade, atribuicaoID string) ([]entities.CartorioOption, error)
	QuoteShipping(ctx context.Context, cepDestino string, valorTotal decimal.Decimal) ([]entities.ShippingQuote, error)
}

type LookupUseCase struct {
	cities    interfaces.ICityProvider
	cartorios interfaces.ICartorioProvider
	shipping  interfaces.IShippingQuoter
	cache     interfaces.ILookupCache
	ttl       time.Duration
	log       *zap.Logger
}

var _ ILookupUseCase = (*LookupUseCase)(nil)

func NewLookupUseCase(
	cities interfaces.ICityProvider,
	cartorios interfaces.ICartorioProvider,
	shipping interfaces.IShippingQuoter,
	cache interfaces.ILookupCache,
	ttl time.Duration,
	log *zap.Logger,
) *LookupUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LookupUseCase{
		cities:    cities,
		cartorios: cartorios,
		shipping:  shipping,
		cache:     cache,
		ttl:       ttl,
		log:       log.Named("lookup.usecase"),
	}
}

func (u *LookupUseCase) ListEstados() []string {
	return slices.Clone(estados)
}

func (u *LookupUseCase) ListCidades(ctx context.Context, uf string) ([]string, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !slices.Contains(estados, uf) {
		return nil, ErrInvalidUF
	}

	key := "ibge:cidades:" + uf
	var cached []string
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	cidades, err := u.cities.ListCities(ctx, uf)
	if err != nil {
		u.log.Error("list cidades failed", zap.String("uf", uf), zap.Error(err))
		return nil, wrap(ErrLookupGateway, err)
	}
	u.cacheSet(ctx, key, cidades)
	return cidades, nil
}

func (u *LookupUseCase) ListCartorios(ctx context.Context, estado, cidade, atribuicaoID string) ([]entities.CartorioOption, error) {
	estado = strings.ToUpper(strings.TrimSpace(estado))
	cidade = strings.ToUpper(strings.TrimSpace(cidade))
	atribuicaoID = strings.TrimSpace(atribuicaoID)
	if estado == "" || cidade == "" {
		return nil, ErrMissingLookupInput
	}

	key := fmt.Sprintf("infosimples:cartorios:%s:%s", estado, cidade)
	var records []interfaces.CartorioRecord
	if !u.cacheGet(ctx, key, &records) {
		var err error
		records, err = u.cartorios.ListCartorios(ctx, estado, cidade)
		if err != nil {
			u.log.Error("list cartorios failed", zap.String("uf", estado), zap.String("cidade", cidade), zap.Error(err))
			return nil, wrap(ErrLookupGateway, err)
		}
		u.cacheSet(ctx, key, records)
	}

	out := make([]entities.CartorioOption, 0, len(records))
	for _, r := range records {
		if atribuicaoID != "" && !matchesAtribuicao(r, atribuicaoID) {
			continue
		}
		out = append(out, entities.CartorioOption{Value: r.CNS, Label: FormatCartorioName(r.Denominacao)})
	}
	u.log.Debug("list cartorios success", zap.String("uf", estado), zap.String("cidade", cidade), zap.Int("count", len(out)))
	return out, nil
}

// matchesAtribuicao keeps offices that declare the attribution, whose name
// carries one of its keywords, or whose name carries no keyword at all.
func matchesAtribuicao(r interfaces.CartorioRecord, atribuicaoID string) bool {
	for _, id := range strings.Split(r.Atribuicoes, ",") {
		if strings.TrimSpace(id) == atribuicaoID {
			return true
		}
	}

	nome := strings.ToUpper(r.Denominacao)
	for _, kw := range atribuicaoKeywords[atribuicaoID] {
		if strings.Contains(nome, kw) {
			return true
		}
	}
	for _, kws := range atribuicaoKeywords {
		for _, kw := range kws {
			if strings.Contains(nome, kw) {
				return false
			}
		}
	}
	return true
}

// FormatCartorioName title-cases an office name keeping short prepositions lowercase.
func FormatCartorioName(nome string) string {
	words := strings.Fields(strings.ToLower(nome))
	for i, w := range words {
		if i > 0 && lowercaseWords[w] {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// QuoteShipping never fails on provider errors; it degrades to an empty list.
func (u *LookupUseCase) QuoteShipping(ctx context.Context, cepDestino string, valorTotal decimal.Decimal) ([]entities.ShippingQuote, error) {
	cep := onlyDigits(cepDestino)
	if cep == "" || !valorTotal.IsPositive() {
		return nil, ErrMissingShipping
	}

	key := fmt.Sprintf("frenet:quote:%s:%s", cep, valorTotal.StringFixed(2))
	var cached []entities.ShippingQuote
	if u.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	quotes, err := u.shipping.Quote(ctx, cep, valorTotal)
	if err != nil {
		u.log.Warn("shipping quote failed", zap.String("cep", cep), zap.Error(err))
		return []entities.ShippingQuote{}, nil
	}
	if quotes == nil {
		quotes = []entities.ShippingQuote{}
	}
	if len(quotes) > 0 {
		u.cacheSet(ctx, key, quotes)
	}
	return quotes, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (u *LookupUseCase) cacheGet(ctx context.Context, key string, dest any) bool {
	if u.cache == nil {
		return false
	}
	found, err := u.cache.Get(ctx, key, dest)
	if err != nil {
		u.log.Warn("lookup cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (u *LookupUseCase) cacheSet(ctx context.Context, key string, value any) {
	if u.cache == nil || u.ttl <= 0 {
		return
	}
	if err := u.cache.Set(ctx, key, value, u.ttl); err != nil {
		u.log.Warn("lookup cache set failed", zap.String("key", key), zap.Error(err))
	}
}
