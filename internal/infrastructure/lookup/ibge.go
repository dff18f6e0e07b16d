package lookup

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecertidoes/internal/usecase/interfaces"
)

const DefaultIBGEBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

var ufCodes = map[string]int{
	"AC": 12, "AL": 27, "AP": 16, "AM": 13, "BA": 29, "CE": 23, "DF": 53, "ES": 32, "GO": 52, "MA": 21,
	"MT": 51, "MS": 50, "MG": 31, "PA": 15, "PB": 25, "PR": 41, "PE": 26, "PI": 22, "RJ": 33, "RN": 24,
	"RS": 43, "RO": 11, "RR": 14, "SC": 42, "SP": 35, "SE": 28, "TO": 17,
}

// IBGEClient lists municipalities from the public IBGE localities API.
type IBGEClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.ICityProvider = (*IBGEClient)(nil)

func NewIBGEClient(baseURL string, timeout time.Duration) *IBGEClient {
	if baseURL == "" {
		baseURL = DefaultIBGEBaseURL
	}
	return &IBGEClient{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{Timeout: timeout}}
}

func (c *IBGEClient) ListCities(ctx context.Context, uf string) ([]string, error) {
	code, ok := ufCodes[strings.ToUpper(uf)]
	if !ok {
		return nil, fmt.Errorf("ibge: unknown uf %q", uf)
	}

	var municipios []struct {
		Nome string `json:"nome"`
	}
	url := fmt.Sprintf("%s/estados/%d/municipios?orderBy=nome", c.baseURL, code)
	if err := doJSON(ctx, c.http, "ibge", http.MethodGet, url, nil, nil, &municipios); err != nil {
		return nil, err
	}

	cidades := make([]string, 0, len(municipios))
	for _, m := range municipios {
		cidades = append(cidades, m.Nome)
	}
	return cidades, nil
}
