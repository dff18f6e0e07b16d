package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecertidoes/internal/usecase/interfaces"
)

const DefaultInfosimplesURL = "https://api.infosimples.com/api/v2/consultas/cnj/serventias-extrajud-lista"

// infosimplesTimeoutSeconds is the server-side query timeout sent with each request.
const infosimplesTimeoutSeconds = 300

// InfosimplesClient lists extrajudicial notary offices registered at CNJ.
type InfosimplesClient struct {
	url   string
	token string
	http  *http.Client
}

var _ interfaces.ICartorioProvider = (*InfosimplesClient)(nil)

func NewInfosimplesClient(url, token string, timeout time.Duration) *InfosimplesClient {
	if url == "" {
		url = DefaultInfosimplesURL
	}
	return &InfosimplesClient{url: url, token: token, http: &http.Client{Timeout: timeout}}
}

type infosimplesRequest struct {
	Token     string `json:"token"`
	UF        string `json:"uf"`
	Municipio string `json:"municipio"`
	Timeout   int    `json:"timeout"`
}

type infosimplesResponse struct {
	Code        int    `json:"code"`
	CodeMessage string `json:"code_message"`
	Data        []struct {
		Resultados []infosimplesOffice `json:"resultados"`
	} `json:"data"`
}

type infosimplesOffice struct {
	CNS         string       `json:"cns"`
	Denominacao string       `json:"denominacao"`
	Atribuicoes flexibleList `json:"atribuicoes"`
	Municipio   string       `json:"municipio"`
	UF          string       `json:"uf"`
}

// flexibleList accepts "1,4" as well as ["1","4"] or [1,4].
type flexibleList string

func (l *flexibleList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = flexibleList(s)
		return nil
	}
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		*l = ""
		return nil
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, strings.TrimSpace(fmt.Sprint(it)))
	}
	*l = flexibleList(strings.Join(parts, ","))
	return nil
}

func (c *InfosimplesClient) ListCartorios(ctx context.Context, uf, cidade string) ([]interfaces.CartorioRecord, error) {
	if c.token == "" {
		return nil, fmt.Errorf("infosimples: %w", ErrNotConfigured)
	}

	var body infosimplesResponse
	req := infosimplesRequest{
		Token:     c.token,
		UF:        strings.ToUpper(uf),
		Municipio: strings.ToUpper(cidade),
		Timeout:   infosimplesTimeoutSeconds,
	}
	if err := doJSON(ctx, c.http, "infosimples", http.MethodPost, c.url, nil, req, &body); err != nil {
		return nil, err
	}
	if body.Code != 200 || len(body.Data) == 0 {
		msg := body.CodeMessage
		if msg == "" {
			msg = "invalid response"
		}
		return nil, fmt.Errorf("infosimples: code %d: %s", body.Code, msg)
	}

	offices := body.Data[0].Resultados
	out := make([]interfaces.CartorioRecord, 0, len(offices))
	for _, o := range offices {
		out = append(out, interfaces.CartorioRecord{
			CNS:         o.CNS,
			Denominacao: o.Denominacao,
			Atribuicoes: string(o.Atribuicoes),
			Municipio:   o.Municipio,
			UF:          o.UF,
		})
	}
	return out, nil
}
