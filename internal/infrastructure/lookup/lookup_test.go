package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestIBGEClient_ListCities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/estados/35/municipios" || r.URL.Query().Get("orderBy") != "nome" {
			t.Errorf("unexpected request: %s", r.URL.String())
		}
		_, _ = w.Write([]byte(`[{"id":1,"nome":"Campinas"},{"id":2,"nome":"Santos"}]`))
	}))
	defer srv.Close()

	c := NewIBGEClient(srv.URL, time.Second)
	got, err := c.ListCities(context.Background(), "sp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "Campinas" {
		t.Fatalf("unexpected cities: %v", got)
	}
}

func TestIBGEClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewIBGEClient(srv.URL, time.Second).ListCities(context.Background(), "RJ")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadGateway {
		t.Fatalf("expected StatusError 502, got %v", err)
	}
}

func TestInfosimplesClient_ListCartorios(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req infosimplesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Token != "tok" || req.UF != "SP" || req.Municipio != "CAMPINAS" || req.Timeout != 300 {
			t.Errorf("unexpected request: %+v", req)
		}
		_, _ = w.Write([]byte(`{"code":200,"data":[{"resultados":[
			{"cns":"111","denominacao":"1º TABELIONATO DE NOTAS","atribuicoes":"1,2"},
			{"cns":"222","denominacao":"OFICIAL DE REGISTRO CIVIL","atribuicoes":[3,4]}
		]}]}`))
	}))
	defer srv.Close()

	got, err := NewInfosimplesClient(srv.URL, "tok", time.Second).ListCartorios(context.Background(), "sp", "Campinas")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Atribuicoes != "1,2" || got[1].Atribuicoes != "3,4" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestInfosimplesClient_Failures(t *testing.T) {
	if _, err := NewInfosimplesClient("", "", time.Second).ListCartorios(context.Background(), "SP", "X"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":606,"code_message":"Token inválido"}`))
	}))
	defer srv.Close()

	if _, err := NewInfosimplesClient(srv.URL, "tok", time.Second).ListCartorios(context.Background(), "SP", "X"); err == nil {
		t.Fatalf("expected error on non-200 code")
	}
}

func TestFrenetClient_Quote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("token") != "tok" {
			t.Errorf("missing token header")
		}
		var req frenetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.SellerCEP != "01001000" || req.RecipientCEP != "13010000" || req.ShipmentInvoiceValue != 150 {
			t.Errorf("unexpected request: %+v", req)
		}
		_, _ = w.Write([]byte(`{"ShippingSevicesArray":[
			{"ServiceDescription":"SEDEX","ShippingPrice":"25.9","DeliveryTime":"2","Error":false},
			{"ServiceDescription":"Mini Envios","ShippingPrice":"","DeliveryTime":"","Error":true}
		]}`))
	}))
	defer srv.Close()

	c := NewFrenetClient(srv.URL, "tok", "01001-000", time.Second)
	got, err := c.Quote(context.Background(), "13010-000", decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Servico != "SEDEX" || got[0].Prazo != 2 || !got[0].Preco.Equal(decimal.RequireFromString("25.90")) {
		t.Fatalf("unexpected quotes: %+v", got)
	}
}

func TestFrenetClient_InvalidCEP(t *testing.T) {
	c := NewFrenetClient("http://unused", "tok", "01001000", time.Second)
	if _, err := c.Quote(context.Background(), "123", decimal.NewFromInt(10)); err == nil {
		t.Fatalf("expected invalid cep error")
	}
}
