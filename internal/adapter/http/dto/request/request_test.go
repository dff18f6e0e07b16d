package request

import (
	"encoding/json"
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ecertidoes/internal/domain/entities"
)

func TestParseWebhookNotification(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		query    url.Values
		wantKind string
		wantID   string
	}{
		{"type with data.id string", `{"type":"payment","data":{"id":"123"}}`, nil, "payment", "123"},
		{"type with data.id number", `{"type":"payment","data":{"id":123456789012}}`, nil, "payment", "123456789012"},
		{"topic with top-level id", `{"topic":"payment","id":77}`, nil, "payment", "77"},
		{"data.id wins over id", `{"type":"payment","id":"1","data":{"id":"2"}}`, nil, "payment", "2"},
		{"merchant order", `{"topic":"merchant_order","id":"5"}`, nil, "merchant_order", "5"},
		{"query fallback", ``, url.Values{"topic": {"payment"}, "id": {"9"}}, "payment", "9"},
		{"query data.id", `{}`, url.Values{"type": {"payment"}, "data.id": {"10"}}, "payment", "10"},
		{"invalid json", `{`, nil, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, id := ParseWebhookNotification([]byte(tc.body), tc.query)
			if kind != tc.wantKind || id != tc.wantID {
				t.Fatalf("expected (%q, %q), got (%q, %q)", tc.wantKind, tc.wantID, kind, id)
			}
		})
	}
}

func TestCreateCheckoutRequest_UnmarshalJSON(t *testing.T) {
	for body, want := range map[string]uint64{
		`{"pedidoId":12}`:   12,
		`{"pedidoId":"34"}`: 34,
		`{"pedidoId":"x"}`:  0,
		`{}`:                0,
	} {
		var req CreateCheckoutRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unexpected error for %s: %v", body, err)
		}
		if req.PedidoID != want {
			t.Fatalf("body %s: expected %d, got %d", body, want, req.PedidoID)
		}
	}
}

func TestAdminUpdateOrderRequest_ToUpdate(t *testing.T) {
	var req AdminUpdateOrderRequest
	body := `{"status":"Busca em Andamento","codigoRastreio":null}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upd := req.ToUpdate()
	if upd.Status == nil || *upd.Status != entities.OrderStatusBuscaEmAndamento {
		t.Fatalf("unexpected status: %+v", upd.Status)
	}
	if !upd.CodigoRastreio.Set || upd.CodigoRastreio.Value != nil {
		t.Fatalf("expected explicit null tracking code, got %+v", upd.CodigoRastreio)
	}
	if upd.ObservacoesAdmin.Set {
		t.Fatalf("absent notes must not be set")
	}

	req = AdminUpdateOrderRequest{}
	if err := json.Unmarshal([]byte(`{"observacoesAdmin":"ok"}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upd := req.ToUpdate(); upd.Status != nil || !upd.ObservacoesAdmin.Set || *upd.ObservacoesAdmin.Value != "ok" {
		t.Fatalf("unexpected update: %+v", upd)
	}
}

func TestCreateOrderRequest(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		var req CreateOrderRequest
		body := `{"itens":[{"name":"Certidão","slug":"nascimento","price":"60.50","formData":{"cartorio":"1"}}],
			"dadosCliente":{"nome":"Ana","email":"ana@test.com","cpf":"123","telefone":"21"}}`
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := req.ToInput(nil)
		if len(in.Items) != 1 || !in.Items[0].Price.Equal(decimal.RequireFromString("60.5")) {
			t.Fatalf("unexpected items: %+v", in.Items)
		}
		if in.Customer.CPF != "123" || in.Customer.Extra["telefone"] != "21" {
			t.Fatalf("unexpected customer: %+v", in.Customer)
		}
	})

	t.Run("multipart form", func(t *testing.T) {
		form := &multipart.Form{Value: map[string][]string{
			FormFieldItems:    {`[{"name":"A","price":10},{"name":"B","price":5}]`},
			FormFieldCustomer: {`{"nome":"Ana","email":"a@test.com","cpf":"1"}`},
		}}
		req, err := ParseMultipartOrder(form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(req.Items) != 2 || req.Customer == nil || req.Customer.Nome != "Ana" {
			t.Fatalf("unexpected request: %+v", req)
		}
	})

	t.Run("multipart with broken json", func(t *testing.T) {
		form := &multipart.Form{Value: map[string][]string{FormFieldItems: {`[`}}}
		if _, err := ParseMultipartOrder(form); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing customer stays empty", func(t *testing.T) {
		in := CreateOrderRequest{}.ToInput(nil)
		if in.Customer.HasRequiredFields() {
			t.Fatalf("expected empty customer")
		}
	})
}

func TestLookupValidators(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	if err := registerValidators(v); err != nil {
		t.Fatalf("register validators: %v", err)
	}

	cases := []struct {
		name    string
		payload any
		wantErr bool
	}{
		{"cep digits", ShippingQuoteRequest{CEPDestino: "24000000"}, false},
		{"cep with dash", ShippingQuoteRequest{CEPDestino: "24000-000"}, false},
		{"cep short", ShippingQuoteRequest{CEPDestino: "2400"}, true},
		{"cep letters", ShippingQuoteRequest{CEPDestino: "24000abc"}, true},
		{"uf ok", ListCartoriosQuery{Estado: "rj", Cidade: "Niterói"}, false},
		{"uf long", ListCartoriosQuery{Estado: "RJX", Cidade: "Niterói"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.payload)
			if (err != nil) != tc.wantErr {
				t.Fatalf("validate(%+v) err = %v, wantErr %v", tc.payload, err, tc.wantErr)
			}
		})
	}

	t.Run("gin engine carries the rules", func(t *testing.T) {
		if err := binding.Validator.ValidateStruct(ShippingQuoteRequest{CEPDestino: "2400"}); err == nil {
			t.Fatalf("expected cep rule to reject a short CEP")
		}
		if err := binding.Validator.ValidateStruct(ShippingQuoteRequest{CEPDestino: "24000-000"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
