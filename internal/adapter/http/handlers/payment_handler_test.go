package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"ecertidoes/internal/adapter/http/handlers/mocks"
	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase"
)

func TestPaymentHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *PaymentHandler) *gin.Engine {
		r := gin.New()
		r.POST("/api/pagamentos/criar-checkout", withUser(7, entities.UserRoleCliente), h.CreateCheckout)
		return r
	}

	t.Run("missing pedidoId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewPaymentHandler(uc, mocks.NewMockWebhookQueue(ctrl), nil))

		req := httptest.NewRequest(http.MethodPost, "/api/pagamentos/criar-checkout", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewPaymentHandler(uc, mocks.NewMockWebhookQueue(ctrl), nil))
		uc.EXPECT().CreateCheckout(gomock.Any(), uint64(7), uint64(12)).Return(usecase.CheckoutResult{}, usecase.ErrOrderAlreadyProcessed)

		req := httptest.NewRequest(http.MethodPost, "/api/pagamentos/criar-checkout", bytes.NewBufferString(`{"pedidoId":12}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway failure hides cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewPaymentHandler(uc, mocks.NewMockWebhookQueue(ctrl), nil))
		uc.EXPECT().CreateCheckout(gomock.Any(), uint64(7), uint64(12)).Return(usecase.CheckoutResult{}, usecase.ErrCheckoutGateway)

		req := httptest.NewRequest(http.MethodPost, "/api/pagamentos/criar-checkout", bytes.NewBufferString(`{"pedidoId":"12"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != usecase.ErrCheckoutGateway.Message {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(NewPaymentHandler(uc, mocks.NewMockWebhookQueue(ctrl), nil))
		uc.EXPECT().CreateCheckout(gomock.Any(), uint64(7), uint64(12)).
			Return(usecase.CheckoutResult{CheckoutURL: "https://mp.test/init", PreferenceID: "pref-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/pagamentos/criar-checkout", bytes.NewBufferString(`{"pedidoId":12}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != `{"checkoutUrl":"https://mp.test/init","preferenceId":"pref-1"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		url      string
		body     string
		accepted bool
		wantKind string
		wantID   string
	}{
		{"payment by data.id", "/api/pagamentos/webhook", `{"type":"payment","data":{"id":"123"}}`, true, "payment", "123"},
		{"payment by topic", "/api/pagamentos/webhook", `{"topic":"payment","id":456}`, true, "payment", "456"},
		{"query only", "/api/pagamentos/webhook?topic=payment&id=789", ``, true, "payment", "789"},
		{"garbage body still acked", "/api/pagamentos/webhook", `not json`, true, "", ""},
		{"queue full still acked", "/api/pagamentos/webhook", `{"type":"payment","data":{"id":"1"}}`, false, "payment", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := mocks.NewMockWebhookQueue(ctrl)
			h := NewPaymentHandler(mocks.NewMockICheckoutUseCase(ctrl), queue, nil)
			r := gin.New()
			r.POST("/api/pagamentos/webhook", h.Webhook)

			queue.EXPECT().Submit(gomock.Any()).DoAndReturn(func(ev usecase.WebhookEvent) bool {
				if ev.Kind != tc.wantKind || ev.PaymentID != tc.wantID {
					t.Fatalf("unexpected event: %+v", ev)
				}
				if ev.ReceivedAt.IsZero() {
					t.Fatalf("expected receive time")
				}
				return tc.accepted
			})

			req := httptest.NewRequest(http.MethodPost, tc.url, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK || w.Body.String() != "OK" {
				t.Fatalf("expected 200 OK, got %d %q", w.Code, w.Body.String())
			}
		})
	}
}
