package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"ecertidoes/internal/adapter/http/handlers"
	"ecertidoes/internal/adapter/http/handlers/mocks"
	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/infrastructure/metrics"
	"ecertidoes/internal/usecase/interfaces"
	mock_interfaces "ecertidoes/internal/usecase/interfaces/mocks"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mock_interfaces.MockITokenManager, *mocks.MockWebhookQueue) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tokens := mock_interfaces.NewMockITokenManager(ctrl)
	queue := mocks.NewMockWebhookQueue(ctrl)
	h := Handlers{
		Orders:      handlers.NewOrderHandler(mocks.NewMockIOrderUseCase(ctrl), 0, nil),
		Payments:    handlers.NewPaymentHandler(mocks.NewMockICheckoutUseCase(ctrl), queue, nil),
		AdminOrders: handlers.NewAdminOrderHandler(mocks.NewMockIAdminOrderUseCase(ctrl), 0, nil),
		Auth:        handlers.NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl)),
		Lookup:      handlers.NewLookupHandler(mocks.NewMockILookupUseCase(ctrl)),
	}
	return NewRouter(h, Options{Tokens: tokens, Registry: metrics.NewRegistry()}), tokens, queue
}

func TestRouter_PublicAndProtectedRoutes(t *testing.T) {
	r, tokens, queue := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/meus-pedidos", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("orders without token: expected 401, got %d", w.Code)
	}

	queue.EXPECT().Submit(gomock.Any()).Return(true)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/pagamentos/webhook", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("webhook must be public, got %d", w.Code)
	}

	tokens.EXPECT().Parse("cliente").Return(interfaces.TokenClaims{UserID: 2, Role: entities.UserRoleCliente}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/pedidos/1", nil)
	req.Header.Set("Authorization", "Bearer cliente")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("admin as cliente: expected 403, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
}
