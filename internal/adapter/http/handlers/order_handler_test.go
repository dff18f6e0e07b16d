package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"ecertidoes/internal/adapter/http/handlers/mocks"
	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/api/pedidos", withUser(7, entities.UserRoleCliente))
	g.POST("", h.CreateOrder)
	g.GET("/meus-pedidos", h.ListMyOrders)
	g.GET("/:id", h.GetMyOrder)
	g.GET("/:id/arquivos/:arquivoId/download", h.DownloadFile)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, zap.NewNop()))

		req := httptest.NewRequest(http.MethodPost, "/api/pedidos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, zap.NewNop()))

		uc.EXPECT().PlaceOrder(gomock.Any(), uint64(7), gomock.Any()).Return(entities.Order{}, usecase.ErrEmptyOrderItems)

		req := httptest.NewRequest(http.MethodPost, "/api/pedidos", bytes.NewBufferString(`{"itens":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != usecase.ErrEmptyOrderItems.Message || body["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("json success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, zap.NewNop()))

		uc.EXPECT().PlaceOrder(gomock.Any(), uint64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ uint64, in usecase.PlaceOrderInput) (entities.Order, error) {
				if len(in.Items) != 1 || in.Customer.Email != "ana@test.com" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{ID: 42, Protocolo: "EC20240115-42", Status: entities.OrderStatusAguardandoPagamento, Total: decimal.RequireFromString("150")}, nil
			})

		body := `{"itens":[{"name":"Nascimento","slug":"nascimento","price":150}],"dadosCliente":{"nome":"Ana","email":"ana@test.com","cpf":"1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/pedidos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var res struct {
			Message string
			Pedido  struct {
				ID         uint64 `json:"id"`
				Status     string `json:"status"`
				ValorTotal string `json:"valorTotal"`
			} `json:"pedido"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res.Pedido.ID != 42 || res.Pedido.Status != "Aguardando Pagamento" || res.Pedido.ValorTotal != "150.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("multipart with attachments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, zap.NewNop()))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("itens", `[{"name":"Nascimento","price":"60"}]`)
		_ = mw.WriteField("dadosCliente", `{"nome":"Ana","email":"ana@test.com","cpf":"1"}`)
		fw, _ := mw.CreateFormFile("anexosCliente", "rg.pdf")
		_, _ = fw.Write([]byte("%PDF-1.4 test"))
		_ = mw.Close()

		uc.EXPECT().PlaceOrder(gomock.Any(), uint64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ uint64, in usecase.PlaceOrderInput) (entities.Order, error) {
				if len(in.Attachments) != 1 || in.Attachments[0].OriginalName != "rg.pdf" {
					t.Fatalf("unexpected attachments: %+v", in.Attachments)
				}
				content, _ := io.ReadAll(in.Attachments[0].Content)
				if !strings.HasPrefix(string(content), "%PDF") {
					t.Fatalf("unexpected content: %q", content)
				}
				return entities.Order{ID: 1, Status: entities.OrderStatusAguardandoPagamento, Total: decimal.RequireFromString("60")}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/pedidos", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_GetMyOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, nil))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/abc", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, nil))
		uc.EXPECT().GetMine(gomock.Any(), uint64(7), uint64(3)).Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/3", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, nil))
		uc.EXPECT().ListMine(gomock.Any(), uint64(7)).Return([]entities.Order{{ID: 1}, {ID: 2}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/meus-pedidos", nil))
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_DownloadFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams with original name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, nil))
		uc.EXPECT().OpenFile(gomock.Any(), uint64(7), uint64(3), uint64(9)).
			Return(entities.AttachedFile{ID: 9, OriginalName: "certidão final.pdf"}, io.NopCloser(strings.NewReader("%PDF-data")), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/3/arquivos/9/download", nil))

		if w.Code != http.StatusOK || w.Body.String() != "%PDF-data" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment;") {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("missing blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, 0, nil))
		uc.EXPECT().OpenFile(gomock.Any(), uint64(7), uint64(3), uint64(9)).
			Return(entities.AttachedFile{}, nil, usecase.ErrFileMissingInStorage)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/pedidos/3/arquivos/9/download", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
