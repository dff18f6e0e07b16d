package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecertidoes/internal/adapter/http/dto/request"
	"ecertidoes/internal/adapter/http/dto/response"
	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/usecase"
)

// WebhookQueue hands notifications to background processing.
// Submit reports false when the notification was dropped.
type WebhookQueue interface {
	Submit(ev usecase.WebhookEvent) bool
}

type PaymentHandler struct {
	checkout usecase.ICheckoutUseCase
	webhooks WebhookQueue
	log      *zap.Logger
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, webhooks WebhookQueue, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{checkout: checkout, webhooks: webhooks, log: log.Named("payment.handler")}
}

// CreateCheckout godoc
// @Summary   Gera o checkout do Mercado Pago para um pedido
// @Tags      pagamentos
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      request.CreateCheckoutRequest  true  "Pedido"
// @Success   200   {object}  response.CheckoutResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /pagamentos/criar-checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var payload request.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeUseCaseError(c, usecase.ErrInvalidOrderID)
		return
	}

	h.log.Info("create checkout start", zap.Uint64("user_id", userID), zap.Uint64("order_id", payload.PedidoID))
	res, err := h.checkout.CreateCheckout(c.Request.Context(), userID, payload.PedidoID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCheckout(res))
}

// Webhook godoc
// @Summary      Recebe notificações do Mercado Pago
// @Description  Sempre responde 200 "OK"; o processamento acontece em segundo plano.
// @Tags         pagamentos
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Router       /pagamentos/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	receivedAt := time.Now().UTC()
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("webhook body unreadable", zap.Error(err))
	}

	kind, paymentID := request.ParseWebhookNotification(raw, c.Request.URL.Query())
	c.String(http.StatusOK, "OK")

	ev := usecase.WebhookEvent{
		Kind:       kind,
		PaymentID:  paymentID,
		Raw:        validJSONOrNil(raw),
		ReceivedAt: receivedAt,
	}
	if !h.webhooks.Submit(ev) {
		h.log.Warn("webhook dropped", zap.String("kind", kind), zap.String("payment_id", paymentID))
		return
	}
	h.log.Debug("webhook queued", zap.String("kind", kind), zap.String("payment_id", paymentID))
}

func validJSONOrNil(raw []byte) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	return json.RawMessage(raw)
}
