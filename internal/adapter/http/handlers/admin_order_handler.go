package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecertidoes/internal/adapter/http/dto/request"
	"ecertidoes/internal/adapter/http/dto/response"
	"ecertidoes/internal/usecase"
)

type AdminOrderHandler struct {
	usecase        usecase.IAdminOrderUseCase
	maxUploadBytes int64
	log            *zap.Logger
}

func NewAdminOrderHandler(uc usecase.IAdminOrderUseCase, maxUploadBytes int64, log *zap.Logger) *AdminOrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = usecase.MaxUploadBytes
	}
	return &AdminOrderHandler{usecase: uc, maxUploadBytes: maxUploadBytes, log: log.Named("admin.handler")}
}

// GetOrder godoc
// @Summary   Detalhes completos de um pedido
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "ID do pedido"
// @Success   200  {object}  response.OrderResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /admin/pedidos/{id} [get]
func (h *AdminOrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	o, err := h.usecase.GetDetails(c.Request.Context(), orderID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, true))
}

// UpdateOrder godoc
// @Summary   Atualiza status, código de rastreio e observações
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id    path      int                              true  "ID do pedido"
// @Param     body  body      request.AdminUpdateOrderRequest  true  "Campos"
// @Success   200   {object}  response.UpdateOrderResponse
// @Failure   400   {object}  pkg.HTTPError
// @Router    /admin/pedidos/{id} [put]
func (h *AdminOrderHandler) UpdateOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.AdminUpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOrderPayload)
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), orderID, payload.ToUpdate())
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.UpdateOrderResponse{
		Message: "Pedido atualizado com sucesso!",
		Pedido:  response.FromOrder(o, true),
	})
}

// UploadCertificate godoc
// @Summary   Anexa a certidão (PDF) e conclui o pedido
// @Tags      admin
// @Accept    mpfd
// @Produce   json
// @Security  BearerAuth
// @Param     id               path      int   true  "ID do pedido"
// @Param     arquivoCertidao  formData  file  true  "Certidão em PDF"
// @Success   201  {object}  response.UploadCertificateResponse
// @Failure   400  {object}  pkg.HTTPError
// @Router    /admin/pedidos/{id}/upload [post]
func (h *AdminOrderHandler) UploadCertificate(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+(1<<20))
	fh, err := c.FormFile(request.FormFieldCertificate)
	if err != nil {
		writeUseCaseError(c, usecase.ErrNoFileUploaded)
		return
	}
	opened, err := openUploads([]*multipart.FileHeader{fh})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	defer opened.Close()

	res, err := h.usecase.UploadCertificate(c.Request.Context(), orderID, opened.uploads[0])
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.UploadCertificateResponse{
		Message:      "Arquivo enviado com sucesso e associado ao pedido.",
		Arquivo:      response.FromFile(res.File),
		PedidoStatus: string(res.OrderStatus),
	})
}

// Refund godoc
// @Summary   Estorna o pagamento aprovado e cancela o pedido
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "ID do pedido"
// @Success   200  {object}  response.MessageResponse
// @Failure   400  {object}  pkg.HTTPError
// @Failure   500  {object}  pkg.HTTPError
// @Router    /admin/pedidos/{id}/estornar [post]
func (h *AdminOrderHandler) Refund(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Refund(c.Request.Context(), orderID); err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Pedido estornado com sucesso!"})
}

// ListNotifications godoc
// @Summary   Histórico de notificações do gateway para o pedido
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Param     id   path     int  true  "ID do pedido"
// @Success   200  {array}  response.WebhookNotificationResponse
// @Router    /admin/pedidos/{id}/notificacoes [get]
func (h *AdminOrderHandler) ListNotifications(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := h.usecase.ListNotifications(c.Request.Context(), orderID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWebhookNotifications(list))
}
