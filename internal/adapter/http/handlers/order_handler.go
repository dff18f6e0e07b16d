package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecertidoes/internal/adapter/http/dto/request"
	"ecertidoes/internal/adapter/http/dto/response"
	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/usecase"
)

// OrderHandler serves the customer order routes.
type OrderHandler struct {
	usecase        usecase.IOrderUseCase
	maxUploadBytes int64
	log            *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, maxUploadBytes int64, log *zap.Logger) *OrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = usecase.MaxUploadBytes
	}
	return &OrderHandler{usecase: uc, maxUploadBytes: maxUploadBytes, log: log.Named("order.handler")}
}

// CreateOrder godoc
// @Summary      Cria um pedido
// @Description  Aceita JSON ou multipart (campos itens e dadosCliente em JSON, arquivos em anexosCliente).
// @Tags         pedidos
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  response.CreateOrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /pedidos [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	log := h.log.With(zap.Uint64("user_id", userID))

	var (
		payload request.CreateOrderRequest
		uploads []usecase.FileUpload
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes*usecase.MaxCustomerUploads+(1<<20))
		form, err := c.MultipartForm()
		if err != nil {
			log.Warn("create order invalid multipart", zap.Error(err))
			writeError(c, errInvalidOrderPayload)
			return
		}
		payload, err = request.ParseMultipartOrder(form)
		if err != nil {
			log.Warn("create order invalid payload", zap.Error(err))
			writeError(c, errInvalidOrderPayload)
			return
		}
		opened, err := openUploads(form.File[request.FormFieldAttachments])
		if err != nil {
			writeUseCaseError(c, err)
			return
		}
		defer opened.Close()
		uploads = opened.uploads
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn("create order invalid payload", zap.Error(err))
		writeError(c, errInvalidOrderPayload)
		return
	}

	o, err := h.usecase.PlaceOrder(c.Request.Context(), userID, payload.ToInput(uploads))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CreateOrderResponse{
		Message: "Pedido criado com sucesso!",
		Pedido:  response.FromOrderSummary(o),
	})
}

// ListMyOrders godoc
// @Summary   Lista os pedidos do usuário autenticado
// @Tags      pedidos
// @Produce   json
// @Security  BearerAuth
// @Success   200  {array}  response.OrderResponse
// @Router    /pedidos/meus-pedidos [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.usecase.ListMine(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetMyOrder godoc
// @Summary   Detalhes de um pedido do usuário autenticado
// @Tags      pedidos
// @Produce   json
// @Security  BearerAuth
// @Param     id   path      int  true  "ID do pedido"
// @Success   200  {object}  response.OrderResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /pedidos/{id} [get]
func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	o, err := h.usecase.GetMine(c.Request.Context(), middleware.UserIDFromContext(c), orderID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, false))
}

// DownloadFile godoc
// @Summary   Download de um arquivo do pedido
// @Tags      pedidos
// @Produce   octet-stream
// @Security  BearerAuth
// @Param     id         path  int  true  "ID do pedido"
// @Param     arquivoId  path  int  true  "ID do arquivo"
// @Success   200
// @Failure   404  {object}  pkg.HTTPError
// @Router    /pedidos/{id}/arquivos/{arquivoId}/download [get]
func (h *OrderHandler) DownloadFile(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fileID, ok := parseIDParam(c, "arquivoId")
	if !ok {
		return
	}

	f, body, err := h.usecase.OpenFile(c.Request.Context(), middleware.UserIDFromContext(c), orderID, fileID)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.OriginalName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.OriginalName}))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		h.log.Warn("download interrupted", zap.Uint64("order_id", orderID), zap.Uint64("file_id", fileID), zap.Error(err))
	}
}
