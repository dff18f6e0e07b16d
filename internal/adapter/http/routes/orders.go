package routes

import (
	"github.com/gin-gonic/gin"

	"ecertidoes/internal/adapter/http/handlers"
	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/domain/entities"
)

const (
	PathOrders   = "/pedidos"
	PathPayments = "/pagamentos"
	PathAdmin    = "/admin/pedidos"
)

func addOrderRoutes(rg *gin.RouterGroup, protect gin.HandlerFunc, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders, protect)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/meus-pedidos", h.ListMyOrders)
		orders.GET("/:id", h.GetMyOrder)
		orders.GET("/:id/arquivos/:arquivoId/download", h.DownloadFile)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, protect gin.HandlerFunc, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/criar-checkout", protect, h.CreateCheckout)
		// Called by Mercado Pago, never authenticated.
		payments.POST("/webhook", h.Webhook)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, protect gin.HandlerFunc, h *handlers.AdminOrderHandler) {
	admin := rg.Group(PathAdmin, protect, middleware.Authorize(entities.UserRoleAdmin))
	{
		admin.GET("/:id", h.GetOrder)
		admin.PUT("/:id", h.UpdateOrder)
		admin.POST("/:id/upload", h.UploadCertificate)
		admin.POST("/:id/estornar", h.Refund)
		admin.GET("/:id/notificacoes", h.ListNotifications)
	}
}
