package routes

import (
	"github.com/gin-gonic/gin"

	"ecertidoes/internal/adapter/http/handlers"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func addLookupRoutes(rg *gin.RouterGroup, h *handlers.LookupHandler) {
	cartorios := rg.Group("/cartorios")
	{
		cartorios.GET("", h.ListCartorios)
		cartorios.GET("/estados", h.ListEstados)
		cartorios.GET("/estados/:estado/cidades", h.ListCidades)
	}
	rg.POST("/frete/calcular", h.QuoteShipping)
}
