package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "ecertidoes/docs"
	"ecertidoes/internal/adapter/http/handlers"
	"ecertidoes/internal/adapter/http/middleware"
	"ecertidoes/internal/infrastructure/metrics"
	"ecertidoes/internal/usecase/interfaces"
)

const (
	PathAPI = "/api"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Orders      *handlers.OrderHandler
	Payments    *handlers.PaymentHandler
	AdminOrders *handlers.AdminOrderHandler
	Auth        *handlers.AuthHandler
	Lookup      *handlers.LookupHandler
}

type Options struct {
	Tokens   interfaces.ITokenManager
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Registry)))
	}

	protect := middleware.Protect(opts.Tokens, opts.Logger)

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addAuthRoutes(api, h.Auth)
	addLookupRoutes(api, h.Lookup)
	addOrderRoutes(api, protect, h.Orders)
	addPaymentRoutes(api, protect, h.Payments)
	addAdminRoutes(api, protect, h.AdminOrders)

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.Recoverer(opts.Logger))
	router.Use(middleware.RequestLogger(opts.Logger))
	if opts.Registry != nil {
		router.Use(metrics.NewHTTPMetrics(opts.Registry).Middleware())
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
