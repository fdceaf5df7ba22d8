// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stocktake/internal/domain/auth"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/documents/purchase"
	"stocktake/internal/domain/documents/sales"
	"stocktake/internal/domain/notify"
	"stocktake/internal/infrastructure/http/v1/dto"
	"stocktake/internal/infrastructure/http/v1/handlers"
	"stocktake/internal/infrastructure/http/v1/middleware"
	"stocktake/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Logger *logger.Logger

	AuthService     *auth.Service
	ProductService  *product.Service
	PurchaseService *purchase.Service
	SalesService    *sales.Service
	Relay           *notify.Relay
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	dto.RegisterValidations()

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler()
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		handlers.NewAuthHandler(cfg.AuthService).Register(apiV1)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService.Validator()))

		handlers.NewProductHandler(cfg.ProductService).Register(protected)
		handlers.NewPurchaseOrderHandler(cfg.PurchaseService).Register(protected)
		handlers.NewSalesOrderHandler(cfg.SalesService).Register(protected)
		handlers.NewNotificationHandler(cfg.Relay).Register(protected)
	}

	return router
}
