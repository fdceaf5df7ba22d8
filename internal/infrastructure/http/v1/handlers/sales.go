package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/documents/sales"
	"stocktake/internal/infrastructure/http/v1/dto"
)

// SalesOrderHandler serves the sales order ledger endpoints.
type SalesOrderHandler struct {
	service *sales.Service
}

// NewSalesOrderHandler creates a sales order handler.
func NewSalesOrderHandler(service *sales.Service) *SalesOrderHandler {
	return &SalesOrderHandler{service: service}
}

// Register mounts the sales order routes on the group.
func (h *SalesOrderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/sales-orders", h.List)
	rg.POST("/sales-orders", h.Create)
	rg.GET("/sales-orders/:id", h.Get)
	rg.PUT("/sales-orders/:id/status", h.SetStatus)
}

// List returns all sales orders.
func (h *SalesOrderHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSalesOrders(items))
}

// Get returns one sales order.
func (h *SalesOrderHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSalesOrder(o))
}

// Create records a sales order after the all-or-nothing stock check.
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	o, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromSalesOrder(o))
}

// SetStatus changes the order's lifecycle status. Inventory is untouched,
// including on cancellation.
func (h *SalesOrderHandler) SetStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.SetSalesStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	o, err := h.service.SetStatus(c.Request.Context(), id, sales.Status(req.Status))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSalesOrder(o))
}
