package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/documents/purchase"
	"stocktake/internal/infrastructure/http/v1/dto"
)

// PurchaseOrderHandler serves the purchase order ledger endpoints.
type PurchaseOrderHandler struct {
	service *purchase.Service
}

// NewPurchaseOrderHandler creates a purchase order handler.
func NewPurchaseOrderHandler(service *purchase.Service) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

// Register mounts the purchase order routes on the group.
func (h *PurchaseOrderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/purchase-orders", h.List)
	rg.POST("/purchase-orders", h.Create)
	rg.GET("/purchase-orders/:id", h.Get)
	rg.PUT("/purchase-orders/:id/status", h.SetStatus)
}

// List returns all purchase orders.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPurchaseOrders(items))
}

// Get returns one purchase order.
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.FromPurchaseOrder(o))
}

// Create records a purchase order and posts its stock movements.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	o, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromPurchaseOrder(o))
}

// SetStatus changes the order's lifecycle status. Inventory is untouched.
func (h *PurchaseOrderHandler) SetStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var req dto.SetPurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.NewValidation(err.Error()))
		return
	}
	o, err := h.service.SetStatus(c.Request.Context(), id, purchase.Status(req.Status))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPurchaseOrder(o))
}
