package dto

import (
	"stocktake/internal/core/types"
	"stocktake/internal/domain/documents/sales"
)

// --- Request DTOs ---

// CreateSalesOrderRequest represents a request to create a sales order.
type CreateSalesOrderRequest struct {
	OrderDate string                  `json:"orderDate" binding:"required,dateonly"`
	Customer  string                  `json:"customer" binding:"required"`
	Lines     []SalesOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SalesOrderLineRequest represents a line in the create request.
type SalesOrderLineRequest struct {
	ProductID    int64   `json:"productId" binding:"required,gt=0"`
	Quantity     int64   `json:"quantity" binding:"required,gt=0"`
	PricePerUnit float64 `json:"pricePerUnit" binding:"required,gt=0"`
}

// ToEntity converts request to domain entity. Duplicate product IDs are
// merged by AddLine, summing quantities.
func (r *CreateSalesOrderRequest) ToEntity() *sales.SalesOrder {
	orderDate, _ := types.ParseDate(r.OrderDate)
	o := sales.NewSalesOrder(orderDate, r.Customer)
	for _, line := range r.Lines {
		o.AddLine(line.ProductID, "", line.Quantity, types.NewMoney(line.PricePerUnit))
	}
	return o
}

// SetSalesStatusRequest changes an order's lifecycle status.
type SetSalesStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Completed Cancelled"`
}

// --- Response DTOs ---

// SalesOrderLineResponse is the API shape of one sales line.
type SalesOrderLineResponse struct {
	ProductID    int64       `json:"productId"`
	Name         string      `json:"name"`
	Quantity     int64       `json:"quantity"`
	PricePerUnit types.Money `json:"pricePerUnit"`
}

// SalesOrderResponse is the API shape of a sales order. TotalAmount carries
// full precision; TotalAmountDisplay is rounded to 2 decimal places.
type SalesOrderResponse struct {
	ID                 int64                    `json:"id"`
	OrderDate          types.Date               `json:"orderDate"`
	Customer           string                   `json:"customer"`
	TotalAmount        types.Money              `json:"totalAmount"`
	TotalAmountDisplay string                   `json:"totalAmountDisplay"`
	Status             string                   `json:"status"`
	Lines              []SalesOrderLineResponse `json:"lines"`
}

// FromSalesOrder converts a domain order to its API shape.
func FromSalesOrder(o *sales.SalesOrder) SalesOrderResponse {
	lines := make([]SalesOrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, SalesOrderLineResponse{
			ProductID:    line.ProductID,
			Name:         line.Name,
			Quantity:     line.Quantity,
			PricePerUnit: line.PricePerUnit,
		})
	}
	return SalesOrderResponse{
		ID:                 o.ID,
		OrderDate:          o.OrderDate,
		Customer:           o.Customer,
		TotalAmount:        o.TotalAmount,
		TotalAmountDisplay: types.DisplayAmount(o.TotalAmount),
		Status:             string(o.Status),
		Lines:              lines,
	}
}

// FromSalesOrders converts an order list.
func FromSalesOrders(items []*sales.SalesOrder) []SalesOrderResponse {
	out := make([]SalesOrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromSalesOrder(o))
	}
	return out
}
