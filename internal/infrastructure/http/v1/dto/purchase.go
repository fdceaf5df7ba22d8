package dto

import (
	"stocktake/internal/core/types"
	"stocktake/internal/domain/documents/purchase"
)

// --- Request DTOs ---

// CreatePurchaseOrderRequest represents a request to create a purchase order.
type CreatePurchaseOrderRequest struct {
	ReceivedDate string                     `json:"receivedDate" binding:"required,dateonly"`
	Distributor  string                     `json:"distributor" binding:"required"`
	Lines        []PurchaseOrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseOrderLineRequest represents a line in the create request.
type PurchaseOrderLineRequest struct {
	ProductID   int64   `json:"productId" binding:"required,gt=0"`
	Quantity    int64   `json:"quantity" binding:"required,gt=0"`
	CostPerUnit float64 `json:"costPerUnit" binding:"required,gt=0"`
}

// ToEntity converts request to domain entity. Duplicate product IDs are
// merged by AddLine, summing quantities.
func (r *CreatePurchaseOrderRequest) ToEntity() *purchase.PurchaseOrder {
	receivedDate, _ := types.ParseDate(r.ReceivedDate)
	o := purchase.NewPurchaseOrder(receivedDate, r.Distributor)
	for _, line := range r.Lines {
		o.AddLine(line.ProductID, "", line.Quantity, types.NewMoney(line.CostPerUnit))
	}
	return o
}

// SetPurchaseStatusRequest changes an order's lifecycle status.
type SetPurchaseStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Received Cancelled"`
}

// --- Response DTOs ---

// PurchaseOrderLineResponse is the API shape of one purchase line.
type PurchaseOrderLineResponse struct {
	ProductID   int64       `json:"productId"`
	Name        string      `json:"name"`
	Quantity    int64       `json:"quantity"`
	CostPerUnit types.Money `json:"costPerUnit"`
}

// PurchaseOrderResponse is the API shape of a purchase order. TotalCost
// carries full precision; TotalCostDisplay is rounded to 2 decimal places.
type PurchaseOrderResponse struct {
	ID               int64                       `json:"id"`
	ReceivedDate     types.Date                  `json:"receivedDate"`
	Distributor      string                      `json:"distributor"`
	TotalCost        types.Money                 `json:"totalCost"`
	TotalCostDisplay string                      `json:"totalCostDisplay"`
	Status           string                      `json:"status"`
	Lines            []PurchaseOrderLineResponse `json:"lines"`
}

// FromPurchaseOrder converts a domain order to its API shape.
func FromPurchaseOrder(o *purchase.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, PurchaseOrderLineResponse{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Quantity:    line.Quantity,
			CostPerUnit: line.CostPerUnit,
		})
	}
	return PurchaseOrderResponse{
		ID:               o.ID,
		ReceivedDate:     o.ReceivedDate,
		Distributor:      o.Distributor,
		TotalCost:        o.TotalCost,
		TotalCostDisplay: types.DisplayAmount(o.TotalCost),
		Status:           string(o.Status),
		Lines:            lines,
	}
}

// FromPurchaseOrders converts an order list.
func FromPurchaseOrders(items []*purchase.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromPurchaseOrder(o))
	}
	return out
}
