// Package sales provides the sales order ledger (stock out).
package sales

import (
	"context"

	"stocktake/internal/core/apperror"
	"stocktake/internal/core/types"
	"stocktake/internal/domain/posting"
)

// Status is the sales order lifecycle state. Any status is reachable from
// any other; there is no enforced forward-only ordering.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// IsValid reports whether s is a known sales status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Line is one product position on a sales order. Name is a snapshot taken
// at order time so the order stays readable after the product is edited or
// removed.
type Line struct {
	ProductID    int64       `json:"productId"`
	Name         string      `json:"name"`
	Quantity     int64       `json:"quantity"`
	PricePerUnit types.Money `json:"pricePerUnit"`
}

// SalesOrder records outgoing stock to a customer.
// Lines and TotalAmount are immutable after creation; TotalAmount is
// computed once as Σ(quantity × pricePerUnit) and never recomputed.
type SalesOrder struct {
	ID          int64       `json:"id"`
	OrderDate   types.Date  `json:"orderDate"`
	Customer    string      `json:"customer"`
	TotalAmount types.Money `json:"totalAmount"`
	Status      Status      `json:"status"`
	Lines       []Line      `json:"lines"`
}

// NewSalesOrder creates an order in Pending status with no lines.
func NewSalesOrder(orderDate types.Date, customer string) *SalesOrder {
	return &SalesOrder{
		OrderDate:   orderDate,
		Customer:    customer,
		Status:      StatusPending,
		TotalAmount: types.ZeroMoney(),
		Lines:       make([]Line, 0),
	}
}

// AddLine accumulates a line, merging by product ID: a repeated product sums
// quantity onto the existing line and keeps its original unit price. The
// total is recalculated at full precision.
func (o *SalesOrder) AddLine(productID int64, name string, quantity int64, pricePerUnit types.Money) {
	for i := range o.Lines {
		if o.Lines[i].ProductID == productID {
			o.Lines[i].Quantity += quantity
			o.recalculateTotal()
			return
		}
	}
	o.Lines = append(o.Lines, Line{
		ProductID:    productID,
		Name:         name,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
	})
	o.recalculateTotal()
}

func (o *SalesOrder) recalculateTotal() {
	total := types.ZeroMoney()
	for _, line := range o.Lines {
		total = total.Add(types.LineTotal(line.Quantity, line.PricePerUnit))
	}
	o.TotalAmount = total
}

// Validate implements creation-time validation.
func (o *SalesOrder) Validate(ctx context.Context) error {
	if o.Customer == "" {
		return apperror.NewInvalidHeader("customer")
	}
	if len(o.Lines) == 0 {
		return apperror.NewEmptyLines()
	}
	for i, line := range o.Lines {
		if line.ProductID <= 0 {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.PricePerUnit.IsPositive() {
			return apperror.NewValidation("price per unit must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// --- posting.Recordable ---

func (o *SalesOrder) GetDocumentType() string { return "SalesOrder" }

// GenerateMovements yields one negative stock delta per line.
func (o *SalesOrder) GenerateMovements() []posting.Movement {
	movements := make([]posting.Movement, 0, len(o.Lines))
	for _, line := range o.Lines {
		movements = append(movements, posting.Movement{
			ProductID: line.ProductID,
			Delta:     -line.Quantity,
		})
	}
	return movements
}

var _ posting.Recordable = (*SalesOrder)(nil)
