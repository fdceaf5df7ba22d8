// Package purchase provides the purchase order ledger (stock in).
package purchase

import (
	"context"

	"stocktake/internal/core/apperror"
	"stocktake/internal/core/types"
	"stocktake/internal/domain/posting"
)

// Status is the purchase order lifecycle state. Any status is reachable
// from any other; there is no enforced forward-only ordering.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusReceived  Status = "Received"
	StatusCancelled Status = "Cancelled"
)

// IsValid reports whether s is a known purchase status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReceived, StatusCancelled:
		return true
	}
	return false
}

// Line is one product position on a purchase order. Name is a snapshot
// taken at order time so the order stays readable after the product is
// edited or removed.
type Line struct {
	ProductID   int64       `json:"productId"`
	Name        string      `json:"name"`
	Quantity    int64       `json:"quantity"`
	CostPerUnit types.Money `json:"costPerUnit"`
}

// PurchaseOrder records incoming stock from a distributor.
// Lines and TotalCost are immutable after creation; TotalCost is computed
// once as Σ(quantity × costPerUnit) and never recomputed.
type PurchaseOrder struct {
	ID           int64       `json:"id"`
	ReceivedDate types.Date  `json:"receivedDate"`
	Distributor  string      `json:"distributor"`
	TotalCost    types.Money `json:"totalCost"`
	Status       Status      `json:"status"`
	Lines        []Line      `json:"lines"`
}

// NewPurchaseOrder creates an order in Pending status with no lines.
func NewPurchaseOrder(receivedDate types.Date, distributor string) *PurchaseOrder {
	return &PurchaseOrder{
		ReceivedDate: receivedDate,
		Distributor:  distributor,
		Status:       StatusPending,
		TotalCost:    types.ZeroMoney(),
		Lines:        make([]Line, 0),
	}
}

// AddLine accumulates a line, merging by product ID: a repeated product sums
// quantity onto the existing line and keeps its original unit cost. The
// total is recalculated at full precision.
func (o *PurchaseOrder) AddLine(productID int64, name string, quantity int64, costPerUnit types.Money) {
	for i := range o.Lines {
		if o.Lines[i].ProductID == productID {
			o.Lines[i].Quantity += quantity
			o.recalculateTotal()
			return
		}
	}
	o.Lines = append(o.Lines, Line{
		ProductID:   productID,
		Name:        name,
		Quantity:    quantity,
		CostPerUnit: costPerUnit,
	})
	o.recalculateTotal()
}

func (o *PurchaseOrder) recalculateTotal() {
	total := types.ZeroMoney()
	for _, line := range o.Lines {
		total = total.Add(types.LineTotal(line.Quantity, line.CostPerUnit))
	}
	o.TotalCost = total
}

// Validate implements creation-time validation.
func (o *PurchaseOrder) Validate(ctx context.Context) error {
	if o.Distributor == "" {
		return apperror.NewInvalidHeader("distributor")
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
		if !line.CostPerUnit.IsPositive() {
			return apperror.NewValidation("cost per unit must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}
	return nil
}

// --- posting.Recordable ---

func (o *PurchaseOrder) GetDocumentType() string { return "PurchaseOrder" }

// GenerateMovements yields one positive stock delta per line.
func (o *PurchaseOrder) GenerateMovements() []posting.Movement {
	movements := make([]posting.Movement, 0, len(o.Lines))
	for _, line := range o.Lines {
		movements = append(movements, posting.Movement{
			ProductID: line.ProductID,
			Delta:     line.Quantity,
		})
	}
	return movements
}

var _ posting.Recordable = (*PurchaseOrder)(nil)
