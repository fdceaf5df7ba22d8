package memory

import (
	"context"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/documents/sales"
)

// salesLedger implements sales.Repository over the shared store.
type salesLedger struct {
	store *Store
}

func copySales(o *sales.SalesOrder) *sales.SalesOrder {
	cp := *o
	cp.Lines = make([]sales.Line, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

func (l *salesLedger) List(ctx context.Context) ([]*sales.SalesOrder, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	out := make([]*sales.SalesOrder, 0, len(l.store.sales))
	for _, o := range l.store.sales {
		out = append(out, copySales(o))
	}
	return out, nil
}

func (l *salesLedger) Get(ctx context.Context, id int64) (*sales.SalesOrder, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	for _, o := range l.store.sales {
		if o.ID == id {
			return copySales(o), nil
		}
	}
	return nil, apperror.NewNotFound("sales order", id)
}

func (l *salesLedger) Create(ctx context.Context, o *sales.SalesOrder) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	// Monotonic counter seeded at max existing ID + 1; identities are never
	// reused within the process lifetime.
	o.ID = l.store.nextSalesID
	l.store.nextSalesID++
	l.store.sales = append(l.store.sales, copySales(o))
	return nil
}

func (l *salesLedger) UpdateStatus(ctx context.Context, id int64, status sales.Status) (*sales.SalesOrder, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	for _, o := range l.store.sales {
		if o.ID == id {
			o.Status = status
			return copySales(o), nil
		}
	}
	return nil, apperror.NewNotFound("sales order", id)
}

var _ sales.Repository = (*salesLedger)(nil)
