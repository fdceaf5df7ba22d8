package memory

import (
	"context"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/documents/purchase"
)

// purchaseLedger implements purchase.Repository over the shared store.
type purchaseLedger struct {
	store *Store
}

func copyPurchase(o *purchase.PurchaseOrder) *purchase.PurchaseOrder {
	cp := *o
	cp.Lines = make([]purchase.Line, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

func (l *purchaseLedger) List(ctx context.Context) ([]*purchase.PurchaseOrder, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	out := make([]*purchase.PurchaseOrder, 0, len(l.store.purchases))
	for _, o := range l.store.purchases {
		out = append(out, copyPurchase(o))
	}
	return out, nil
}

func (l *purchaseLedger) Get(ctx context.Context, id int64) (*purchase.PurchaseOrder, error) {
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()

	for _, o := range l.store.purchases {
		if o.ID == id {
			return copyPurchase(o), nil
		}
	}
	return nil, apperror.NewNotFound("purchase order", id)
}

func (l *purchaseLedger) Create(ctx context.Context, o *purchase.PurchaseOrder) error {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	// Monotonic counter seeded at max existing ID + 1; identities are never
	// reused within the process lifetime.
	o.ID = l.store.nextPurchaseID
	l.store.nextPurchaseID++
	l.store.purchases = append(l.store.purchases, copyPurchase(o))
	return nil
}

func (l *purchaseLedger) UpdateStatus(ctx context.Context, id int64, status purchase.Status) (*purchase.PurchaseOrder, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()

	for _, o := range l.store.purchases {
		if o.ID == id {
			o.Status = status
			return copyPurchase(o), nil
		}
	}
	return nil, apperror.NewNotFound("purchase order", id)
}

var _ purchase.Repository = (*purchaseLedger)(nil)
