package sales

import (
	"context"
)

// Repository is the append-style ledger of sales orders.
// Identities are assigned as max existing ID + 1 (1 for an empty ledger)
// and are never reused within a process lifetime.
type Repository interface {
	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*SalesOrder, error)

	// Get returns the order by ID or a NotFound error.
	Get(ctx context.Context, id int64) (*SalesOrder, error)

	// Create appends the order and assigns its ID.
	Create(ctx context.Context, o *SalesOrder) error

	// UpdateStatus sets the lifecycle status of an existing order.
	UpdateStatus(ctx context.Context, id int64, status Status) (*SalesOrder, error)
}
