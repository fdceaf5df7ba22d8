package product

import (
	"context"
)

// Repository is the storage contract for the product catalog.
// The live table is the single authoritative source of on-hand quantities;
// every mutation is visible immediately and synchronously to all readers.
type Repository interface {
	// List returns all live products in insertion order.
	List(ctx context.Context) ([]*Product, error)

	// Get returns the product by ID or a NotFound error.
	Get(ctx context.Context, id int64) (*Product, error)

	// FindByCode returns the live product with the given code, or nil.
	FindByCode(ctx context.Context, code string) (*Product, error)

	// Create inserts the product and assigns its ID.
	Create(ctx context.Context, p *Product) error

	// Update replaces the stored product identified by p.ID.
	Update(ctx context.Context, p *Product) error

	// Delete removes the product by ID or returns a NotFound error.
	Delete(ctx context.Context, id int64) error
}
