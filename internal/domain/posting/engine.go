// Package posting provides the reconciliation engine: it applies a newly
// created order's line items as signed deltas to the product catalog.
package posting

import (
	"context"
	"fmt"
	"sync"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/pkg/logger"
)

// Movement is one signed stock delta produced by a document.
type Movement struct {
	ProductID int64
	Delta     int64
}

// Recordable is a document that yields stock movements when posted.
type Recordable interface {
	GetDocumentType() string
	GenerateMovements() []Movement
}

// Engine keeps product quantities consistent with order creation events.
// Posting runs exactly once per document, at creation time; order status
// changes never touch inventory.
type Engine struct {
	mu       sync.Mutex
	products product.Repository
}

// NewEngine creates a reconciliation engine over the product catalog.
func NewEngine(products product.Repository) *Engine {
	return &Engine{products: products}
}

// Post validates and applies the document's movements.
//
// Negative movements (sales) are checked against current stock first; if any
// line exceeds availability the whole document is rejected with every
// shortage reported, before any mutation occurs. The engine mutex makes
// check-plus-apply atomic, so a rejected document never leaves a partial
// write behind.
func (e *Engine) Post(ctx context.Context, doc Recordable) error {
	movements := doc.GenerateMovements()
	if len(movements) == 0 {
		return apperror.NewEmptyLines()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var shortages []apperror.StockShortage
	for _, m := range movements {
		if m.Delta >= 0 {
			continue
		}
		p, err := e.products.Get(ctx, m.ProductID)
		if err != nil {
			return err
		}
		requested := -m.Delta
		if requested > p.Quantity {
			shortages = append(shortages, apperror.StockShortage{
				ProductID: m.ProductID,
				Available: p.Quantity,
				Requested: requested,
			})
		}
	}
	if len(shortages) > 0 {
		return apperror.NewInsufficientStock(shortages)
	}

	for _, m := range movements {
		p, err := e.products.Get(ctx, m.ProductID)
		if err != nil {
			return err
		}
		next := p.Quantity + m.Delta
		if next < 0 {
			// Unreachable after the availability check; clamp keeps the
			// non-negativity invariant regardless.
			next = 0
		}
		p.Quantity = next
		if err := e.products.Update(ctx, p); err != nil {
			return fmt.Errorf("apply movement: %w", err)
		}
	}

	logger.Info(ctx, "posted stock movements",
		"document_type", doc.GetDocumentType(),
		"count", len(movements),
	)

	return nil
}
