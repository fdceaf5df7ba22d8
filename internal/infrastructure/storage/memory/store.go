// Package memory provides the in-memory storage backing the product catalog
// and both order ledgers. One Store owns all three tables behind a single
// lock, so there is exactly one logical writer at a time and a read
// immediately following a write always observes it.
package memory

import (
	"sync"

	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/documents/purchase"
	"stocktake/internal/domain/documents/sales"
)

// Store is the process-owned mutable state.
type Store struct {
	mu sync.RWMutex

	products     map[int64]*product.Product
	productOrder []int64

	purchases      []*purchase.PurchaseOrder
	nextPurchaseID int64

	sales       []*sales.SalesOrder
	nextSalesID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		products:       make(map[int64]*product.Product),
		productOrder:   make([]int64, 0),
		purchases:      make([]*purchase.PurchaseOrder, 0),
		nextPurchaseID: 1,
		sales:          make([]*sales.SalesOrder, 0),
		nextSalesID:    1,
	}
}

// Products returns the product repository view of the store.
func (s *Store) Products() product.Repository {
	return &productRepo{store: s}
}

// PurchaseOrders returns the purchase ledger view of the store.
func (s *Store) PurchaseOrders() purchase.Repository {
	return &purchaseLedger{store: s}
}

// SalesOrders returns the sales ledger view of the store.
func (s *Store) SalesOrders() sales.Repository {
	return &salesLedger{store: s}
}

// nextProductID assigns product identities the way the product form does:
// max over live products, plus one. Caller must hold the write lock.
func (s *Store) nextProductID() int64 {
	var max int64
	for id := range s.products {
		if id > max {
			max = id
		}
	}
	return max + 1
}
