package product

import (
	"stocktake/internal/core/types"
)

// Status is the derived display classification of a product.
// It is never stored, always computed against "today".
type Status string

const (
	StatusOutOfStock Status = "outOfStock"
	StatusExpired    Status = "expired"
	StatusGood       Status = "good"
)

// Classify derives a product's status from its quantity and expiry date.
// Evaluated in priority order, first match wins:
//  1. quantity ≤ 0 → outOfStock
//  2. expiry ≤ today (date-only comparison) → expired
//  3. otherwise → good
//
// Out-of-stock takes precedence over expiry: a product with zero quantity
// and a past expiry date is reported outOfStock, not expired.
func Classify(p *Product, today types.Date) Status {
	if p.Quantity <= 0 {
		return StatusOutOfStock
	}
	if !p.Expiry.After(today) {
		return StatusExpired
	}
	return StatusGood
}
