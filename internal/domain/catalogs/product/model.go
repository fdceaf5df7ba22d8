// Package product provides the product catalog: the authoritative record of
// every tracked inventory item and its on-hand quantity.
package product

import (
	"context"
	"strings"

	"stocktake/internal/core/apperror"
	"stocktake/internal/core/types"
)

// Product represents a tracked inventory item.
// Quantity is mutated only by the posting engine or the explicit adjust
// operation; it is never observably negative.
type Product struct {
	ID       int64       `json:"id"`
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int64       `json:"quantity"`
	Expiry   types.Date  `json:"expiry"`
}

// NewProduct creates a product with required fields.
func NewProduct(code, name string, price types.Money, quantity int64, expiry types.Date) *Product {
	return &Product{
		Code:     strings.TrimSpace(code),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Quantity: quantity,
		Expiry:   expiry,
	}
}

// Validate checks field-level constraints.
func (p *Product) Validate(ctx context.Context) error {
	if p.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if p.Quantity < 0 {
		return apperror.NewValidation("quantity cannot be negative").
			WithDetail("field", "quantity")
	}
	if p.Expiry.IsZero() {
		return apperror.NewValidation("expiry date is required").
			WithDetail("field", "expiry")
	}
	return nil
}

// Patch describes a partial product update. Nil fields are left unchanged.
// ID is never patchable.
type Patch struct {
	Code     *string
	Name     *string
	Price    *types.Money
	Quantity *int64
	Expiry   *types.Date
}

// Apply copies the set fields onto the product.
func (p *Patch) Apply(target *Product) {
	if p.Code != nil {
		target.Code = strings.TrimSpace(*p.Code)
	}
	if p.Name != nil {
		target.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		target.Price = *p.Price
	}
	if p.Quantity != nil {
		target.Quantity = *p.Quantity
	}
	if p.Expiry != nil {
		target.Expiry = *p.Expiry
	}
}
