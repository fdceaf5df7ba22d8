package dto

import (
	"stocktake/internal/core/types"
	"stocktake/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest represents a request to add a product.
type CreateProductRequest struct {
	Code     string  `json:"code" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int64   `json:"quantity" binding:"gte=0"`
	Expiry   string  `json:"expiry" binding:"required,dateonly"`
}

// ToEntity converts request to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	expiry, _ := types.ParseDate(r.Expiry)
	return product.NewProduct(r.Code, r.Name, types.NewMoney(r.Price), r.Quantity, expiry)
}

// UpdateProductRequest represents a partial product update. Quantity set
// here overwrites the on-hand count wholesale; relative stock moves go
// through orders or the adjust operation.
type UpdateProductRequest struct {
	Code     *string  `json:"code,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Quantity *int64   `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Expiry   *string  `json:"expiry,omitempty" binding:"omitempty,dateonly"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateProductRequest) ToPatch() product.Patch {
	patch := product.Patch{
		Code:     r.Code,
		Name:     r.Name,
		Quantity: r.Quantity,
	}
	if r.Price != nil {
		price := types.NewMoney(*r.Price)
		patch.Price = &price
	}
	if r.Expiry != nil {
		expiry, _ := types.ParseDate(*r.Expiry)
		patch.Expiry = &expiry
	}
	return patch
}

// AdjustQuantityRequest steps the on-hand quantity by a signed delta.
// No binding rule on Delta: "required" would reject a literal 0, which
// needs its own error message instead.
type AdjustQuantityRequest struct {
	Delta int64 `json:"delta"`
}

// --- Response DTOs ---

// ProductResponse is the API shape of a product, including the derived
// status (computed per request, never stored).
type ProductResponse struct {
	ID       int64       `json:"id"`
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Price    types.Money `json:"price"`
	Quantity int64       `json:"quantity"`
	Expiry   types.Date  `json:"expiry"`
	Status   string      `json:"status"`
}

// FromProduct converts a domain product to its API shape.
func FromProduct(p *product.Product, today types.Date) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Expiry:   p.Expiry,
		Status:   string(product.Classify(p, today)),
	}
}

// FromProducts converts a product list.
func FromProducts(items []*product.Product, today types.Date) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p, today))
	}
	return out
}
