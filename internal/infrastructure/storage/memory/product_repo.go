package memory

import (
	"context"

	"stocktake/internal/core/apperror"
	"stocktake/internal/domain/catalogs/product"
)

// productRepo implements product.Repository over the shared store.
// Values are copied on the way in and out, so callers never alias table rows.
type productRepo struct {
	store *Store
}

func (r *productRepo) List(ctx context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*product.Product, 0, len(r.store.productOrder))
	for _, id := range r.store.productOrder {
		if p, ok := r.store.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *productRepo) Get(ctx context.Context, id int64) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, apperror.NewNotFound("product", id)
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Create(ctx context.Context, p *product.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p.ID = r.store.nextProductID()
	cp := *p
	r.store.products[p.ID] = &cp
	r.store.productOrder = append(r.store.productOrder, p.ID)
	return nil
}

func (r *productRepo) Update(ctx context.Context, p *product.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[p.ID]; !ok {
		return apperror.NewNotFound("product", p.ID)
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return apperror.NewNotFound("product", id)
	}
	delete(r.store.products, id)
	for i, pid := range r.store.productOrder {
		if pid == id {
			r.store.productOrder = append(r.store.productOrder[:i], r.store.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

var _ product.Repository = (*productRepo)(nil)
