package memory

import (
	"context"

	"stocktake/internal/core/types"
	"stocktake/internal/domain/catalogs/product"
)

// SeedDemo loads the demo product rows into an empty store.
func SeedDemo(ctx context.Context, store *Store) error {
	repo := store.Products()
	demo := []*product.Product{
		product.NewProduct("APL001", "Apples", types.MustMoney("1.5"), 10, types.MustDate("2024-12-31")),
		product.NewProduct("ORG001", "Oranges", types.MustMoney("2.0"), 5, types.MustDate("2024-11-15")),
	}
	for _, p := range demo {
		if err := repo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
