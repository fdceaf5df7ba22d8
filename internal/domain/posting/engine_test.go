package posting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktake/internal/core/apperror"
	"stocktake/internal/core/types"
	"stocktake/internal/domain/catalogs/product"
	"stocktake/internal/domain/posting"
	"stocktake/internal/infrastructure/storage/memory"
)

type stubDoc struct {
	movements []posting.Movement
}

func (d *stubDoc) GetDocumentType() string               { return "stub" }
func (d *stubDoc) GenerateMovements() []posting.Movement { return d.movements }

func seedProducts(t *testing.T, repo product.Repository, quantities ...int64) []int64 {
	t.Helper()
	ctx := context.Background()
	ids := make([]int64, 0, len(quantities))
	for i, q := range quantities {
		p := product.NewProduct(
			string(rune('A'+i)),
			"Item",
			types.MustMoney("1"),
			q,
			types.MustDate("2030-01-01"),
		)
		require.NoError(t, repo.Create(ctx, p))
		ids = append(ids, p.ID)
	}
	return ids
}

func quantity(t *testing.T, repo product.Repository, id int64) int64 {
	t.Helper()
	p, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	return p.Quantity
}

func TestPostReceiptIncreasesStock(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)
	ids := seedProducts(t, repo, 10)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: ids[0], Delta: 5},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(15), quantity(t, repo, ids[0]))
}

func TestPostIssueDecreasesStock(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)
	ids := seedProducts(t, repo, 10)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: ids[0], Delta: -4},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(6), quantity(t, repo, ids[0]))
}

func TestPostIssueExactlyAvailable(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)
	ids := seedProducts(t, repo, 6)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: ids[0], Delta: -6},
	}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), quantity(t, repo, ids[0]))
}

func TestPostRejectsShortage(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)
	ids := seedProducts(t, repo, 6)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: ids[0], Delta: -7},
	}})
	require.Error(t, err)
	require.True(t, apperror.IsInsufficientStock(err))

	appErr, _ := apperror.AsAppError(err)
	shortages := appErr.Details["shortages"].([]apperror.StockShortage)
	require.Len(t, shortages, 1)
	assert.Equal(t, ids[0], shortages[0].ProductID)
	assert.Equal(t, int64(6), shortages[0].Available)
	assert.Equal(t, int64(7), shortages[0].Requested)

	assert.Equal(t, int64(6), quantity(t, repo, ids[0]), "stock is untouched on rejection")
}

func TestPostShortageRejectsWholeDocument(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)
	ids := seedProducts(t, repo, 10, 2, 3)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: ids[0], Delta: -5}, // would succeed alone
		{ProductID: ids[1], Delta: -4}, // short by 2
		{ProductID: ids[2], Delta: -9}, // short by 6
	}})
	require.Error(t, err)
	require.True(t, apperror.IsInsufficientStock(err))

	appErr, _ := apperror.AsAppError(err)
	shortages := appErr.Details["shortages"].([]apperror.StockShortage)
	require.Len(t, shortages, 2, "every failing line is reported")

	// Nothing was applied, including the line that had enough stock.
	assert.Equal(t, int64(10), quantity(t, repo, ids[0]))
	assert.Equal(t, int64(2), quantity(t, repo, ids[1]))
	assert.Equal(t, int64(3), quantity(t, repo, ids[2]))
}

func TestPostEmptyDocument(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)

	err := engine.Post(context.Background(), &stubDoc{})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEmptyLines, appErr.Code)
}

func TestPostUnknownProduct(t *testing.T) {
	repo := memory.NewStore().Products()
	engine := posting.NewEngine(repo)

	err := engine.Post(context.Background(), &stubDoc{movements: []posting.Movement{
		{ProductID: 99, Delta: -1},
	}})
	assert.True(t, apperror.IsNotFound(err))
}
