package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kitchcrafter/storefront/internal/domain/cart"
	"github.com/kitchcrafter/storefront/internal/domain/shared/valueobject"
)

func setupTestRepo(t *testing.T) *CartSnapshotRepository {
	t.Helper()
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCartSnapshotRepository(db, "kitchcrafter.cart", zap.NewNop())
}

func testItems() []cart.LineItem {
	return []cart.LineItem{
		{ID: "press-maiz", Name: "Press&Maiz", UnitPrice: valueobject.NewMoneyFromFloat(50), Quantity: 2},
		{ID: "combo-tamal", Name: "Combo Tamal", UnitPrice: valueobject.NewMoneyFromFloat(75.50), Quantity: 1},
	}
}

func TestCartSnapshotRepository_RoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testItems()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testItems(), loaded)
}

func TestCartSnapshotRepository_SaveOverwrites(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testItems()))
	require.NoError(t, repo.Save(ctx, testItems()[:1]))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "press-maiz", loaded[0].ID)
}

func TestCartSnapshotRepository_SaveEmpty(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testItems()))
	require.NoError(t, repo.Save(ctx, nil))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCartSnapshotRepository_LoadMissing(t *testing.T) {
	repo := setupTestRepo(t)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCartSnapshotRepository_LoadCorrupt(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// simulate a hand-edited or future-schema payload
	err := repo.db.Exec(
		`INSERT INTO cart_snapshots ("key", payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		"kitchcrafter.cart", `{"not":"an array"`,
	).Error
	require.NoError(t, err)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCartSnapshotRepository_KeysAreIsolated(t *testing.T) {
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	first := NewCartSnapshotRepository(db, "cart-a", zap.NewNop())
	second := NewCartSnapshotRepository(db, "cart-b", zap.NewNop())
	ctx := context.Background()

	require.NoError(t, first.Save(ctx, testItems()))

	loaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
