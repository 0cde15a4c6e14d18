package catalog

import (
	"context"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Repository {
	// Use in-memory database for tests
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.RunMigrations())
	return repo
}

func TestGetAllProducts_Returns6AfterMigrations(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)

	for i, p := range products {
		assert.Equal(t, int64(i+1), p.ID)
		assert.True(t, p.Category.Valid())
	}
}

func TestGetAllProducts_MatchesDefaultCatalog(t *testing.T) {
	repo := setupTestDB(t)

	loaded, err := LoadStatic(context.Background(), repo)
	require.NoError(t, err)

	def := Default()
	for _, want := range def.List(domain.CategoryAll) {
		got, ok := loaded.Lookup(want.ID)
		require.True(t, ok, "product %d missing", want.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.ImageURL, got.ImageURL)
		assert.Equal(t, want.Spec, got.Spec)
		assert.True(t, want.Price.Equal(got.Price), "price of %d: %s != %s", want.ID, want.Price, got.Price)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.RunMigrations())

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestGetAllProducts_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAllProducts(ctx)
	assert.ErrorContains(t, err, "failed to query products")
}

func TestGetProduct_ReturnsProduct(t *testing.T) {
	repo := setupTestDB(t)

	p, err := repo.GetProduct(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "GM41 Gaming Mouse", p.Name)
	assert.Equal(t, domain.CategoryPeripheral, p.Category)
	assert.True(t, decimal.NewFromInt(79).Equal(p.Price))
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	p, err := repo.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, p)
}
