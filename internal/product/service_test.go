package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bakery/internal/domain"
)

// Mock implementations
type mockRepository struct {
	FindActiveFunc func(ctx context.Context) ([]domain.Product, error)
	FindByIDsFunc  func(ctx context.Context, ids []int) ([]domain.Product, error)
	activeCalls    int
}

func (m *mockRepository) FindActive(ctx context.Context) ([]domain.Product, error) {
	m.activeCalls++
	return m.FindActiveFunc(ctx)
}

func (m *mockRepository) FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error) {
	return m.FindByIDsFunc(ctx, ids)
}

type mockCache struct {
	values map[string]string
	getErr error
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		m.values[key] = string(v)
	case string:
		m.values[key] = v
	}
	return nil
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.values[key], nil
}

func (m *mockCache) GenerateKey(operation, key string) string {
	return operation + ":" + key
}

func catalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Slug: "banana-bread", Name: "Banana Bread", Price: decimal.RequireFromString("13.00"), Category: "breads", IsActive: true},
		{ID: 2, Slug: "conchas", Name: "Conchas", Price: decimal.RequireFromString("2.50"), Category: "pan-dulce", IsActive: true},
	}
}

func TestListActive_WithoutCache(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return catalog(), nil },
	}
	svc := NewService(repo, nil, zap.NewNop())

	products, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, repo.activeCalls)
}

func TestListActive_CachesList(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return catalog(), nil },
	}
	cache := &mockCache{values: map[string]string{}}
	svc := NewService(repo, cache, zap.NewNop())

	first, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	second, err := svc.ListActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCalls)
	assert.Contains(t, cache.values, "products:active")
	require.Len(t, second, 2)
	assert.Equal(t, first[0].Slug, second[0].Slug)
	assert.True(t, first[1].Price.Equal(second[1].Price))
}

func TestListActive_CacheErrorFallsBackToRepository(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return catalog(), nil },
	}
	cache := &mockCache{values: map[string]string{}, getErr: errors.New("connection refused")}
	svc := NewService(repo, cache, zap.NewNop())

	products, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestListActive_CorruptCacheEntry(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return catalog(), nil },
	}
	cache := &mockCache{values: map[string]string{"products:active": "{not json"}}
	svc := NewService(repo, cache, zap.NewNop())

	products, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, repo.activeCalls)
}

func TestListActive_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		FindActiveFunc: func(ctx context.Context) ([]domain.Product, error) { return nil, errors.New("db down") },
	}
	svc := NewService(repo, nil, zap.NewNop())

	_, err := svc.ListActive(context.Background())

	assert.Error(t, err)
}

func TestGetProductsByIDs_ReportsMissing(t *testing.T) {
	repo := &mockRepository{
		FindByIDsFunc: func(ctx context.Context, ids []int) ([]domain.Product, error) { return catalog(), nil },
	}
	svc := NewService(repo, nil, zap.NewNop())

	found, notFound, err := svc.GetProductsByIDs(context.Background(), []int{1, 2, 7})

	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, []int{7}, notFound)
}
