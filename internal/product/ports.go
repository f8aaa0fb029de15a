package product

import (
	"context"
	"time"

	"bakery/internal/domain"
)

type CatalogUseCase interface {
	ListProducts(ctx context.Context) (*ListProductsResponse, error)
	SearchProducts(ctx context.Context, req SearchProductsRequest) (*SearchProductsResponse, error)
}

type Service interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int) (found []domain.Product, notFoundIDs []int, err error)
}

type Repository interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}
