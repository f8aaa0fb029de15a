package product

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"bakery/internal/domain"
)

const activeListTTL = 5 * time.Minute

type productService struct {
	repo   Repository
	cache  Cache
	logger *zap.Logger
}

// NewService returns the catalog service. cache may be nil.
func NewService(repo Repository, cache Cache, logger *zap.Logger) Service {
	return &productService{repo: repo, cache: cache, logger: logger}
}

func (s *productService) ListActive(ctx context.Context) ([]domain.Product, error) {
	var key string
	if s.cache != nil {
		key = s.cache.GenerateKey("products", "active")
		if raw, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("catalog cache lookup failed", zap.Error(err))
		} else if raw != "" {
			var products []domain.Product
			if err := json.Unmarshal([]byte(raw), &products); err == nil {
				return products, nil
			}
			s.logger.Warn("discarding unreadable catalog cache entry", zap.String("key", key))
		}
	}

	products, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if raw, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, key, raw, activeListTTL); err != nil {
				s.logger.Warn("catalog cache store failed", zap.Error(err))
			}
		}
	}

	return products, nil
}

func (s *productService) GetProductsByIDs(ctx context.Context, ids []int) ([]domain.Product, []int, error) {
	found, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[int]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID] = struct{}{}
	}

	var notFoundIDs []int
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}
