package product

import (
	"database/sql"

	"go.uber.org/zap"

	"bakery/internal/product/repository"
)

// NewModule wires the catalog endpoints. cache may be nil.
func NewModule(db *sql.DB, cache Cache, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo, cache, logger)
	uc := NewCatalogUseCase(svc)
	return NewController(uc, logger)
}
