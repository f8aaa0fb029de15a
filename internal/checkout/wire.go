package checkout

import (
	"go.uber.org/zap"

	"bakery/internal/config"
	"bakery/internal/infrastructure/square"
)

// NewModule wires the checkout endpoint. cache may be nil.
func NewModule(cfg *config.Config, cache Cache, logger *zap.Logger) *Controller {
	client := square.NewClient(cfg.Checkout, logger)

	uc := NewUseCase(client, cache, Settings{
		LocationID:  cfg.Checkout.LocationID,
		RedirectURL: cfg.Checkout.RedirectURL,
		Source:      cfg.Checkout.Source,
		Website:     cfg.Business.Website,
	}, cfg.Checkout.AccessToken, cfg.Checkout.CacheTTL, logger)

	return NewController(uc, logger)
}
