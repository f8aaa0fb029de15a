package order

import (
	"go.uber.org/zap"

	"bakery/internal/config"
	"bakery/internal/delivery"
	"bakery/internal/domain"
	"bakery/internal/order/controller"
	"bakery/internal/order/usecase"
)

func NewModule(notifier usecase.Notifier, area *delivery.Area, cfg *config.Config, logger *zap.Logger) *controller.PlaceOrderController {
	business := domain.Business{
		Name:    cfg.Business.Name,
		Email:   cfg.Business.Email,
		Phone:   cfg.Business.Phone,
		Website: cfg.Business.Website,
	}

	uc := usecase.NewPlaceOrderUseCase(
		notifier,
		business,
		cfg.Order.TaxRate,
		cfg.Order.Location,
		logger,
	)

	return controller.NewPlaceOrderController(uc, area, logger)
}
