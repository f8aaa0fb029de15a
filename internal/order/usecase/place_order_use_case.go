package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bakery/internal/domain"
	"bakery/internal/dto"
	apperrors "bakery/internal/errors"
	"bakery/internal/metrics"
	"bakery/internal/notification"
	"bakery/internal/receipt"
)

type Notifier interface {
	Send(ctx context.Context, order domain.OrderDetails, opts notification.Options) (*notification.Result, error)
}

type PlaceOrderUseCase struct {
	notifier Notifier
	business domain.Business
	taxRate  decimal.Decimal
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewPlaceOrderUseCase(
	notifier Notifier,
	business domain.Business,
	taxRate decimal.Decimal,
	location *time.Location,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	if location == nil {
		location = time.UTC
	}
	return &PlaceOrderUseCase{
		notifier: notifier,
		business: business,
		taxRate:  taxRate,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// PlaceOrder prices the submission, assigns its order number and creation
// time, and hands it to the notifier. Nothing is persisted.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, sub dto.OrderSubmission) (*dto.PlacedOrder, error) {
	now := uc.now().In(uc.location)

	order := domain.OrderDetails{
		OrderNumber: domain.NewOrderNumber(now),
		CreatedAt:   now,
		Customer:    sub.Customer,
		Items:       sub.Items,
		Fulfillment: sub.Fulfillment,
		Notes:       sub.Notes,
		Payment:     sub.Payment,
		Business:    uc.business,
	}
	order.ApplyTotals(uc.taxRate)

	logger := uc.logger.With(zap.String("orderNumber", order.OrderNumber))
	logger.Info("placing order",
		zap.Int("itemCount", len(order.Items)),
		zap.String("fulfillment", string(order.Fulfillment.Type)),
		zap.String("total", order.Total.StringFixed(2)),
	)

	result, err := uc.notifier.Send(ctx, order, notification.Options{
		SendCustomerCopy: sub.SendCustomerCopy && sub.Customer.Email != "",
		CustomerEmail:    sub.Customer.Email,
	})
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); ok {
			metrics.OrdersTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.OrdersTotal.WithLabelValues("failed").Inc()
		}
		logger.Error("order notification failed", zap.Error(err))
		return nil, err
	}

	outcomes := make([]dto.NotificationOutcome, len(result.Deliveries))
	for i, d := range result.Deliveries {
		outcomes[i] = dto.NotificationOutcome{
			Channel: string(d.Channel),
			To:      d.To,
			Status:  string(d.Status),
			Reason:  d.Reason,
		}
	}
	if failed := result.Failed(); len(failed) > 0 {
		logger.Warn("order placed with notification warnings", zap.Int("failed", len(failed)))
	}

	metrics.OrdersTotal.WithLabelValues("placed").Inc()
	logger.Info("order placed")

	return &dto.PlacedOrder{
		OrderNumber:   order.OrderNumber,
		Filename:      receipt.Filename(order),
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		ReceiptHTML:   result.HTML,
		Notifications: outcomes,
	}, nil
}
