package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery/internal/domain"
	"bakery/internal/dto"
	apperrors "bakery/internal/errors"
	"bakery/internal/infrastructure/square"
	"bakery/internal/metrics"
)

const (
	cacheOperation = "checkout"
	maxQuantity    = 1000
)

type PaymentLinkCreator interface {
	CreatePaymentLink(ctx context.Context, req square.CreatePaymentLinkRequest) (*square.PaymentLink, error)
}

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type UseCase struct {
	processor   PaymentLinkCreator
	cache       Cache
	settings    Settings
	accessToken string
	cacheTTL    time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

// NewUseCase builds the checkout use case. cache may be nil, in which case
// repeated Idempotency-Keys are only deduplicated by the processor.
func NewUseCase(processor PaymentLinkCreator, cache Cache, settings Settings, accessToken string, cacheTTL time.Duration, logger *zap.Logger) *UseCase {
	return &UseCase{
		processor:   processor,
		cache:       cache,
		settings:    settings,
		accessToken: accessToken,
		cacheTTL:    cacheTTL,
		now:         time.Now,
		logger:      logger,
	}
}

// CreateCheckout returns the hosted checkout URL for the cart. A non-empty
// idempotencyKey that was seen before returns the URL created the first time.
func (uc *UseCase) CreateCheckout(ctx context.Context, req dto.CheckoutRequest, idempotencyKey string) (string, error) {
	if err := validateCart(req); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("invalid").Inc()
		return "", err
	}

	if uc.accessToken == "" || uc.settings.LocationID == "" {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return "", apperrors.NewConfigurationError("SQUARE_ACCESS_TOKEN", "Missing SQUARE_ACCESS_TOKEN or SQUARE_LOCATION_ID")
	}

	var cacheKey string
	if idempotencyKey != "" && uc.cache != nil {
		cacheKey = uc.cache.GenerateKey(cacheOperation, idempotencyKey)
		cached, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			uc.logger.Warn("checkout cache lookup failed", zap.String("key", cacheKey), zap.Error(err))
		} else if cached != "" {
			uc.logger.Info("reusing checkout url", zap.String("idempotencyKey", idempotencyKey))
			metrics.CheckoutsTotal.WithLabelValues("cached").Inc()
			return cached, nil
		}
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	link, err := uc.processor.CreatePaymentLink(ctx, BuildPaymentLinkRequest(req, uc.settings, idempotencyKey, uc.now()))
	if err != nil {
		if _, ok := apperrors.IsPaymentProcessorError(err); ok {
			metrics.CheckoutsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}

	if cacheKey != "" {
		if err := uc.cache.Set(ctx, cacheKey, link.URL, uc.cacheTTL); err != nil {
			uc.logger.Warn("checkout cache store failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	uc.logger.Info("payment link created",
		zap.String("paymentLinkId", link.ID),
		zap.String("orderId", link.OrderID),
		zap.Int("lineItems", len(req.Cart)),
	)
	metrics.CheckoutsTotal.WithLabelValues("created").Inc()
	return link.URL, nil
}

func validateCart(req dto.CheckoutRequest) error {
	if len(req.Cart) == 0 {
		return apperrors.NewValidationError("Cart cannot be empty", apperrors.ValidationDetail{
			Field:   "cart",
			Message: "cart must not be empty",
		})
	}

	var details []apperrors.ValidationDetail
	for i, item := range req.Cart {
		if item.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("cart[%d].name", i),
				Message: "name is required",
			})
		}
		if err := domain.CheckUnitPrice(item.Price); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("cart[%d].price", i),
				Message: err.Error(),
			})
		}
		if item.Quantity < 0 || item.Quantity > maxQuantity {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("cart[%d].quantity", i),
				Message: "quantity must be between 0 and 1000",
			})
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid cart", details...)
	}
	return nil
}
