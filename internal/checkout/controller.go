package checkout

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery/internal/dto"
	apperrors "bakery/internal/errors"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	maxBodyBytes      = 1 << 20
)

type CreateCheckoutUseCase interface {
	CreateCheckout(ctx context.Context, req dto.CheckoutRequest, idempotencyKey string) (string, error)
}

type Controller struct {
	useCase CreateCheckoutUseCase
	logger  *zap.Logger
}

func NewController(useCase CreateCheckoutUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, dto.CheckoutErrorResponse{
			Error: "request body must be valid JSON",
		})
		return
	}

	url, err := c.useCase.CreateCheckout(r.Context(), req, r.Header.Get(IdempotencyHeader))
	if err != nil {
		c.handleUseCaseError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CheckoutResponse{CheckoutURL: url})
}

func (c *Controller) handleUseCaseError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		var details interface{}
		if len(ve.Details) > 0 {
			details = ve.Details
		}
		c.writeJSON(w, http.StatusBadRequest, dto.CheckoutErrorResponse{Error: ve.Message, Details: details})
		return
	}

	if ce, ok := apperrors.IsConfigurationError(err); ok {
		logger.Error("checkout not configured", zap.String("setting", ce.Setting), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.CheckoutErrorResponse{Error: ce.Message})
		return
	}

	if pe, ok := apperrors.IsPaymentProcessorError(err); ok {
		status := pe.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		logger.Warn("payment processor error", zap.Int("status", pe.StatusCode), zap.Error(err))

		var details interface{}
		if pe.Body != "" {
			if json.Valid([]byte(pe.Body)) {
				details = json.RawMessage(pe.Body)
			} else {
				details = pe.Body
			}
		}
		c.writeJSON(w, status, dto.CheckoutErrorResponse{Error: pe.Message, Details: details})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.CheckoutErrorResponse{Error: "Failed to create checkout"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
