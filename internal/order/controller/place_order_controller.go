package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bakery/internal/domain"
	"bakery/internal/dto"
	apperrors "bakery/internal/errors"
	"bakery/internal/validation"
)

const maxBodyBytes = 1 << 20

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, sub dto.OrderSubmission) (*dto.PlacedOrder, error)
}

type DeliveryArea interface {
	Allows(zip string) bool
}

type PlaceOrderController struct {
	useCase   PlaceOrderUseCase
	area      DeliveryArea
	validator *validation.Validator
	logger    *zap.Logger
}

func NewPlaceOrderController(useCase PlaceOrderUseCase, area DeliveryArea, logger *zap.Logger) *PlaceOrderController {
	return &PlaceOrderController{
		useCase:   useCase,
		area:      area,
		validator: validation.New(),
		logger:    logger,
	}
}

func (c *PlaceOrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	// Decode request body
	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	// Pickup orders never carry an address, even if the form sent one.
	if domain.FulfillmentType(req.Fulfillment.Type) != domain.FulfillmentDelivery {
		req.Fulfillment.Address = nil
	}

	// Validate request
	if details := c.validatePlaceOrderRequest(req); len(details) > 0 {
		logger.Info("order rejected", zap.Int("violations", len(details)))
		c.writeValidationError(w, traceID, "validation failed", details...)
		return
	}

	result, err := c.useCase.PlaceOrder(r.Context(), toSubmission(req))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	resp := dto.PlaceOrderResponse{
		OK:            true,
		TraceID:       traceID,
		OrderNumber:   result.OrderNumber,
		Filename:      result.Filename,
		Subtotal:      result.Subtotal.StringFixed(2),
		Tax:           result.Tax.StringFixed(2),
		Total:         result.Total.StringFixed(2),
		Notifications: result.Notifications,
		Timestamp:     time.Now().UTC(),
	}
	if req.DownloadReceipt {
		resp.ReceiptHTML = result.ReceiptHTML
	}
	c.writeJSON(w, http.StatusOK, resp)
}

func (c *PlaceOrderController) validatePlaceOrderRequest(req dto.PlaceOrderRequest) []apperrors.ValidationDetail {
	details := c.validator.Struct(req)

	for idx, item := range req.Items {
		if err := domain.CheckUnitPrice(item.Price); err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].price", idx),
				Message: err.Error(),
			})
		}
	}

	if !domain.PaymentMethod(req.Payment.Method).Valid() && req.Payment.Method != "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "payment.method",
			Message: "must be one of [COD, Card, Cash App, Afterpay]",
		})
	}

	if domain.FulfillmentType(req.Fulfillment.Type) == domain.FulfillmentDelivery {
		switch addr := req.Fulfillment.Address; {
		case addr == nil:
			details = append(details, apperrors.ValidationDetail{
				Field:   "fulfillment.address",
				Message: "address is required for delivery",
			})
		case addr.Zip != "" && !c.area.Allows(addr.Zip):
			details = append(details, apperrors.ValidationDetail{
				Field:   "fulfillment.address.zip",
				Message: "we do not deliver to this ZIP code",
			})
		}
	}

	return details
}

func toSubmission(req dto.PlaceOrderRequest) dto.OrderSubmission {
	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			ID:        item.ID,
			Name:      strings.TrimSpace(item.Name),
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		}
	}

	fulfillment := domain.Fulfillment{
		Type: domain.FulfillmentType(req.Fulfillment.Type),
		Date: req.Fulfillment.Date,
		Time: req.Fulfillment.Time,
	}
	if a := req.Fulfillment.Address; a != nil {
		fulfillment.Address = &domain.Address{
			Line1: strings.TrimSpace(a.Line1),
			Line2: strings.TrimSpace(a.Line2),
			City:  strings.TrimSpace(a.City),
			State: strings.TrimSpace(a.State),
			Zip:   strings.TrimSpace(a.Zip),
		}
	}

	return dto.OrderSubmission{
		Customer: domain.Customer{
			Name:   strings.TrimSpace(req.Customer.Name),
			Phone:  strings.TrimSpace(req.Customer.Phone),
			Email:  strings.TrimSpace(req.Customer.Email),
			IsCell: req.Customer.IsCell,
		},
		Items:            items,
		Fulfillment:      fulfillment,
		Notes:            strings.TrimSpace(req.Notes),
		Payment:          domain.Payment{Method: domain.PaymentMethod(req.Payment.Method), Paid: req.Payment.Paid},
		SendCustomerCopy: req.SendCustomerCopy,
	}
}

func (c *PlaceOrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if ce, ok := apperrors.IsConfigurationError(err); ok {
		logger.Error("notifications not configured", zap.String("setting", ce.Setting), zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "CONFIGURATION_ERROR", ce.Message)
		return
	}

	if te, ok := apperrors.IsTransportError(err); ok {
		logger.Error("order receipt not delivered", zap.String("channel", te.Channel), zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusBadGateway, "NOTIFICATION_FAILED", "the order could not be sent to the bakery, please try again")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *PlaceOrderController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		OK:        false,
		TraceID:   traceID,
		Code:      "VALIDATION_ERROR",
		Error:     message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *PlaceOrderController) writeErrorResponse(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{
		OK:        false,
		TraceID:   traceID,
		Code:      code,
		Error:     message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *PlaceOrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
