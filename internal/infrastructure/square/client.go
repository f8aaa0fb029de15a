package square

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	squaresdk "github.com/square/square-go-sdk"
	sqcheckout "github.com/square/square-go-sdk/checkout"
	sqclient "github.com/square/square-go-sdk/client"
	"github.com/square/square-go-sdk/core"
	"github.com/square/square-go-sdk/option"
	"go.uber.org/zap"

	"bakery/internal/config"
	apperrors "bakery/internal/errors"
)

const requestTimeout = 20 * time.Second

type Client struct {
	api    *sqclient.Client
	logger *zap.Logger
}

func NewClient(cfg config.CheckoutConfig, logger *zap.Logger) *Client {
	return &Client{
		api: sqclient.NewClient(
			option.WithToken(cfg.AccessToken),
			option.WithBaseURL(cfg.BaseURL),
			option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
			option.WithMaxAttempts(1),
		),
		logger: logger,
	}
}

// CreatePaymentLink asks Square for a hosted checkout link. Every failure,
// including a link without a URL, comes back as PaymentProcessorError.
func (c *Client) CreatePaymentLink(ctx context.Context, req CreatePaymentLinkRequest) (*PaymentLink, error) {
	resp, err := c.api.Checkout.PaymentLinks.Create(ctx, toSDKRequest(req))
	if err != nil {
		var apiErr *core.APIError
		if !errors.As(err, &apiErr) {
			return nil, apperrors.NewPaymentProcessorError(0, fmt.Sprintf("request failed: %v", err), "")
		}

		body := ""
		if cause := apiErr.Unwrap(); cause != nil {
			body = cause.Error()
		}
		msg := rejectionMessage(apiErr.StatusCode, body)
		c.logger.Warn("payment link rejected",
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", msg),
		)
		return nil, apperrors.NewPaymentProcessorError(apiErr.StatusCode, msg, body)
	}

	if resp == nil || resp.PaymentLink == nil || deref(resp.PaymentLink.URL) == "" {
		return nil, apperrors.NewPaymentProcessorError(0, "no checkout URL returned", "")
	}

	return &PaymentLink{
		ID:      deref(resp.PaymentLink.ID),
		URL:     deref(resp.PaymentLink.URL),
		OrderID: deref(resp.PaymentLink.OrderID),
	}, nil
}

func rejectionMessage(status int, body string) string {
	var decoded errorBody
	if err := json.Unmarshal([]byte(body), &decoded); err == nil && len(decoded.Errors) > 0 && decoded.Errors[0].Detail != "" {
		return decoded.Errors[0].Detail
	}
	return http.StatusText(status)
}

// toSDKRequest maps the storefront request onto Square's model. Square
// orders carry no free-form note, so the note travels as the payment note.
func toSDKRequest(req CreatePaymentLinkRequest) *sqcheckout.CreatePaymentLinkRequest {
	lineItems := make([]*squaresdk.OrderLineItem, len(req.Order.LineItems))
	for i, item := range req.Order.LineItems {
		lineItems[i] = &squaresdk.OrderLineItem{
			Name:     squaresdk.String(item.Name),
			Quantity: item.Quantity,
			BasePriceMoney: &squaresdk.Money{
				Amount:   squaresdk.Int64(item.BasePriceMoney.Amount),
				Currency: squaresdk.Currency(item.BasePriceMoney.Currency).Ptr(),
			},
		}
	}

	var metadata map[string]*string
	if len(req.Order.Metadata) > 0 {
		metadata = make(map[string]*string, len(req.Order.Metadata))
		for k, v := range req.Order.Metadata {
			metadata[k] = squaresdk.String(v)
		}
	}

	out := &sqcheckout.CreatePaymentLinkRequest{
		IdempotencyKey: squaresdk.String(req.IdempotencyKey),
		Order: &squaresdk.Order{
			LocationID:  req.Order.LocationID,
			LineItems:   lineItems,
			Metadata:    metadata,
			ReferenceID: optionalString(req.Order.ReferenceID),
		},
		PaymentNote: optionalString(req.Order.Note),
	}
	if req.CheckoutOptions != nil {
		out.CheckoutOptions = &squaresdk.CheckoutOptions{
			RedirectURL: optionalString(req.CheckoutOptions.RedirectURL),
		}
	}
	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
