package dto

import (
	"time"

	apperrors "bakery/internal/errors"
)

type PlaceOrderResponse struct {
	OK            bool                  `json:"ok"`
	TraceID       string                `json:"traceId"`
	OrderNumber   string                `json:"orderNumber"`
	Filename      string                `json:"filename"`
	Subtotal      string                `json:"subtotal"`
	Tax           string                `json:"tax"`
	Total         string                `json:"total"`
	ReceiptHTML   string                `json:"receiptHTML,omitempty"`
	Notifications []NotificationOutcome `json:"notifications"`
	Timestamp     time.Time             `json:"timestamp"`
}

type NotificationOutcome struct {
	Channel string `json:"channel"`
	To      string `json:"to,omitempty"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

type ErrorResponse struct {
	OK        bool                         `json:"ok"`
	TraceID   string                       `json:"traceId"`
	Code      string                       `json:"code"`
	Error     string                       `json:"error"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
