package dto

import (
	"github.com/shopspring/decimal"

	"bakery/internal/domain"
)

// OrderSubmission is a validated order as handed from the controller to
// the place-order use case. Totals, order number and timestamps are not
// part of it; the server assigns those.
type OrderSubmission struct {
	Customer         domain.Customer
	Items            []domain.OrderItem
	Fulfillment      domain.Fulfillment
	Notes            string
	Payment          domain.Payment
	SendCustomerCopy bool
}

type PlacedOrder struct {
	OrderNumber   string
	Filename      string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	ReceiptHTML   string
	Notifications []NotificationOutcome
}
