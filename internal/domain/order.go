package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is UnitPrice × Quantity, unrounded.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Fulfillment is either a delivery (Address set) or a pickup (Address nil).
type Fulfillment struct {
	Type    FulfillmentType `json:"type"`
	Date    string          `json:"date"`
	Time    string          `json:"time"`
	Address *Address        `json:"address,omitempty"`
}

func (f Fulfillment) IsDelivery() bool {
	return f.Type == FulfillmentDelivery
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "COD"
	PaymentCard           PaymentMethod = "Card"
	PaymentCashApp        PaymentMethod = "Cash App"
	PaymentAfterpay       PaymentMethod = "Afterpay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCashOnDelivery, PaymentCard, PaymentCashApp, PaymentAfterpay:
		return true
	}
	return false
}

type Payment struct {
	Method PaymentMethod `json:"method"`
	Paid   bool          `json:"paid"`
}

type Customer struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	IsCell bool   `json:"isCell,omitempty"`
}

type Business struct {
	Name    string
	Email   string
	Phone   string
	Website string
}

// OrderDetails is built once per order request and discarded after the
// response is written. Subtotal, Tax and Total come from ComputeTotals.
type OrderDetails struct {
	OrderNumber string
	CreatedAt   time.Time
	Customer    Customer
	Items       []OrderItem
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	Fulfillment Fulfillment
	Notes       string
	Payment     Payment
	Business    Business
}

// ApplyTotals overwrites the money fields from Items and taxRate.
func (o *OrderDetails) ApplyTotals(taxRate decimal.Decimal) {
	totals := ComputeTotals(o.Items, taxRate)
	o.Subtotal = totals.Subtotal
	o.Tax = totals.Tax
	o.Total = totals.Total
}
