package dto

import "github.com/shopspring/decimal"

type CheckoutRequest struct {
	Cart            []CartItemRequest `json:"cart"`
	PickupDate      string            `json:"pickupDate"`
	PickupNotes     string            `json:"pickupNotes"`
	DeliveryAddress *CheckoutAddress  `json:"deliveryAddress"`
}

// CartItemRequest quantity defaults to 1 when omitted.
type CartItemRequest struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CheckoutAddress struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type CheckoutErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
