package square

// Payment link request as the checkout builder produces it. The client maps
// it onto the SDK model; only the fields the storefront sends are modelled.

type Money struct {
	Amount   int64
	Currency string
}

type LineItem struct {
	Name           string
	Quantity       string
	BasePriceMoney Money
}

type Order struct {
	LocationID  string
	LineItems   []LineItem
	Metadata    map[string]string
	Note        string
	ReferenceID string
}

type CheckoutOptions struct {
	RedirectURL string
}

type CreatePaymentLinkRequest struct {
	IdempotencyKey  string
	Order           Order
	CheckoutOptions *CheckoutOptions
}

type PaymentLink struct {
	ID      string
	URL     string
	OrderID string
}

// apiError is one entry of the errors array Square returns with a rejection.
type apiError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field,omitempty"`
}

type errorBody struct {
	Errors []apiError `json:"errors"`
}
