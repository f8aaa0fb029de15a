package checkout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bakery/internal/dto"
	"bakery/internal/infrastructure/square"
)

const currencyUSD = "USD"

var hundred = decimal.NewFromInt(100)

// Settings are the store-wide values stamped onto every payment link.
type Settings struct {
	LocationID  string
	RedirectURL string
	Source      string
	Website     string
}

// BuildPaymentLinkRequest maps a storefront cart onto the processor's
// CreatePaymentLink payload. Prices become integer cents, rounded half-up.
func BuildPaymentLinkRequest(req dto.CheckoutRequest, settings Settings, idempotencyKey string, now time.Time) square.CreatePaymentLinkRequest {
	lineItems := make([]square.LineItem, len(req.Cart))
	for i, item := range req.Cart {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		lineItems[i] = square.LineItem{
			Name:     item.Name,
			Quantity: strconv.Itoa(quantity),
			BasePriceMoney: square.Money{
				Amount:   MinorUnits(item.Price),
				Currency: currencyUSD,
			},
		}
	}

	addr := req.DeliveryAddress
	if addr == nil {
		addr = &dto.CheckoutAddress{}
	}

	note := Note(req)
	if note == "" {
		note = "Online order from " + siteName(settings.Website)
	}

	out := square.CreatePaymentLinkRequest{
		IdempotencyKey: idempotencyKey,
		Order: square.Order{
			LocationID: settings.LocationID,
			LineItems:  lineItems,
			Metadata: map[string]string{
				"pickupDate":   req.PickupDate,
				"pickupNotes":  req.PickupNotes,
				"addressLine1": addr.Line1,
				"addressLine2": addr.Line2,
				"addressCity":  addr.City,
				"addressState": addr.State,
				"addressZip":   addr.Zip,
				"source":       settings.Source,
			},
			Note:        note,
			ReferenceID: fmt.Sprintf("web-%d", now.UnixMilli()),
		},
	}
	if settings.RedirectURL != "" {
		out.CheckoutOptions = &square.CheckoutOptions{RedirectURL: settings.RedirectURL}
	}
	return out
}

func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(hundred).Round(0).IntPart()
}

// Note is the human-readable summary shown on the processor's order, or ""
// when the cart carries no date, address or notes.
func Note(req dto.CheckoutRequest) string {
	var parts []string
	if req.PickupDate != "" {
		parts = append(parts, "Delivery date: "+req.PickupDate)
	}
	if a := req.DeliveryAddress; a != nil && a.Line1 != "" {
		street := a.Line1
		if a.Line2 != "" {
			street += " " + a.Line2
		}
		parts = append(parts, fmt.Sprintf("Address: %s, %s %s %s", street, a.City, a.State, a.Zip))
	}
	if req.PickupNotes != "" {
		parts = append(parts, "Notes: "+req.PickupNotes)
	}
	return strings.Join(parts, " | ")
}

func siteName(website string) string {
	u, err := url.Parse(website)
	if err != nil || u.Host == "" {
		return website
	}
	return u.Host
}
