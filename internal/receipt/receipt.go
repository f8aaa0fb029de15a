// Package receipt renders an order into the subject line, plain-text body
// and HTML document sent to the business and, optionally, the customer.
package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bakery/internal/domain"
)

// DateLayout is used for the order timestamp in both formats. The time is
// shown in whatever location CreatedAt carries.
const DateLayout = "Jan 2, 2006 3:04 PM MST"

type Rendered struct {
	Subject string
	Text    string
	HTML    string
}

func Render(order domain.OrderDetails) (Rendered, error) {
	html, err := HTML(order)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{
		Subject: Subject(order),
		Text:    Text(order),
		HTML:    html,
	}, nil
}

func Subject(order domain.OrderDetails) string {
	return fmt.Sprintf("Order %s - %s", order.OrderNumber, order.Business.Name)
}

// Filename is the suggested name for a downloaded HTML receipt.
func Filename(order domain.OrderDetails) string {
	return fmt.Sprintf("Receipt-%s.html", order.OrderNumber)
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func paidLabel(paid bool) string {
	if paid {
		return "PAID"
	}
	return "NOT PAID"
}

func phoneLine(c domain.Customer) string {
	if c.IsCell {
		return c.Phone + " (cell)"
	}
	return c.Phone
}

func addressLine1(a domain.Address) string {
	if a.Line2 != "" {
		return a.Line1 + ", " + a.Line2
	}
	return a.Line1
}

func addressLine2(a domain.Address) string {
	return fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip)
}

// Text lays the receipt out one value per line. Empty optional values
// produce no line at all; only the notes and the closing line are set off
// by a blank line.
func Text(order domain.OrderDetails) string {
	lines := []string{
		order.Business.Name,
		order.Business.Website,
		"Order #: " + order.OrderNumber,
		"Date: " + order.CreatedAt.Format(DateLayout),
		"Customer: " + order.Customer.Name,
		"Phone: " + phoneLine(order.Customer),
		optional("Email: ", order.Customer.Email),
	}
	lines = append(lines, itemLines(order.Items)...)
	lines = append(lines,
		"Subtotal: "+FormatMoney(order.Subtotal),
		"Tax: "+FormatMoney(order.Tax),
		"Total: "+FormatMoney(order.Total),
		fmt.Sprintf("Payment: %s — %s", order.Payment.Method, paidLabel(order.Payment.Paid)),
	)
	lines = append(lines, fulfillmentLines(order.Fulfillment)...)
	lines = append(lines,
		optional("\nNotes: ", order.Notes),
		"\nThank you!",
	)

	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func optional(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

func itemLines(items []domain.OrderItem) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("  • %s x%d — %s", item.Name, item.Quantity, FormatMoney(item.LineTotal()))
	}
	return lines
}

func fulfillmentLines(f domain.Fulfillment) []string {
	if !f.IsDelivery() {
		return []string{fmt.Sprintf("Pickup: %s %s", f.Date, f.Time)}
	}

	lines := []string{fmt.Sprintf("Delivery: %s %s", f.Date, f.Time)}
	if f.Address != nil {
		lines = append(lines,
			"  "+addressLine1(*f.Address),
			"  "+addressLine2(*f.Address),
		)
	}
	return lines
}
