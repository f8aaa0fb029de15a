package receipt

import (
	"bytes"
	"html/template"

	"bakery/internal/domain"
)

var htmlTemplate = template.Must(template.New("receipt").Parse(receiptHTML))

type itemView struct {
	Name      string
	Quantity  int
	LineTotal string
}

type htmlView struct {
	OrderNumber  string
	Date         string
	Business     domain.Business
	Customer     domain.Customer
	Items        []itemView
	Subtotal     string
	Tax          string
	Total        string
	Payment      string
	PaidLabel    string
	Delivery     bool
	Fulfillment  domain.Fulfillment
	AddressLine1 string
	AddressLine2 string
	Notes        string
}

// HTML renders a standalone document. Every order value goes through
// html/template, so user-supplied text is escaped for its context.
func HTML(order domain.OrderDetails) (string, error) {
	view := htmlView{
		OrderNumber: order.OrderNumber,
		Date:        order.CreatedAt.Format(DateLayout),
		Business:    order.Business,
		Customer:    order.Customer,
		Items:       make([]itemView, len(order.Items)),
		Subtotal:    FormatMoney(order.Subtotal),
		Tax:         FormatMoney(order.Tax),
		Total:       FormatMoney(order.Total),
		Payment:     string(order.Payment.Method),
		PaidLabel:   paidLabel(order.Payment.Paid),
		Delivery:    order.Fulfillment.IsDelivery(),
		Fulfillment: order.Fulfillment,
		Notes:       order.Notes,
	}
	for i, item := range order.Items {
		view.Items[i] = itemView{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: FormatMoney(item.LineTotal()),
		}
	}
	if view.Delivery && order.Fulfillment.Address != nil {
		view.AddressLine1 = addressLine1(*order.Fulfillment.Address)
		view.AddressLine2 = addressLine2(*order.Fulfillment.Address)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const receiptHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>Receipt {{.OrderNumber}}</title>
</head>
<body style="font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial;color:#222;background:#fff;margin:0;padding:24px;">
  <div style="max-width:640px;margin:0 auto;">
    <h1 style="margin:0 0 4px;">{{.Business.Name}}</h1>
    {{- with .Business.Website}}
    <div style="color:#666;margin-bottom:16px;">{{.}}</div>
    {{- end}}

    <div style="display:flex;justify-content:space-between;border-top:1px solid #eee;border-bottom:1px solid #eee;padding:12px 0;margin:12px 0;">
      <div><strong>Order #</strong> {{.OrderNumber}}</div>
      <div><strong>Date</strong> {{.Date}}</div>
    </div>

    <h3 style="margin:16px 0 8px;">Customer</h3>
    <div>{{.Customer.Name}}</div>
    <div>{{.Customer.Phone}}{{if .Customer.IsCell}} (cell){{end}}</div>
    {{- with .Customer.Email}}
    <div>{{.}}</div>
    {{- end}}

    <h3 style="margin:16px 0 8px;">Items</h3>
    <table style="width:100%;border-collapse:collapse;">
      {{- range .Items}}
      <tr class="item">
        <td style="padding:8px 0"><span class="item-name">{{.Name}}</span> <span class="item-qty" style="color:#666">× {{.Quantity}}</span></td>
        <td class="item-total" style="text-align:right;padding:8px 0">{{.LineTotal}}</td>
      </tr>
      {{- end}}
      <tr class="subtotal"><td style="border-top:1px solid #eee;padding-top:8px;color:#666;">Subtotal</td><td style="text-align:right;border-top:1px solid #eee;padding-top:8px;">{{.Subtotal}}</td></tr>
      <tr class="tax"><td style="color:#666;">Tax</td><td style="text-align:right;">{{.Tax}}</td></tr>
      <tr class="total"><td style="font-weight:700;padding-top:4px;">Total</td><td style="text-align:right;font-weight:700;padding-top:4px;">{{.Total}}</td></tr>
    </table>

    <h3 style="margin:16px 0 8px;">Payment</h3>
    <div>{{.Payment}} — <strong>{{.PaidLabel}}</strong></div>

    <h3 style="margin:16px 0 8px;">Fulfillment</h3>
    {{- if .Delivery}}
    <div><strong>Delivery:</strong> {{.Fulfillment.Date}} {{.Fulfillment.Time}}{{if .AddressLine1}}<br>{{.AddressLine1}}<br>{{.AddressLine2}}{{end}}</div>
    {{- else}}
    <div><strong>Pickup:</strong> {{.Fulfillment.Date}} {{.Fulfillment.Time}}</div>
    {{- end}}
    {{- with .Notes}}

    <h3 style="margin:16px 0 8px;">Notes</h3>
    <div style="white-space:pre-wrap;">{{.}}</div>
    {{- end}}

    <div style="border-top:1px solid #eee;margin-top:24px;padding-top:12px;color:#666;font-size:12px;">
      Questions? {{.Business.Email}}{{with .Business.Phone}} • {{.}}{{end}}<br>
      Sent by {{.Business.Name}}
    </div>
  </div>
</body>
</html>
`
