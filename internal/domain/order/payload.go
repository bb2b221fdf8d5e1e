package order

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// defaultNotes replaces empty customer notes in the delivery payload
const defaultNotes = "Sin notas adicionales"

// TemplateParams renders the order into the flat field mapping the
// delivery template expects. Field names are part of the template
// contract and must not change without updating the template.
func (o *Order) TemplateParams(rcpt Recipient) TemplateParams {
	notes := strings.TrimSpace(o.Notes)
	if notes == "" {
		notes = defaultNotes
	}

	return TemplateParams{
		"order_id":    o.Reference,
		"date":        formatLongDate(o.SubmittedAt),
		"subtotal":    o.Subtotal.StringFixed(),
		"shipping":    o.Shipping.StringFixed(),
		"order_total": o.Total.StringFixed(),
		"order_items": o.itemsHTML(),

		"customer_name":    o.Customer.Name,
		"customer_email":   o.Customer.Email,
		"customer_phone":   o.Customer.Phone,
		"customer_address": o.Customer.Address,
		"customer_city":    o.Customer.City.String(),
		"payment_method":   o.PaymentMethod.String(),
		"customer_notes":   notes,
		"year":             o.SubmittedAt.Year(),

		"to_email":  rcpt.ToEmail,
		"to_name":   rcpt.ToName,
		"reply_to":  o.Customer.Email,
		"from_name": rcpt.FromName,
	}
}

// itemsHTML renders the line items as the HTML fragment embedded in
// the order notification email.
func (o *Order) itemsHTML() string {
	if len(o.Items) == 0 {
		return "<p>No hay productos</p>"
	}

	var b strings.Builder
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin: 10px 0;">`)
	b.WriteString(`<tr style="background: #f1f1f1; font-weight: bold;">`)
	b.WriteString(`<th style="padding: 10px; text-align: left;">Producto</th>`)
	b.WriteString(`<th style="padding: 10px; text-align: center;">Cantidad</th>`)
	b.WriteString(`<th style="padding: 10px; text-align: right;">Total</th>`)
	b.WriteString(`</tr>`)

	for _, item := range o.Items {
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td style="padding: 10px; border-bottom: 1px solid #ddd;">%s</td>`, html.EscapeString(item.Name))
		fmt.Fprintf(&b, `<td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: center;">%d</td>`, item.Quantity)
		fmt.Fprintf(&b, `<td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: right;">%s</td>`, item.LineTotal().Display())
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</table>`)
	return b.String()
}

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatLongDate renders the submission time the way the order email
// shows it to a Guatemalan reader, e.g.
// "lunes, 12 de enero de 2026, 14:05".
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d, %02d:%02d",
		spanishWeekdays[t.Weekday()],
		t.Day(),
		spanishMonths[t.Month()-1],
		t.Year(),
		t.Hour(),
		t.Minute(),
	)
}
