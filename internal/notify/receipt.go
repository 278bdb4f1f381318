package notify

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/model"
	"github.com/axoxia/shipping-quote/internal/pricing"
)

const ReceiptSubject = "Axoxia Shipping Confirmation"

//go:embed templates/receipt.html
var receiptTemplate string

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	// replaced per render so amounts carry the receipt's currency symbol
	"money": func(float64) string { return "" },
}).Parse(receiptTemplate))

// Receipt is what the dispatcher needs to confirm a booking.
type Receipt struct {
	BookingRef string
	Shipment   model.Shipment
	Breakdown  pricing.CostBreakdown
	Currency   currency.Currency
	Paid       bool
}

// Dispatcher hands receipts to an email provider.
type Dispatcher interface {
	Send(ctx context.Context, r Receipt) error
}

func RenderReceipt(r Receipt) (string, error) {
	tmpl, err := receiptTmpl.Clone()
	if err != nil {
		return "", fmt.Errorf("clone receipt template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"money": func(amount float64) string { return currency.Format(amount, r.Currency) },
	})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}
