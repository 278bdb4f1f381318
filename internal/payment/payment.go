package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/axoxia/shipping-quote/internal/currency"
)

var (
	ErrDeclined = errors.New("payment declined")
	// ErrNotAccepted means the processor configuration cannot charge a quote.
	ErrNotAccepted = errors.New("currency not accepted by processor")
)

const (
	StatusCaptured = "CAPTURED"
	StatusDeclined = "DECLINED"
)

// Charge is the amount handed to the processor, in a currency it accepts.
type Charge struct {
	Amount      float64       `json:"amount"`
	Currency    currency.Code `json:"currency"`
	Description string        `json:"description"`
	// Converted is set when the display currency was not accepted and the
	// total was moved to the base currency.
	Converted bool `json:"converted"`
}

type Outcome struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Reason    string `json:"reason,omitempty"`
}

func (o Outcome) Captured() bool {
	return o.Status == StatusCaptured
}

// Processor is the external payment capture flow.
type Processor interface {
	Capture(ctx context.Context, charge Charge) (Outcome, error)
}

// Accepted is the set of currencies a processor can charge in.
type Accepted map[currency.Code]bool

func NewAccepted(codes ...currency.Code) Accepted {
	a := make(Accepted, len(codes))
	for _, c := range codes {
		a[c] = true
	}
	return a
}

// NewAcceptedFor builds the accepted set and checks it against catalog once,
// at startup. Every code must be in the table and the base must be included
// because unsupported display currencies are charged in base.
func NewAcceptedFor(catalog currency.Catalog, codes ...currency.Code) (Accepted, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: no payment currencies configured", ErrNotAccepted)
	}
	for _, code := range codes {
		if _, err := catalog.Lookup(code); err != nil {
			return nil, fmt.Errorf("payment currency: %w", err)
		}
	}
	a := NewAccepted(codes...)
	if base := catalog.Base(); !a[base.Code] {
		return nil, fmt.Errorf("%w: base currency %s must be accepted", ErrNotAccepted, base.Code)
	}
	return a, nil
}

// ChargeFor builds the processor charge for total expressed in display.
// Unsupported display currencies are converted to the base currency.
func ChargeFor(total float64, display currency.Currency, catalog currency.Catalog, accepted Accepted, description string) (Charge, error) {
	if _, err := catalog.Lookup(display.Code); err != nil {
		return Charge{}, err
	}

	if accepted[display.Code] {
		return Charge{
			Amount:      roundMinor(total),
			Currency:    display.Code,
			Description: description,
		}, nil
	}

	base := catalog.Base()
	if !accepted[base.Code] {
		return Charge{}, fmt.Errorf("%w: neither %s nor base %s", ErrNotAccepted, display.Code, base.Code)
	}

	return Charge{
		Amount:      roundMinor(currency.Convert(total, display, base)),
		Currency:    base.Code,
		Description: description,
		Converted:   true,
	}, nil
}

// roundMinor rounds to the two decimals processors expect.
func roundMinor(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// SandboxProcessor approves every positive charge without contacting anyone.
type SandboxProcessor struct{}

func NewSandboxProcessor() *SandboxProcessor {
	return &SandboxProcessor{}
}

func (p *SandboxProcessor) Capture(ctx context.Context, charge Charge) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	ref := uuid.NewString()
	if charge.Amount <= 0 {
		return Outcome{Status: StatusDeclined, Reference: ref, Reason: "amount must be positive"}, nil
	}
	return Outcome{Status: StatusCaptured, Reference: ref}, nil
}
