package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/metrics"
	"github.com/axoxia/shipping-quote/internal/model"
	"github.com/axoxia/shipping-quote/internal/notify"
	"github.com/axoxia/shipping-quote/internal/payment"
)

const chargeDescription = "Axoxia Shipping Service"

type CheckoutService struct {
	quotes     *QuoteService
	processor  payment.Processor
	dispatcher notify.Dispatcher
	accepted   payment.Accepted
	metrics    *metrics.Metrics
}

func NewCheckoutService(quotes *QuoteService, processor payment.Processor, dispatcher notify.Dispatcher, accepted payment.Accepted, m *metrics.Metrics) *CheckoutService {
	return &CheckoutService{
		quotes:     quotes,
		processor:  processor,
		dispatcher: dispatcher,
		accepted:   accepted,
		metrics:    m,
	}
}

type CheckoutResult struct {
	BookingRef  string
	Quote       Quote
	Charge      payment.Charge
	Outcome     payment.Outcome
	ReceiptSent bool
}

// Checkout quotes the shipment, charges the total and sends the receipt.
// The shipment must already have passed request binding.
// A declined payment returns the result together with payment.ErrDeclined.
func (s *CheckoutService) Checkout(ctx context.Context, shipment model.Shipment, code currency.Code) (*CheckoutResult, error) {
	q, err := s.quotes.Quote(ctx, shipment, code)
	if err != nil {
		return nil, err
	}

	charge, err := payment.ChargeFor(q.Breakdown.Total, q.Currency, s.quotes.Catalog(), s.accepted, chargeDescription)
	if err != nil {
		return nil, fmt.Errorf("build charge: %w", err)
	}

	outcome, err := s.processor.Capture(ctx, charge)
	if err != nil {
		return nil, fmt.Errorf("capture payment: %w", err)
	}
	s.metrics.ObserveCheckout(string(charge.Currency), outcome.Status)

	result := &CheckoutResult{
		BookingRef: uuid.NewString(),
		Quote:      q,
		Charge:     charge,
		Outcome:    outcome,
	}

	if !outcome.Captured() {
		return result, fmt.Errorf("%w: %s", payment.ErrDeclined, outcome.Reason)
	}

	receipt := notify.Receipt{
		BookingRef: result.BookingRef,
		Shipment:   shipment,
		Breakdown:  q.Breakdown,
		Currency:   q.Currency,
		Paid:       true,
	}
	if err := s.dispatcher.Send(ctx, receipt); err != nil {
		log.Warn().Err(err).
			Str("booking_ref", result.BookingRef).
			Msg("failed to send receipt")
	} else {
		result.ReceiptSent = true
	}

	return result, nil
}
