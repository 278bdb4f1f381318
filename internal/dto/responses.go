package dto

import (
	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/payment"
	"github.com/axoxia/shipping-quote/internal/pricing"
)

type CurrencyResponse struct {
	Code       currency.Code `json:"code"`
	Symbol     string        `json:"symbol"`
	Name       string        `json:"name"`
	RateToBase float64       `json:"rate_to_base"`
	Base       bool          `json:"base"`
}

func NewCurrencyResponse(c currency.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:       c.Code,
		Symbol:     c.Symbol,
		Name:       c.Name,
		RateToBase: c.RateToBase,
		Base:       c.IsBase(),
	}
}

// Formatted mirrors a breakdown as display strings (symbol, two decimals).
type Formatted struct {
	ShippingCost  string `json:"shipping_cost"`
	InsuranceCost string `json:"insurance_cost"`
	Total         string `json:"total"`
}

type QuoteResponse struct {
	Currency  currency.Code         `json:"currency"`
	Breakdown pricing.CostBreakdown `json:"breakdown"`
	Formatted Formatted             `json:"formatted"`
}

func NewQuoteResponse(b pricing.CostBreakdown, c currency.Currency) QuoteResponse {
	return QuoteResponse{
		Currency:  c.Code,
		Breakdown: b,
		Formatted: Formatted{
			ShippingCost:  currency.Format(b.ShippingCost, c),
			InsuranceCost: currency.Format(b.InsuranceCost, c),
			Total:         currency.Format(b.Total, c),
		},
	}
}

type MatrixResponse struct {
	WeightKg  float64         `json:"weight_kg"`
	Insurance bool            `json:"insurance"`
	Quotes    []QuoteResponse `json:"quotes"`
}

type ConvertResponse struct {
	Amount    float64       `json:"amount"`
	From      currency.Code `json:"from"`
	To        currency.Code `json:"to"`
	Result    float64       `json:"result"`
	Formatted string        `json:"formatted"`
}

type CheckoutResponse struct {
	BookingRef  string          `json:"booking_ref"`
	Quote       QuoteResponse   `json:"quote"`
	Charge      payment.Charge  `json:"charge"`
	Payment     payment.Outcome `json:"payment"`
	ReceiptSent bool            `json:"receipt_sent"`
}
