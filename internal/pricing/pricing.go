// Package pricing computes shipping quotes. Rates are defined per kilogram
// in the base currency and converted to the display currency.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/axoxia/shipping-quote/internal/currency"
)

var ErrInvalidWeight = errors.New("invalid weight")

const (
	// HeavyThresholdKg is the first weight billed at HeavyRatePerKg.
	HeavyThresholdKg = 7.0
	LightRatePerKg   = 10.0
	HeavyRatePerKg   = 8.0
	InsuranceRate    = 0.20
)

// ShipmentRequest holds the only two shipment fields that affect the price.
type ShipmentRequest struct {
	WeightKg           float64
	InsuranceRequested bool
}

// CostBreakdown is expressed in the display currency and never rounded.
type CostBreakdown struct {
	ShippingCost  float64 `json:"shipping_cost"`
	InsuranceCost float64 `json:"insurance_cost"`
	Total         float64 `json:"total"`
}

// RatePerKg returns the base-currency tier rate for a positive weight.
func RatePerKg(weightKg float64) float64 {
	if weightKg < HeavyThresholdKg {
		return LightRatePerKg
	}
	return HeavyRatePerKg
}

// BaseCost is the shipping cost in the base currency.
func BaseCost(weightKg float64) (float64, error) {
	if err := validateWeight(weightKg); err != nil {
		return 0, err
	}
	if weightKg == 0 {
		return 0, nil
	}
	return weightKg * RatePerKg(weightKg), nil
}

// ShippingCost prices weightKg in base and converts the result to display.
func ShippingCost(weightKg float64, base, display currency.Currency) (float64, error) {
	baseCost, err := BaseCost(weightKg)
	if err != nil {
		return 0, err
	}
	if baseCost == 0 {
		return 0, nil
	}
	return currency.Convert(baseCost, base, display), nil
}

// InsuranceCost is a flat share of the already converted shipping cost.
func InsuranceCost(shippingCost float64, requested bool) float64 {
	if !requested {
		return 0
	}
	return shippingCost * InsuranceRate
}

// Quote computes the full breakdown for req in the currency identified by code.
func Quote(req ShipmentRequest, catalog currency.Catalog, code currency.Code) (CostBreakdown, error) {
	display, err := catalog.Lookup(code)
	if err != nil {
		return CostBreakdown{}, err
	}
	return QuoteIn(req, catalog.Base(), display)
}

// QuoteIn is Quote for callers that already hold both currencies.
func QuoteIn(req ShipmentRequest, base, display currency.Currency) (CostBreakdown, error) {
	shipping, err := ShippingCost(req.WeightKg, base, display)
	if err != nil {
		return CostBreakdown{}, err
	}
	insurance := InsuranceCost(shipping, req.InsuranceRequested)

	return CostBreakdown{
		ShippingCost:  shipping,
		InsuranceCost: insurance,
		Total:         shipping + insurance,
	}, nil
}

// Negative weights are rejected, never clamped to zero.
func validateWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return fmt.Errorf("%w: %v kg is not a number", ErrInvalidWeight, weightKg)
	}
	if weightKg < 0 {
		return fmt.Errorf("%w: %v kg is negative", ErrInvalidWeight, weightKg)
	}
	return nil
}
