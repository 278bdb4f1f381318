package pricing

import (
	"sync"

	"github.com/axoxia/shipping-quote/internal/currency"
)

// Key is the complete set of inputs a quote depends on.
type Key struct {
	WeightKg           float64
	InsuranceRequested bool
	Currency           currency.Code
}

func KeyFor(req ShipmentRequest, code currency.Code) Key {
	return Key{
		WeightKg:           req.WeightKg,
		InsuranceRequested: req.InsuranceRequested,
		Currency:           code,
	}
}

// Calculator keeps the last quote and recomputes only when its Key changes.
// It is the server-side stand-in for a form that re-prices on input changes.
type Calculator struct {
	catalog currency.Catalog

	mu        sync.Mutex
	last      Key
	breakdown CostBreakdown
	primed    bool
}

func NewCalculator(catalog currency.Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Update returns the breakdown for req in code and whether it had to be recomputed.
// On error the previous breakdown is kept.
func (c *Calculator) Update(req ShipmentRequest, code currency.Code) (CostBreakdown, bool, error) {
	key := KeyFor(req, code)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.primed && key == c.last {
		return c.breakdown, false, nil
	}

	b, err := Quote(req, c.catalog, code)
	if err != nil {
		return c.breakdown, false, err
	}

	c.last = key
	c.breakdown = b
	c.primed = true
	return b, true, nil
}

// Current returns the last computed breakdown, zero before the first Update.
func (c *Calculator) Current() CostBreakdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.breakdown
}
