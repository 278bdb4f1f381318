package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/metrics"
	"github.com/axoxia/shipping-quote/internal/model"
	"github.com/axoxia/shipping-quote/internal/pricing"
)

type QuoteService struct {
	catalog currency.Catalog
	metrics *metrics.Metrics
}

// NewQuoteService takes the table loaded at startup; m may be nil.
func NewQuoteService(catalog currency.Catalog, m *metrics.Metrics) *QuoteService {
	return &QuoteService{catalog: catalog, metrics: m}
}

type Quote struct {
	Currency  currency.Currency
	Breakdown pricing.CostBreakdown
}

type Conversion struct {
	Amount float64
	From   currency.Currency
	To     currency.Currency
	Result float64
}

func (s *QuoteService) Catalog() currency.Catalog {
	return s.catalog
}

func (s *QuoteService) Currencies() []currency.Currency {
	return s.catalog.All()
}

func (s *QuoteService) Convert(amount float64, from, to currency.Code) (Conversion, error) {
	src, err := s.catalog.Lookup(from)
	if err != nil {
		return Conversion{}, err
	}
	dst, err := s.catalog.Lookup(to)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Amount: amount,
		From:   src,
		To:     dst,
		Result: currency.Convert(amount, src, dst),
	}, nil
}

// Quote prices a shipment form. Only weight and insurance reach the engine.
func (s *QuoteService) Quote(ctx context.Context, shipment model.Shipment, code currency.Code) (Quote, error) {
	if err := ctx.Err(); err != nil {
		return Quote{}, err
	}

	display, err := s.catalog.Lookup(code)
	if err != nil {
		return Quote{}, err
	}

	req := shipment.PricingRequest()
	b, err := pricing.QuoteIn(req, s.catalog.Base(), display)
	if err != nil {
		return Quote{}, err
	}

	s.metrics.ObserveQuote(string(display.Code), req.InsuranceRequested)
	return Quote{Currency: display, Breakdown: b}, nil
}

// QuoteMatrix prices req in every supported currency, in table order.
func (s *QuoteService) QuoteMatrix(ctx context.Context, req pricing.ShipmentRequest) ([]Quote, error) {
	all := s.catalog.All()
	quotes := make([]Quote, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range all {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := pricing.QuoteIn(req, s.catalog.Base(), c)
			if err != nil {
				return err
			}
			quotes[i] = Quote{Currency: c, Breakdown: b}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}
