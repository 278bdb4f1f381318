package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/axoxia/shipping-quote/internal/currency"
	"github.com/axoxia/shipping-quote/internal/model"
	"github.com/axoxia/shipping-quote/internal/pricing"
)

// quote is an interactive booking form on stdin. Each line sets one field,
// e.g. "weight=10", "insurance=true", "currency=XOF", "sender.email=a@b.co".
// The price is printed again only when a field it depends on changes.
func main() {
	code := flag.String("currency", string(currency.EUR), "initial display currency")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, currency.Default(), currency.ParseCode(*code)); err != nil {
		fmt.Fprintf(os.Stderr, "quote: %v\n", err)
		os.Exit(1)
	}
}

type form struct {
	shipment model.Shipment
	currency currency.Code
}

func run(in io.Reader, out io.Writer, catalog currency.Catalog, code currency.Code) error {
	if _, err := catalog.Lookup(code); err != nil {
		return err
	}

	f := &form{currency: code}
	calc := pricing.NewCalculator(catalog)
	stale := !reprice(out, calc, f, catalog, false)

	s := bufio.NewScanner(in)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Fprintf(out, "error: expected field=value, got %q\n", line)
			stale = true
			continue
		}
		if err := f.set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			stale = true
			continue
		}
		stale = !reprice(out, calc, f, catalog, stale)
	}
	return s.Err()
}

// reprice prints the quote when it changed, or unconditionally when force is
// set so a valid price follows an error line. It reports false on error.
func reprice(out io.Writer, calc *pricing.Calculator, f *form, catalog currency.Catalog, force bool) bool {
	b, changed, err := calc.Update(f.shipment.PricingRequest(), f.currency)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return false
	}
	if !changed && !force {
		return true
	}
	display, _ := catalog.Lookup(f.currency)
	fmt.Fprintf(out, "shipping %s  insurance %s  total %s\n",
		currency.Format(b.ShippingCost, display),
		currency.Format(b.InsuranceCost, display),
		currency.Format(b.Total, display))
	return true
}

func (f *form) set(key, value string) error {
	s := &f.shipment
	switch strings.ToLower(key) {
	case "weight", "weight_kg":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("weight: %w", err)
		}
		s.WeightKg = w
	case "insurance":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("insurance: %w", err)
		}
		s.Insurance = v
	case "currency":
		f.currency = currency.ParseCode(value)
	case "category":
		s.Category = value
	case "details":
		s.Details = value
	case "country":
		s.Country = value
	case "message":
		s.Message = value
	case "length":
		return setFloat(&s.Dimensions.LengthCm, key, value)
	case "width":
		return setFloat(&s.Dimensions.WidthCm, key, value)
	case "height":
		return setFloat(&s.Dimensions.HeightCm, key, value)
	default:
		party, field, ok := strings.Cut(key, ".")
		if !ok {
			return fmt.Errorf("unknown field %q", key)
		}
		switch strings.ToLower(party) {
		case "sender":
			return setParty(&s.Sender, field, value)
		case "recipient":
			return setParty(&s.Recipient, field, value)
		}
		return fmt.Errorf("unknown field %q", key)
	}
	return nil
}

func setFloat(dst *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func setParty(p *model.Party, field, value string) error {
	switch strings.ToLower(field) {
	case "first_name":
		p.FirstName = value
	case "last_name":
		p.LastName = value
	case "address":
		p.Address = value
	case "contact":
		p.Contact = value
	case "email":
		p.Email = value
	case "country":
		p.Country = value
	default:
		return fmt.Errorf("unknown party field %q", field)
	}
	return nil
}
