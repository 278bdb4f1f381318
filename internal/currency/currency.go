package currency

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidTable    = errors.New("invalid currency table")
)

// MinSupported is the smallest table the service accepts: the base plus two others.
const MinSupported = 3

type Code string

const (
	EUR Code = "EUR"
	XOF Code = "XOF"
	CNY Code = "CNY"
)

// ParseCode normalizes user input such as " xof" into a Code.
func ParseCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// Currency expresses "1 base unit = RateToBase units of this currency".
type Currency struct {
	Code       Code    `json:"code"`
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	RateToBase float64 `json:"rate_to_base"`
}

func (c Currency) IsBase() bool {
	return c.RateToBase == 1
}

// Catalog is the read-only view of the currency table used by the rest of the service.
type Catalog interface {
	Base() Currency
	Lookup(code Code) (Currency, error)
	All() []Currency
}

// Table is an immutable, validated set of currencies. Build it once at startup.
type Table struct {
	ordered []Currency
	byCode  map[Code]Currency
	base    Currency
}

func NewTable(currencies []Currency) (*Table, error) {
	if len(currencies) < MinSupported {
		return nil, fmt.Errorf("%w: %d currencies, need at least %d", ErrInvalidTable, len(currencies), MinSupported)
	}

	t := &Table{
		ordered: make([]Currency, 0, len(currencies)),
		byCode:  make(map[Code]Currency, len(currencies)),
	}

	bases := 0
	for _, c := range currencies {
		if c.Code == "" {
			return nil, fmt.Errorf("%w: empty currency code", ErrInvalidTable)
		}
		if _, dup := t.byCode[c.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %s", ErrInvalidTable, c.Code)
		}
		if math.IsNaN(c.RateToBase) || math.IsInf(c.RateToBase, 0) || c.RateToBase <= 0 {
			return nil, fmt.Errorf("%w: currency %s has non-positive rate %v", ErrInvalidTable, c.Code, c.RateToBase)
		}
		if c.IsBase() {
			bases++
			t.base = c
		}
		t.ordered = append(t.ordered, c)
		t.byCode[c.Code] = c
	}

	if bases != 1 {
		return nil, fmt.Errorf("%w: expected exactly one base currency, found %d", ErrInvalidTable, bases)
	}

	return t, nil
}

func (t *Table) Base() Currency {
	return t.base
}

func (t *Table) Lookup(code Code) (Currency, error) {
	c, ok := t.byCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// All returns a copy of the currencies in table order.
func (t *Table) All() []Currency {
	out := make([]Currency, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Convert routes amount through the base currency. No rounding is applied.
func Convert(amount float64, from, to Currency) float64 {
	amountInBase := amount / from.RateToBase
	return amountInBase * to.RateToBase
}

// Format renders an amount for people: symbol followed by two decimals.
func Format(amount float64, c Currency) string {
	return fmt.Sprintf("%s%.2f", c.Symbol, amount)
}
