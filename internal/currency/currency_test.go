package currency

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("happy: defaults are valid", func(t *testing.T) {
		table, err := NewTable(Defaults())
		require.NoError(t, err)
		assert.Equal(t, EUR, table.Base().Code)
		assert.Len(t, table.All(), 3)
	})

	cases := []struct {
		name string
		rows []Currency
	}{
		{"too few currencies", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: 655.957},
		}},
		{"no base currency", []Currency{
			{Code: EUR, RateToBase: 1.1},
			{Code: XOF, RateToBase: 655.957},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"two base currencies", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: 1},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"zero rate", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: 0},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"negative rate", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: -655.957},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"NaN rate", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: math.NaN()},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"infinite rate", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: XOF, RateToBase: math.Inf(1)},
			{Code: CNY, RateToBase: 7.85},
		}},
		{"duplicate code", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: CNY, RateToBase: 7.85},
			{Code: CNY, RateToBase: 7.9},
		}},
		{"empty code", []Currency{
			{Code: EUR, RateToBase: 1},
			{Code: "", RateToBase: 7.85},
			{Code: XOF, RateToBase: 655.957},
		}},
	}

	for _, tc := range cases {
		t.Run("bad: "+tc.name, func(t *testing.T) {
			_, err := NewTable(tc.rows)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	table := Default()

	t.Run("known code", func(t *testing.T) {
		c, err := table.Lookup(XOF)
		require.NoError(t, err)
		assert.Equal(t, 655.957, c.RateToBase)
		assert.Equal(t, "CFA", c.Symbol)
	})

	t.Run("unknown code fails fast", func(t *testing.T) {
		c, err := table.Lookup("USD")
		assert.True(t, errors.Is(err, ErrUnknownCurrency))
		assert.Equal(t, Currency{}, c)
	})

	t.Run("lookup is case sensitive, ParseCode normalizes", func(t *testing.T) {
		_, err := table.Lookup("cny")
		assert.ErrorIs(t, err, ErrUnknownCurrency)

		c, err := table.Lookup(ParseCode(" cny "))
		require.NoError(t, err)
		assert.Equal(t, CNY, c.Code)
	})
}

func TestTable_AllIsACopy(t *testing.T) {
	table := Default()
	all := table.All()
	all[0].RateToBase = 42

	assert.Equal(t, 1.0, table.Base().RateToBase)
	assert.Equal(t, 1.0, table.All()[0].RateToBase)
	assert.Equal(t, []Code{EUR, XOF, CNY}, codes(table.All()))
}

func TestConvert(t *testing.T) {
	table := Default()
	eur, _ := table.Lookup(EUR)
	xof, _ := table.Lookup(XOF)
	cny, _ := table.Lookup(CNY)

	t.Run("base to XOF", func(t *testing.T) {
		assert.InDelta(t, 52476.56, Convert(80, eur, xof), 1e-9)
	})

	t.Run("same currency is identity", func(t *testing.T) {
		for _, c := range table.All() {
			assert.InEpsilon(t, 123.45, Convert(123.45, c, c), 1e-12, c.Code)
		}
		assert.Equal(t, 50.0, Convert(50, eur, eur))
	})

	t.Run("round trip through every currency", func(t *testing.T) {
		for _, c := range table.All() {
			for _, x := range []float64{0.01, 1, 56.008, 69.99, 1e6} {
				back := Convert(Convert(x, eur, c), c, eur)
				assert.InEpsilon(t, x, back, 1e-9, "%s %v", c.Code, x)
			}
		}
	})

	t.Run("cross conversion equals the path through base", func(t *testing.T) {
		for _, a := range table.All() {
			for _, b := range table.All() {
				for _, x := range []float64{0, 3.3, 100, 7777.77} {
					direct := Convert(x, a, b)
					viaBase := Convert(Convert(x, a, eur), eur, b)
					assert.Equal(t, viaBase, direct, "%s->%s %v", a.Code, b.Code, x)
				}
			}
		}
	})

	t.Run("XOF to CNY goes through EUR", func(t *testing.T) {
		assert.InDelta(t, 655.957/655.957*7.85, Convert(655.957, xof, cny), 1e-12)
	})

	t.Run("non-negative stays non-negative", func(t *testing.T) {
		assert.Equal(t, 0.0, Convert(0, xof, cny))
		assert.GreaterOrEqual(t, Convert(0.0001, cny, xof), 0.0)
	})
}

func TestFormat(t *testing.T) {
	table := Default()
	xof, _ := table.Lookup(XOF)

	assert.Equal(t, "€50.00", Format(50, table.Base()))
	assert.Equal(t, "CFA62971.87", Format(62971.872, xof))
	assert.Equal(t, "€0.00", Format(0, table.Base()))
}

func codes(cs []Currency) []Code {
	out := make([]Code, len(cs))
	for i, c := range cs {
		out[i] = c.Code
	}
	return out
}
