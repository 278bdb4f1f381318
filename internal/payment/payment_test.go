package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axoxia/shipping-quote/internal/currency"
)

func TestChargeFor(t *testing.T) {
	table := currency.Default()
	xof, _ := table.Lookup(currency.XOF)
	cny, _ := table.Lookup(currency.CNY)
	accepted := NewAccepted(currency.EUR, currency.CNY)

	t.Run("accepted display currency is charged as is", func(t *testing.T) {
		c, err := ChargeFor(502.4, cny, table, accepted, "shipping")
		require.NoError(t, err)
		assert.Equal(t, Charge{Amount: 502.4, Currency: currency.CNY, Description: "shipping"}, c)
	})

	t.Run("unsupported display currency falls back to base", func(t *testing.T) {
		c, err := ChargeFor(62971.872, xof, table, accepted, "shipping")
		require.NoError(t, err)
		assert.Equal(t, currency.EUR, c.Currency)
		assert.True(t, c.Converted)
		assert.Equal(t, 96.0, c.Amount)
	})

	t.Run("amount is rounded to minor units", func(t *testing.T) {
		c, err := ChargeFor(56.008, table.Base(), table, accepted, "")
		require.NoError(t, err)
		assert.Equal(t, 56.01, c.Amount)
	})

	t.Run("bad: processor accepts nothing usable", func(t *testing.T) {
		_, err := ChargeFor(10, xof, table, NewAccepted(currency.CNY), "")
		assert.ErrorIs(t, err, ErrNotAccepted)
		assert.NotErrorIs(t, err, currency.ErrUnknownCurrency, "a processor misconfiguration is not a client error")
	})

	t.Run("bad: display currency outside the table", func(t *testing.T) {
		_, err := ChargeFor(10, currency.Currency{Code: "USD", RateToBase: 1.1}, table, accepted, "")
		assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	})
}

func TestNewAcceptedFor(t *testing.T) {
	table := currency.Default()

	t.Run("happy: base and a second currency", func(t *testing.T) {
		a, err := NewAcceptedFor(table, currency.EUR, currency.CNY)
		require.NoError(t, err)
		assert.True(t, a[currency.EUR])
		assert.True(t, a[currency.CNY])
		assert.False(t, a[currency.XOF])
	})

	t.Run("bad: code outside the table", func(t *testing.T) {
		_, err := NewAcceptedFor(table, currency.EUR, "USD")
		assert.ErrorIs(t, err, currency.ErrUnknownCurrency)
	})

	t.Run("bad: base missing", func(t *testing.T) {
		_, err := NewAcceptedFor(table, currency.CNY)
		assert.ErrorIs(t, err, ErrNotAccepted)
	})

	t.Run("bad: empty", func(t *testing.T) {
		_, err := NewAcceptedFor(table)
		assert.ErrorIs(t, err, ErrNotAccepted)
	})
}

func TestSandboxProcessor_Capture(t *testing.T) {
	p := NewSandboxProcessor()

	t.Run("positive charge is captured", func(t *testing.T) {
		out, err := p.Capture(context.Background(), Charge{Amount: 50, Currency: currency.EUR})
		require.NoError(t, err)
		assert.True(t, out.Captured())
		_, err = uuid.Parse(out.Reference)
		assert.NoError(t, err)
	})

	t.Run("zero charge is declined", func(t *testing.T) {
		out, err := p.Capture(context.Background(), Charge{Amount: 0, Currency: currency.EUR})
		require.NoError(t, err)
		assert.Equal(t, StatusDeclined, out.Status)
		assert.NotEmpty(t, out.Reason)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Capture(ctx, Charge{Amount: 50, Currency: currency.EUR})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
