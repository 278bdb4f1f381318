package currency

// Fixed rates relative to EUR. These are not live market rates and go stale;
// deployments that need current rates load them from the currencies table.
var defaultCurrencies = []Currency{
	{Code: EUR, Symbol: "€", Name: "Euro", RateToBase: 1},
	{Code: XOF, Symbol: "CFA", Name: "West African CFA Franc", RateToBase: 655.957},
	{Code: CNY, Symbol: "¥", Name: "Chinese Yuan", RateToBase: 7.85},
}

// Defaults returns a copy of the builtin currency rows.
func Defaults() []Currency {
	out := make([]Currency, len(defaultCurrencies))
	copy(out, defaultCurrencies)
	return out
}

// Default builds the builtin table. The rows are known to be valid.
func Default() *Table {
	t, err := NewTable(defaultCurrencies)
	if err != nil {
		panic(err)
	}
	return t
}
