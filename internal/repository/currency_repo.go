package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/axoxia/shipping-quote/internal/currency"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}

func (r *CurrencyRepository) FindAll(ctx context.Context) ([]currency.Currency, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, symbol, name, rate_to_base::float8
		FROM currencies ORDER BY position, code`)
	if err != nil {
		return nil, fmt.Errorf("query currencies: %w", err)
	}
	defer rows.Close()

	var results []currency.Currency
	for rows.Next() {
		var c currency.Currency
		var code string
		if err := rows.Scan(&code, &c.Symbol, &c.Name, &c.RateToBase); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		c.Code = currency.Code(code)
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate currencies: %w", err)
	}
	return results, nil
}

// LoadTable reads and validates the currency table. Call it once at startup.
func (r *CurrencyRepository) LoadTable(ctx context.Context) (*currency.Table, error) {
	rows, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	table, err := currency.NewTable(rows)
	if err != nil {
		return nil, fmt.Errorf("load currency table: %w", err)
	}
	return table, nil
}
