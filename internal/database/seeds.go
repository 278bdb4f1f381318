package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/axoxia/shipping-quote/internal/currency"
)

// SeedCurrencies inserts the builtin currencies into an empty table.
func SeedCurrencies(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM currencies").Scan(&count); err != nil {
		return fmt.Errorf("check existing currencies: %w", err)
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("currencies already seeded, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows := currency.Defaults()
	for i, c := range rows {
		_, err := tx.Exec(ctx,
			"INSERT INTO currencies (code, symbol, name, rate_to_base, position) VALUES ($1, $2, $3, $4, $5)",
			string(c.Code), c.Symbol, c.Name, c.RateToBase, i)
		if err != nil {
			return fmt.Errorf("insert currency %s: %w", c.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit currencies: %w", err)
	}

	log.Info().Int("count", len(rows)).Msg("inserted currencies")
	return nil
}
