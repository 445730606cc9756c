package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

// TransactionCount returns in how many blocks address sent a transaction.
func (r *Repository) TransactionCount(ctx context.Context, address string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_count", err, start)
	}()

	const query = `
SELECT uniqExact(block)
FROM transactions
WHERE t_address = ?`

	var count uint64
	if err = r.conn.QueryRow(ctx, query, address).Scan(&count); err != nil {
		return 0, fmt.Errorf("query transaction count: %w", err)
	}
	return count, nil
}

func (r *Repository) FundsMovedByAddress(ctx context.Context, address string) ([]model.FundsMoved, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("funds_moved_by_address", err, start)
	}()

	const query = `
SELECT denom, block, sum(amount)
FROM funds_moved
WHERE t_address = ?
GROUP BY denom, block
ORDER BY block, denom`

	var out []model.FundsMoved
	err = r.query(ctx, query, func(rows driver.Rows) error {
		rec := model.FundsMoved{Address: address}
		if err := rows.Scan(&rec.Denom, &rec.Block, &rec.Amount); err != nil {
			return fmt.Errorf("scan funds moved: %w", err)
		}
		out = append(out, rec)
		return nil
	}, address)
	if err != nil {
		return nil, fmt.Errorf("query funds moved: %w", err)
	}
	return out, nil
}

func (r *Repository) GasUsedByAddress(ctx context.Context, address string) ([]model.GasUsage, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("gas_used_by_address", err, start)
	}()

	const query = `
SELECT denom, block, sum(amount)
FROM gas_used
WHERE t_address = ?
GROUP BY denom, block
ORDER BY block, denom`

	var out []model.GasUsage
	err = r.query(ctx, query, func(rows driver.Rows) error {
		rec := model.GasUsage{Address: address}
		if err := rows.Scan(&rec.Denom, &rec.Block, &rec.Amount); err != nil {
			return fmt.Errorf("scan gas used: %w", err)
		}
		out = append(out, rec)
		return nil
	}, address)
	if err != nil {
		return nil, fmt.Errorf("query gas used: %w", err)
	}
	return out, nil
}

func (r *Repository) DarkMintedByAddress(ctx context.Context, address string) ([]model.DarkSats, error) {
	return r.darkSatsByAddress(ctx, "dark_minted_by_address", "dark_minted_sats", address)
}

func (r *Repository) DarkBurnedByAddress(ctx context.Context, address string) ([]model.DarkSats, error) {
	return r.darkSatsByAddress(ctx, "dark_burned_by_address", "dark_burned_sats", address)
}

func (r *Repository) LitMintedByAddress(ctx context.Context, address string) ([]model.LitSats, error) {
	return r.litSatsByAddress(ctx, "lit_minted_by_address", "lit_minted_sats", address)
}

func (r *Repository) LitBurnedByAddress(ctx context.Context, address string) ([]model.LitSats, error) {
	return r.litSatsByAddress(ctx, "lit_burned_by_address", "lit_burned_sats", address)
}

func (r *Repository) darkSatsByAddress(ctx context.Context, operation, table, address string) ([]model.DarkSats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	query := fmt.Sprintf(`
SELECT q_address, block, sum(amount)
FROM %s
WHERE t_address = ?
GROUP BY q_address, block
ORDER BY block, q_address`, table)

	var out []model.DarkSats
	err = r.query(ctx, query, func(rows driver.Rows) error {
		rec := model.DarkSats{Address: address}
		if err := rows.Scan(&rec.QqAccount, &rec.Block, &rec.Amount); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, rec)
		return nil
	}, address)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return out, nil
}

func (r *Repository) litSatsByAddress(ctx context.Context, operation, table, address string) ([]model.LitSats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	query := fmt.Sprintf(`
SELECT block, sum(amount)
FROM %s
WHERE t_address = ?
GROUP BY block
ORDER BY block`, table)

	var out []model.LitSats
	err = r.query(ctx, query, func(rows driver.Rows) error {
		rec := model.LitSats{Address: address}
		if err := rows.Scan(&rec.Block, &rec.Amount); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, rec)
		return nil
	}, address)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return out, nil
}
