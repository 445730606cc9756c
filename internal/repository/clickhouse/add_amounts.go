package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

// Amount rows are plain inserts: SummingMergeTree adds up rows with the same key.

func (r *Repository) AddFundsMoved(ctx context.Context, rec model.FundsMoved) error {
	const query = `
INSERT INTO funds_moved (t_address, denom, block, amount) VALUES (?, ?, ?, ?)`
	return r.insertAmount(ctx, "add_funds_moved", query, rec.Address, rec.Denom, rec.Block, rec.Amount)
}

func (r *Repository) AddDarkMinted(ctx context.Context, rec model.DarkSats) error {
	const query = `
INSERT INTO dark_minted_sats (t_address, q_address, block, amount) VALUES (?, ?, ?, ?)`
	return r.insertAmount(ctx, "add_dark_minted", query, rec.Address, rec.QqAccount, rec.Block, rec.Amount)
}

func (r *Repository) AddDarkBurned(ctx context.Context, rec model.DarkSats) error {
	const query = `
INSERT INTO dark_burned_sats (t_address, q_address, block, amount) VALUES (?, ?, ?, ?)`
	return r.insertAmount(ctx, "add_dark_burned", query, rec.Address, rec.QqAccount, rec.Block, rec.Amount)
}

func (r *Repository) AddLitMinted(ctx context.Context, rec model.LitSats) error {
	const query = `
INSERT INTO lit_minted_sats (t_address, block, amount) VALUES (?, ?, ?)`
	return r.insertAmount(ctx, "add_lit_minted", query, rec.Address, rec.Block, rec.Amount)
}

func (r *Repository) AddLitBurned(ctx context.Context, rec model.LitSats) error {
	const query = `
INSERT INTO lit_burned_sats (t_address, block, amount) VALUES (?, ?, ?)`
	return r.insertAmount(ctx, "add_lit_burned", query, rec.Address, rec.Block, rec.Amount)
}

func (r *Repository) AddGasUsed(ctx context.Context, rec model.GasUsage) error {
	const query = `
INSERT INTO gas_used (t_address, denom, block, amount) VALUES (?, ?, ?, ?)`
	return r.insertAmount(ctx, "add_gas_used", query, rec.Address, rec.Denom, rec.Block, rec.Amount)
}

func (r *Repository) insertAmount(ctx context.Context, operation, query string, args ...any) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	if err = r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}
