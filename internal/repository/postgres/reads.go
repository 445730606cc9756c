package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// TransactionCount returns in how many blocks address sent a transaction.
func (r *Repository) TransactionCount(ctx context.Context, address string) (count uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("transaction_count", err, started)
	}()

	query, args, err := r.builder.
		Select("count(*)").
		From("transactions").
		Where(sq.Eq{"t_address": address}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var stored int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		return 0, fmt.Errorf("query transaction count: %w", err)
	}
	return safe.Uint64(stored)
}

func (r *Repository) FundsMovedByAddress(ctx context.Context, address string) (out []model.FundsMoved, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("funds_moved_by_address", err, started)
	}()

	selectQuery := r.builder.
		Select("denom", "amount", "block").
		From("funds_moved").
		Where(sq.Eq{"t_address": address}).
		OrderBy("block", "denom")

	err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
		var denom string
		amount, block, err := scanAmount(rows, &denom)
		if err != nil {
			return err
		}
		out = append(out, model.FundsMoved{Address: address, Denom: denom, Amount: amount, Block: block})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query funds moved: %w", err)
	}
	return out, nil
}

func (r *Repository) GasUsedByAddress(ctx context.Context, address string) (out []model.GasUsage, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("gas_used_by_address", err, started)
	}()

	selectQuery := r.builder.
		Select("denom", "amount", "block").
		From("gas_used").
		Where(sq.Eq{"t_address": address}).
		OrderBy("block", "denom")

	err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
		var denom string
		amount, block, err := scanAmount(rows, &denom)
		if err != nil {
			return err
		}
		out = append(out, model.GasUsage{Address: address, Denom: denom, Amount: amount, Block: block})
		return nil
	})
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

func (r *Repository) darkSatsByAddress(ctx context.Context, operation, table, address string) (out []model.DarkSats, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, started)
	}()

	selectQuery := r.builder.
		Select("q_address", "amount", "block").
		From(table).
		Where(sq.Eq{"t_address": address}).
		OrderBy("block", "q_address")

	err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
		var account string
		amount, block, err := scanAmount(rows, &account)
		if err != nil {
			return err
		}
		out = append(out, model.DarkSats{Address: address, QqAccount: account, Amount: amount, Block: block})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return out, nil
}

func (r *Repository) litSatsByAddress(ctx context.Context, operation, table, address string) (out []model.LitSats, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, started)
	}()

	selectQuery := r.builder.
		Select("amount", "block").
		From(table).
		Where(sq.Eq{"t_address": address}).
		OrderBy("block")

	err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
		amount, block, err := scanAmount(rows)
		if err != nil {
			return err
		}
		out = append(out, model.LitSats{Address: address, Amount: amount, Block: block})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	return out, nil
}

// scanAmount scans the leading columns into dest followed by amount and block.
func scanAmount(rows pgx.Rows, dest ...any) (amount, block uint64, err error) {
	var storedAmount, storedBlock int64
	if err = rows.Scan(append(dest, &storedAmount, &storedBlock)...); err != nil {
		return 0, 0, err
	}
	if amount, err = safe.Uint64(storedAmount); err != nil {
		return 0, 0, err
	}
	if block, err = safe.Uint64(storedBlock); err != nil {
		return 0, 0, err
	}
	return amount, block, nil
}
