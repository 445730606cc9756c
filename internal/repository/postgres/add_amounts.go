package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// accumulation describes an upsert that adds amount to the row identified by keys.
type accumulation struct {
	operation string
	table     string
	keys      []string
	values    []any
	amount    uint64
}

// AddFundsMoved adds rec.Amount to what rec.Address received in rec.Denom at rec.Block.
func (r *Repository) AddFundsMoved(ctx context.Context, rec model.FundsMoved) error {
	return r.accumulate(ctx, accumulation{
		operation: "add_funds_moved",
		table:     "funds_moved",
		keys:      []string{"t_address", "denom", "block"},
		values:    []any{rec.Address, rec.Denom},
		amount:    rec.Amount,
	}, rec.Block)
}

func (r *Repository) AddDarkMinted(ctx context.Context, rec model.DarkSats) error {
	return r.addDarkSats(ctx, "add_dark_minted", "dark_minted_sats", rec)
}

func (r *Repository) AddDarkBurned(ctx context.Context, rec model.DarkSats) error {
	return r.addDarkSats(ctx, "add_dark_burned", "dark_burned_sats", rec)
}

func (r *Repository) AddLitMinted(ctx context.Context, rec model.LitSats) error {
	return r.addLitSats(ctx, "add_lit_minted", "lit_minted_sats", rec)
}

func (r *Repository) AddLitBurned(ctx context.Context, rec model.LitSats) error {
	return r.addLitSats(ctx, "add_lit_burned", "lit_burned_sats", rec)
}

// AddGasUsed adds the fee paid by rec.Address in rec.Denom at rec.Block.
func (r *Repository) AddGasUsed(ctx context.Context, rec model.GasUsage) error {
	return r.accumulate(ctx, accumulation{
		operation: "add_gas_used",
		table:     "gas_used",
		keys:      []string{"t_address", "denom", "block"},
		values:    []any{rec.Address, rec.Denom},
		amount:    rec.Amount,
	}, rec.Block)
}

func (r *Repository) addDarkSats(ctx context.Context, operation, table string, rec model.DarkSats) error {
	return r.accumulate(ctx, accumulation{
		operation: operation,
		table:     table,
		keys:      []string{"t_address", "q_address", "block"},
		values:    []any{rec.Address, rec.QqAccount},
		amount:    rec.Amount,
	}, rec.Block)
}

func (r *Repository) addLitSats(ctx context.Context, operation, table string, rec model.LitSats) error {
	return r.accumulate(ctx, accumulation{
		operation: operation,
		table:     table,
		keys:      []string{"t_address", "block"},
		values:    []any{rec.Address},
		amount:    rec.Amount,
	}, rec.Block)
}

// accumulate inserts the row or adds to its amount. The block is always the last key.
func (r *Repository) accumulate(ctx context.Context, a accumulation, block uint64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(a.operation, err, started)
	}()

	height, err := safe.Int64(block)
	if err != nil {
		return fmt.Errorf("%s block: %w", a.table, err)
	}
	amount, err := safe.Int64(a.amount)
	if err != nil {
		return fmt.Errorf("%s amount: %w", a.table, err)
	}

	values := append(append([]any{}, a.values...), height, amount)
	insert := r.builder.
		Insert(a.table).
		Columns(append(append([]string{}, a.keys...), "amount")...).
		Values(values...).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s) DO UPDATE SET amount = %s.amount + EXCLUDED.amount",
			strings.Join(a.keys, ", "), a.table,
		))
	if err = r.exec(ctx, insert); err != nil {
		return fmt.Errorf("upsert %s: %w", a.table, err)
	}
	return nil
}
