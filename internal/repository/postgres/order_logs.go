package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/repository"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// InsertOrderLog appends rec to the table of its kind, ignoring repeats.
func (r *Repository) InsertOrderLog(ctx context.Context, rec model.OrderLog) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_order_log", err, started)
	}()

	table, err := repository.OrderTable(rec.Kind)
	if err != nil {
		return err
	}
	block, err := safe.Int64(rec.Block)
	if err != nil {
		return fmt.Errorf("order log block: %w", err)
	}

	insert := r.builder.
		Insert(table).
		Columns("to_address", "from_address", "block").
		Values(rec.To, rec.From, block).
		Suffix("ON CONFLICT (to_address, from_address, block) DO NOTHING")
	if err = r.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// OrderLogsByAddress returns the order logs sent from address, grouped by kind.
func (r *Repository) OrderLogsByAddress(ctx context.Context, address string) (out []model.OrderLog, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("order_logs_by_address", err, started)
	}()

	for _, kind := range repository.OrderKinds {
		table, err := repository.OrderTable(kind)
		if err != nil {
			return nil, err
		}

		selectQuery := r.builder.
			Select("to_address", "block").
			From(table).
			Where(sq.Eq{"from_address": address}).
			OrderBy("block", "to_address")

		err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
			var (
				to    string
				block int64
			)
			if err := rows.Scan(&to, &block); err != nil {
				return err
			}
			height, err := safe.Uint64(block)
			if err != nil {
				return err
			}
			out = append(out, model.OrderLog{Kind: kind, To: to, From: address, Block: height})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", table, err)
		}
	}
	return out, nil
}
