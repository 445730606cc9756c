package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/repository"
)

func (r *Repository) InsertOrderLog(ctx context.Context, rec model.OrderLog) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_order_log", err, start)
	}()

	table, err := repository.OrderTable(rec.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
INSERT INTO %s (
	to_address,
	from_address,
	block
) VALUES (?, ?, ?)`, table)

	if err = r.conn.Exec(ctx, query, rec.To, rec.From, rec.Block); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// OrderLogsByAddress returns the order logs sent from address, grouped by kind.
func (r *Repository) OrderLogsByAddress(ctx context.Context, address string) ([]model.OrderLog, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("order_logs_by_address", err, start)
	}()

	var out []model.OrderLog
	for _, kind := range repository.OrderKinds {
		var table string
		if table, err = repository.OrderTable(kind); err != nil {
			return nil, err
		}

		query := fmt.Sprintf(`
SELECT to_address, block
FROM %s FINAL
WHERE from_address = ?
ORDER BY block, to_address`, table)

		err = r.query(ctx, query, func(rows driver.Rows) error {
			rec := model.OrderLog{Kind: kind, From: address}
			if err := rows.Scan(&rec.To, &rec.Block); err != nil {
				return fmt.Errorf("scan order log: %w", err)
			}
			out = append(out, rec)
			return nil
		}, address)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", table, err)
		}
	}
	return out, nil
}
