package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

// InsertTransaction records that rec.Address sent a transaction at rec.Block.
func (r *Repository) InsertTransaction(ctx context.Context, rec model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction", err, start)
	}()

	const query = `
INSERT INTO transactions (
	t_address,
	block
) VALUES (?, ?)`

	if err = r.conn.Exec(ctx, query, rec.Address, rec.Block); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
