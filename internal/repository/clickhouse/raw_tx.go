package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

func (r *Repository) InsertRawTx(ctx context.Context, rec model.RawTx) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_raw_tx", err, start)
	}()

	const query = `
INSERT INTO raw_qq_tx (
	hash,
	block,
	tx
) VALUES (?, ?, ?)`

	if err = r.conn.Exec(ctx, query, rec.Hash, rec.Block, rec.Body); err != nil {
		return fmt.Errorf("insert raw tx: %w", err)
	}
	return nil
}
