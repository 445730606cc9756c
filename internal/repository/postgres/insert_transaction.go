package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// InsertTransaction records that rec.Address sent a transaction at rec.Block.
// A second record for the same address and block is ignored.
func (r *Repository) InsertTransaction(ctx context.Context, rec model.TransactionRecord) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_transaction", err, started)
	}()

	block, err := safe.Int64(rec.Block)
	if err != nil {
		return fmt.Errorf("transaction block: %w", err)
	}

	insert := r.builder.
		Insert("transactions").
		Columns("t_address", "block").
		Values(rec.Address, block).
		Suffix("ON CONFLICT (t_address, block) DO NOTHING")
	if err = r.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
