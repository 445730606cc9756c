package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const cursorID = uint8(1)

// Load returns the most recently saved height, or false when none was saved.
func (r *Repository) Load(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_cursor", err, start)
	}()

	const query = `
SELECT argMax(height, updated_at), count()
FROM indexer_cursor
WHERE id = ?`

	var height, saved uint64
	if err = r.conn.QueryRow(ctx, query, cursorID).Scan(&height, &saved); err != nil {
		return 0, false, fmt.Errorf("query cursor: %w", err)
	}
	if saved == 0 {
		return 0, false, nil
	}
	return height, true, nil
}

func (r *Repository) Save(ctx context.Context, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_cursor", err, start)
	}()

	const query = `
INSERT INTO indexer_cursor (
	id,
	height,
	updated_at
) VALUES (?, ?, now64(6))`

	if err = r.conn.Exec(ctx, query, cursorID, height); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}
