package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// cursorID is the only row of indexer_cursor.
const cursorID = 1

// Load returns the next height to fetch, or false when none was saved.
func (r *Repository) Load(ctx context.Context) (height uint64, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_cursor", err, started)
	}()

	query, args, err := r.builder.
		Select("height").
		From("indexer_cursor").
		Where(sq.Eq{"id": cursorID}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build query: %w", err)
	}

	var stored int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query cursor: %w", err)
	}
	if height, err = safe.Uint64(stored); err != nil {
		return 0, false, fmt.Errorf("stored cursor: %w", err)
	}
	return height, true, nil
}

// Save stores height as the next height to fetch.
func (r *Repository) Save(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_cursor", err, started)
	}()

	value, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("cursor height: %w", err)
	}

	upsert := r.builder.
		Insert("indexer_cursor").
		Columns("id", "height", "updated_at").
		Values(cursorID, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET height = EXCLUDED.height, updated_at = EXCLUDED.updated_at")
	if err = r.exec(ctx, upsert); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}
