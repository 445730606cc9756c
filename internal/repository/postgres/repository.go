// Package postgres implements the indexer storage on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db      DB
	pool    *pgxpool.Pool
	builder sq.StatementBuilderType
	metrics Metrics
}

// Open connects a pool to dsn and checks it with a ping.
func Open(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	repo, err := NewRepository(pool, metrics)
	if err != nil {
		pool.Close()
		return nil, err
	}
	repo.pool = pool
	return repo, nil
}

func NewRepository(db DB, metrics Metrics) (*Repository, error) {
	if db == nil {
		return nil, errors.New("postgres db is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}
	return &Repository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		metrics: metrics,
	}, nil
}

// Close releases the pool opened by Open.
func (r *Repository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

func (r *Repository) exec(ctx context.Context, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}

// query runs b and calls scan for every row.
func (r *Repository) query(ctx context.Context, b sq.Sqlizer, scan func(pgx.Rows) error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
