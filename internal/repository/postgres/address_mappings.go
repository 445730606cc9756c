package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/pkg/safe"
)

// InsertAddressMapping links rec.QqAccount to rec.Address. An existing link is kept as is.
func (r *Repository) InsertAddressMapping(ctx context.Context, rec model.AddressMapping) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_address_mapping", err, started)
	}()

	block, err := safe.Int64(rec.Block)
	if err != nil {
		return fmt.Errorf("address mapping block: %w", err)
	}

	insert := r.builder.
		Insert("addr_mappings").
		Columns("t_address", "q_address", "block").
		Values(rec.Address, rec.QqAccount, block).
		Suffix("ON CONFLICT (t_address, q_address) DO NOTHING")
	if err = r.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert address mapping: %w", err)
	}
	return nil
}

// AddressForAccount returns the twilight address that owns qqAccount.
// When several addresses claim it the earliest mapping wins.
func (r *Repository) AddressForAccount(ctx context.Context, qqAccount string) (address string, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("address_for_account", err, started)
	}()

	query, args, err := r.builder.
		Select("t_address").
		From("addr_mappings").
		Where(sq.Eq{"q_address": qqAccount}).
		OrderBy("block", "t_address").
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("build query: %w", err)
	}

	if err = r.db.QueryRow(ctx, query, args...).Scan(&address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query address for account: %w", err)
	}
	return address, true, nil
}

// AccountsByAddress lists the zk accounts linked to address, oldest first.
func (r *Repository) AccountsByAddress(ctx context.Context, address string) (out []model.AddressMapping, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("accounts_by_address", err, started)
	}()

	selectQuery := r.builder.
		Select("q_address", "block").
		From("addr_mappings").
		Where(sq.Eq{"t_address": address}).
		OrderBy("block", "q_address")

	err = r.query(ctx, selectQuery, func(rows pgx.Rows) error {
		var (
			account string
			block   int64
		)
		if err := rows.Scan(&account, &block); err != nil {
			return err
		}
		height, err := safe.Uint64(block)
		if err != nil {
			return err
		}
		out = append(out, model.AddressMapping{Address: address, QqAccount: account, Block: height})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query accounts by address: %w", err)
	}
	return out, nil
}
