package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

func (r *Repository) InsertAddressMapping(ctx context.Context, rec model.AddressMapping) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_address_mapping", err, start)
	}()

	const query = `
INSERT INTO addr_mappings (
	t_address,
	q_address,
	block
) VALUES (?, ?, ?)`

	if err = r.conn.Exec(ctx, query, rec.Address, rec.QqAccount, rec.Block); err != nil {
		return fmt.Errorf("insert address mapping: %w", err)
	}
	return nil
}

// AddressForAccount returns the address with the earliest mapping to qqAccount.
func (r *Repository) AddressForAccount(ctx context.Context, qqAccount string) (string, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address_for_account", err, start)
	}()

	const query = `
SELECT t_address
FROM addr_mappings
WHERE q_address = ?
GROUP BY t_address
ORDER BY min(block), t_address
LIMIT 1`

	var address string
	if err = r.conn.QueryRow(ctx, query, qqAccount).Scan(&address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return "", false, nil
		}
		return "", false, fmt.Errorf("query address for account: %w", err)
	}
	return address, true, nil
}

// AccountsByAddress lists the accounts linked to address with the block they were first seen.
func (r *Repository) AccountsByAddress(ctx context.Context, address string) ([]model.AddressMapping, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("accounts_by_address", err, start)
	}()

	const query = `
SELECT q_address, min(block) AS first_block
FROM addr_mappings
WHERE t_address = ?
GROUP BY q_address
ORDER BY first_block, q_address`

	var out []model.AddressMapping
	err = r.query(ctx, query, func(rows driver.Rows) error {
		rec := model.AddressMapping{Address: address}
		if err := rows.Scan(&rec.QqAccount, &rec.Block); err != nil {
			return fmt.Errorf("scan address mapping: %w", err)
		}
		out = append(out, rec)
		return nil
	}, address)
	if err != nil {
		return nil, fmt.Errorf("query accounts by address: %w", err)
	}
	return out, nil
}
