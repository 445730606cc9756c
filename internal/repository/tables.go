// Package repository holds what the postgres and clickhouse gateways have in common.
package repository

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

// ErrUnknownOrderKind is returned for an order log whose kind has no table.
var ErrUnknownOrderKind = errors.New("unknown order kind")

// OrderKinds lists every order log kind in the order reads return them.
var OrderKinds = []model.OrderKind{model.OrderTrading, model.OrderOpen, model.OrderClose}

var orderTables = map[model.OrderKind]string{
	model.OrderTrading: "trading_tx",
	model.OrderOpen:    "order_open_tx",
	model.OrderClose:   "order_close_tx",
}

// OrderTable returns the table that keeps order logs of the given kind.
func OrderTable(kind model.OrderKind) (string, error) {
	table, ok := orderTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderKind, kind)
	}
	return table, nil
}
