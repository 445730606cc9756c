package facts

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

func (e *Extractor) insertTransaction(ctx context.Context, address string, height uint64) {
	err := e.repo.InsertTransaction(ctx, model.TransactionRecord{Address: address, Block: height})
	e.record("transaction", err, zap.String("address", address), zap.Uint64("height", height))
}

func (e *Extractor) addFundsMoved(ctx context.Context, address, denom string, amount, height uint64) {
	err := e.repo.AddFundsMoved(ctx, model.FundsMoved{Address: address, Denom: denom, Amount: amount, Block: height})
	e.record("funds_moved", err, zap.String("address", address), zap.String("denom", denom), zap.Uint64("height", height))
}

func (e *Extractor) addGasUsed(ctx context.Context, address, denom string, amount, height uint64) {
	err := e.repo.AddGasUsed(ctx, model.GasUsage{Address: address, Denom: denom, Amount: amount, Block: height})
	e.record("gas_used", err, zap.String("address", address), zap.String("denom", denom), zap.Uint64("height", height))
}

func (e *Extractor) insertMapping(ctx context.Context, address, qqAccount string, height uint64) {
	err := e.repo.InsertAddressMapping(ctx, model.AddressMapping{Address: address, QqAccount: qqAccount, Block: height})
	e.record("address_mapping", err, zap.String("address", address), zap.String("qq_account", qqAccount))
}

func (e *Extractor) insertOrderLog(ctx context.Context, kind model.OrderKind, to, from string, height uint64) {
	err := e.repo.InsertOrderLog(ctx, model.OrderLog{Kind: kind, To: to, From: from, Block: height})
	e.record(string(kind), err, zap.String("to", to), zap.String("from", from), zap.Uint64("height", height))
}
