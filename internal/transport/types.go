package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
	"github.com/goodnatureofminers/nyks-indexer/internal/zkos"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the read side of the repositories.
	Store interface {
		TransactionCount(ctx context.Context, address string) (uint64, error)
		FundsMovedByAddress(ctx context.Context, address string) ([]model.FundsMoved, error)
		DarkMintedByAddress(ctx context.Context, address string) ([]model.DarkSats, error)
		DarkBurnedByAddress(ctx context.Context, address string) ([]model.DarkSats, error)
		LitMintedByAddress(ctx context.Context, address string) ([]model.LitSats, error)
		LitBurnedByAddress(ctx context.Context, address string) ([]model.LitSats, error)
		AccountsByAddress(ctx context.Context, address string) ([]model.AddressMapping, error)
		GasUsedByAddress(ctx context.Context, address string) ([]model.GasUsage, error)
		OrderLogsByAddress(ctx context.Context, address string) ([]model.OrderLog, error)
	}
	Codec interface {
		Decode(b []byte) (zkos.Transaction, error)
	}
	Metrics interface {
		Observe(route string, code int, started time.Time)
	}
)
